package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllowBurstThenRefill(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow("ip-1", rule); !ok {
			t.Fatalf("request %d within burst must be allowed", i)
		}
	}
	ok, retryAfter := limiter.Allow("ip-1", rule)
	if ok {
		t.Fatal("request beyond burst must be denied")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", retryAfter)
	}

	current = current.Add(2 * time.Second)
	if ok, _ := limiter.Allow("ip-1", rule); !ok {
		t.Fatal("request after refill must be allowed")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(nil)
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if ok, _ := limiter.Allow("ip-1", rule); !ok {
		t.Fatal("first key must be allowed")
	}
	if ok, _ := limiter.Allow("ip-1", rule); ok {
		t.Fatal("first key must be exhausted")
	}
	if ok, _ := limiter.Allow("ip-2", rule); !ok {
		t.Fatal("second key must have its own bucket")
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", RateLimit(NewRateLimiter(nil), RateLimitRule{Rate: 0.001, Burst: 1}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/x", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/x", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
