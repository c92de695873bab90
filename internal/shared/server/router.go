package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthlog-backend/internal/analysis"
	"healthlog-backend/internal/appointments"
	"healthlog-backend/internal/familyhistory"
	"healthlog-backend/internal/insights"
	"healthlog-backend/internal/llm"
	"healthlog-backend/internal/llm/gemini"
	"healthlog-backend/internal/logs"
	"healthlog-backend/internal/profile"
	"healthlog-backend/internal/shared/config"
	"healthlog-backend/internal/shared/metrics"
	"healthlog-backend/internal/shared/server/middleware"
	"healthlog-backend/internal/shared/server/respond"
	"healthlog-backend/internal/shared/storage/db"
)

// analysisRateRule throttles the expensive analysis endpoint per client IP.
var analysisRateRule = middleware.RateLimitRule{Rate: 1, Burst: 5}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var logsRepo logs.Repo
	var profileRepo profile.Repo
	var flagsRepo insights.FlagsRepo
	var summariesRepo insights.SummariesRepo
	var appointmentsRepo appointments.Repo
	var familyRepo familyhistory.Repo
	if sqlDB != nil {
		logsRepo = &logs.PGRepo{DB: sqlDB}
		profileRepo = &profile.PGRepo{DB: sqlDB}
		flagsRepo = &insights.PGFlagsRepo{DB: sqlDB}
		summariesRepo = &insights.PGSummariesRepo{DB: sqlDB}
		appointmentsRepo = &appointments.PGRepo{DB: sqlDB}
		familyRepo = &familyhistory.PGRepo{DB: sqlDB}
	} else {
		logsRepo = logs.NewMemoryRepo()
		profileRepo = profile.NewMemoryRepo()
		flagsRepo = insights.NewMemoryFlagsRepo()
		summariesRepo = insights.NewMemorySummariesRepo()
		appointmentsRepo = appointments.NewMemoryRepo()
		familyRepo = familyhistory.NewMemoryRepo()
	}

	var llmClient llm.Client = llm.Disabled{}
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("gemini client unavailable, analysis will use fallbacks: %v", err)
		} else {
			llmClient = client
		}
	} else {
		log.Printf("GEMINI_API_KEY not set, analysis will use fallbacks")
	}

	logsSvc := &logs.Service{Repo: logsRepo}
	logsHandler := logs.NewHandler(logsSvc)
	profileHandler := profile.NewHandler(profileRepo)
	insightsHandler := insights.NewHandler(flagsRepo, summariesRepo)
	appointmentsHandler := appointments.NewHandler(&appointments.Service{Repo: appointmentsRepo})
	familyHandler := familyhistory.NewHandler(&familyhistory.Service{Repo: familyRepo})
	analysisSvc := &analysis.Service{
		Logs:      logsSvc,
		Profile:   profileRepo,
		Flags:     flagsRepo,
		Summaries: summariesRepo,
		LLM:       llmClient,
	}
	analysisHandler := analysis.NewHandler(analysisSvc)
	limiter := middleware.NewRateLimiter(nil)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	logsHandler.RegisterRoutes(api)
	profileHandler.RegisterRoutes(api)
	insightsHandler.RegisterRoutes(api)
	appointmentsHandler.RegisterRoutes(api)
	familyHandler.RegisterRoutes(api)
	analysisHandler.RegisterRoutes(api, middleware.RateLimit(limiter, analysisRateRule))

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
