package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"healthlog-backend/internal/llm"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Temperature is fixed low so repeated analyses of the same history lean
// toward the same output.
const Temperature = 0.3

// Client implements llm.Client using the Google Generative Language API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Gemini client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GEMINI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	Temperature      float32 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateRequest struct {
	SystemInstruction generateContent   `json:"system_instruction"`
	Contents          []generateContent `json:"contents"`
	GenerationConfig  generationConfig  `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Generate performs one generateContent call requesting a strict JSON object.
func (c *Client) Generate(ctx context.Context, system, user string) (json.RawMessage, error) {
	reqBody := generateRequest{
		SystemInstruction: generateContent{Parts: []generatePart{{Text: system}}},
		Contents:          []generateContent{{Parts: []generatePart{{Text: user}}}},
		GenerationConfig: generationConfig{
			Temperature:      Temperature,
			ResponseMimeType: "application/json",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("gemini request timeout: %w", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini error: status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("gemini response parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("gemini error: %s (%s)", parsed.Error.Message, parsed.Error.Status)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini response missing candidates")
	}

	content := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if content == "" {
		return nil, fmt.Errorf("gemini response empty content")
	}
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("invalid JSON from gemini")
	}
	return json.RawMessage(content), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

var _ llm.Client = (*Client)(nil)
