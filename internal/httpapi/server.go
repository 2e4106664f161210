package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aihostd/internal/prompt"
	"aihostd/pkg/types"
)

// defaultTestPrompt is used by POST /test when the request carries no prompt.
const defaultTestPrompt = "Hello, how are you?"

// Service defines the methods the HTTP layer needs from the model host.
type Service interface {
	// GenerateText never fails: backend errors come back as an error
	// message string, which the chat and test endpoints return with 200.
	GenerateText(ctx context.Context, prompt string, temperature *float64, maxTokens *int) string
	Model() types.Model
	ModelKind() string
	Ready() bool
}

// NewMux builds the router for the OpenAI-compatible API surface.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	r.Use(RequestLogger)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Log-Level"},
		}))
	}

	r.Get("/", handleIndex)
	r.Post("/v1/chat/completions", chatCompletionsHandler(svc))
	r.Get("/v1/models", listModelsHandler(svc))
	r.Get("/health", healthHandler(svc))
	r.Post("/test", testHandler(svc))

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// chatCompletionsHandler implements POST /v1/chat/completions.
//
// @Summary      OpenAI-compatible chat completion
// @Accept       json
// @Produce      json
// @Param        request body types.ChatCompletionRequest true "chat request"
// @Success      200 {object} types.ChatCompletionResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /v1/chat/completions [post]
func chatCompletionsHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || !svc.Ready() {
			writeError(w, http.StatusInternalServerError, "AI server is not initialized")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			// Request-level failures use the envelope with status 500, not
			// 400: existing clients of this API expect that mapping.
			writeError(w, http.StatusInternalServerError, "invalid request body: "+err.Error())
			return
		}

		promptText := prompt.Build(req.Messages)
		model := req.Model
		if model == "" {
			model = svc.Model().ID
		}

		// Shutdown cancels in-flight generation along with client disconnect.
		ctx, cancel := generationContext(r.Context())
		defer cancel()

		start := time.Now()
		responseText := svc.GenerateText(ctx, promptText, req.Temperature, req.MaxTokens)
		observeGeneration("chat", start)

		writeJSON(w, types.ChatCompletionResponse{
			ID:      "chatcmpl-" + randomID(),
			Object:  "chat.completion",
			Created: time.Now().Unix(),
			Model:   model,
			Choices: []types.ChatChoice{{
				Index:        0,
				Message:      types.Message{Role: "assistant", Content: responseText},
				FinishReason: "stop",
			}},
			Usage: prompt.CountUsage(promptText, responseText),
		})
	}
}

// listModelsHandler implements GET /v1/models. The list always holds exactly
// one entry: the model loaded at startup.
//
// @Summary      List the loaded model
// @Produce      json
// @Success      200 {object} types.ModelListResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /v1/models [get]
func listModelsHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || !svc.Ready() {
			writeError(w, http.StatusInternalServerError, "AI server is not initialized")
			return
		}
		id := svc.Model().ID
		writeJSON(w, types.ModelListResponse{
			Object: "list",
			Data: []types.ModelObject{{
				ID:         id,
				Object:     "model",
				Created:    time.Now().Unix(),
				OwnedBy:    "local",
				Permission: []any{},
				Root:       id,
				Parent:     nil,
			}},
		})
	}
}

// healthHandler implements GET /health.
//
// @Summary      Health check
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func healthHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || !svc.Ready() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status": "unhealthy",
				"error":  "AI server is not initialized",
			})
			return
		}
		writeJSON(w, types.HealthResponse{
			Status:    "healthy",
			Model:     svc.Model().ID,
			ModelType: svc.ModelKind(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

// testHandler implements POST /test, a debugging endpoint that generates
// from a raw prompt without chat formatting.
//
// @Summary      Raw prompt generation for debugging
// @Accept       json
// @Produce      json
// @Param        request body types.TestRequest false "test request"
// @Success      200 {object} types.TestResponse
// @Router       /test [post]
func testHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || !svc.Ready() {
			writeError(w, http.StatusInternalServerError, "AI server is not initialized")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.TestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		p := req.Prompt
		if p == "" {
			p = defaultTestPrompt
		}

		ctx, cancel := generationContext(r.Context())
		defer cancel()

		start := time.Now()
		responseText := svc.GenerateText(ctx, p, nil, nil)
		observeGeneration("test", start)

		writeJSON(w, types.TestResponse{
			Prompt:   p,
			Response: responseText,
			Model:    svc.Model().ID,
		})
	}
}

// randomID returns 10 hex characters for completion ids.
func randomID() string {
	var b [5]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
