package host

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"aihostd/pkg/types"
)

// Host owns the single loaded model for the process lifetime. It is
// constructed once at startup via Initialize and injected into the HTTP
// layer; there is no global instance.
type Host struct {
	model    types.Model
	kind     Kind
	defaults types.GenerationConfig

	// mu serializes Generate calls: llama.cpp contexts are not proven safe
	// for concurrent generation on one model instance.
	mu   sync.Mutex
	sess Session

	log zerolog.Logger
}

// Initialize tries each loader in order and returns a Host backed by the
// first session that opens. Every strategy failing is a load error and
// should abort startup.
func Initialize(model types.Model, loaders []Loader, defaults types.GenerationConfig, log zerolog.Logger) (*Host, error) {
	if len(loaders) == 0 {
		return nil, ErrLoad(model.ID, "no loader strategies configured")
	}
	var attempts []string
	for _, l := range loaders {
		sess, err := l.Load(model.Path)
		if err == nil {
			log.Info().Str("model", model.ID).Str("kind", string(l.Kind())).Msg("model loaded")
			return &Host{model: model, kind: l.Kind(), defaults: defaults, sess: sess, log: log}, nil
		}
		log.Debug().Str("model", model.ID).Str("kind", string(l.Kind())).Err(err).Msg("loader failed")
		attempts = append(attempts, fmt.Sprintf("%s: %v", l.Kind(), err))
	}
	return nil, ErrLoad(model.ID, strings.Join(attempts, "; "))
}

// Model returns the loaded model's identity.
func (h *Host) Model() types.Model { return h.model }

// ModelKind returns the inference mode selected at load time.
func (h *Host) ModelKind() string { return string(h.kind) }

// Defaults returns the server-wide sampling defaults.
func (h *Host) Defaults() types.GenerationConfig { return h.defaults }

// Ready reports whether the host can serve generation requests.
func (h *Host) Ready() bool { return h != nil && h.sess != nil }

// Generate runs one sampling generation, serialized against concurrent
// callers. Nil temperature/maxTokens fall back to the startup defaults; an
// explicit zero is passed through.
func (h *Host) Generate(ctx context.Context, prompt string, temperature *float64, maxTokens *int) (string, error) {
	if !h.Ready() {
		return "", ErrDependencyUnavailable("model host is not initialized")
	}
	opts := GenOptions{
		Temperature: h.defaults.Temperature,
		MaxTokens:   h.defaults.MaxTokens,
	}
	if temperature != nil {
		opts.Temperature = *temperature
	}
	if maxTokens != nil {
		opts.MaxTokens = *maxTokens
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	text, err := h.sess.Generate(ctx, prompt, opts)
	if err != nil {
		return "", generationError{cause: err}
	}
	return strings.TrimSpace(text), nil
}

// GenerateText is the lenient variant used by the chat and test endpoints:
// any generation failure is converted into a textual error message returned
// as the response body, never an error. Clients of the original server rely
// on receiving 200 with the error text as assistant content.
func (h *Host) GenerateText(ctx context.Context, prompt string, temperature *float64, maxTokens *int) string {
	text, err := h.Generate(ctx, prompt, temperature, maxTokens)
	if err != nil {
		if h != nil {
			h.log.Error().Err(err).Msg("generation failed")
		}
		return fmt.Sprintf("Error: Failed to generate response - %v", err)
	}
	return text
}

// Close releases the backend session. The Host must not be used afterwards.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sess == nil {
		return nil
	}
	err := h.sess.Close()
	h.sess = nil
	return err
}
