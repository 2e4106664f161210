//go:build llama

package host

import (
	"context"
	"errors"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = true

// llamaRuntime loads GGUF models through go-llama.cpp.
type llamaRuntime struct{}

// NewLlamaRuntime returns the llama.cpp-backed Runtime.
func NewLlamaRuntime() Runtime { return llamaRuntime{} }

func (llamaRuntime) LoadCausal(path string, params ModelParams) (Session, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model path is empty")
	}
	mo := []llama.ModelOption{
		llama.SetContext(zn(params.CtxSize, 2048)),
	}
	if params.GPULayers > 0 {
		mo = append(mo, llama.SetGPULayers(params.GPULayers))
	}
	m, err := llama.New(path, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaSession{model: m, threads: zn(params.Threads, 4)}, nil
}

// LoadSeq2Seq always fails: llama.cpp only serves decoder-only models, so the
// seq2seq fallback can never succeed with this backend. The strategy stays in
// the order so a future backend can slot in.
func (llamaRuntime) LoadSeq2Seq(path string, params ModelParams) (Session, error) {
	return nil, errors.New("seq2seq architectures are not supported by the llama.cpp backend")
}

// llamaSession owns one loaded model.
type llamaSession struct {
	model   *llama.LLama
	threads int
}

func (s *llamaSession) Generate(ctx context.Context, prompt string, opts GenOptions) (string, error) {
	if s.model == nil {
		return "", errors.New("llama model not initialized")
	}
	// Respect cancellation between tokens; llama.cpp has no native abort.
	s.model.SetTokenCallback(func(tok string) bool {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	})
	text, err := s.model.Predict(prompt, predictOptions(opts, s.threads)...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return text, nil
}

func (s *llamaSession) Close() error {
	if s.model != nil {
		s.model.Free()
		s.model = nil
	}
	return nil
}

// predictOptions maps GenOptions onto go-llama.cpp options. The Host already
// applied the startup defaults, so temperature is forwarded as-is: an
// explicit 0 must reach the backend, not be swapped for the library default.
func predictOptions(opts GenOptions, threads int) []llama.PredictOption {
	return []llama.PredictOption{
		llama.SetTokens(max(1, opts.MaxTokens)),
		llama.SetThreads(max(1, threads)),
		llama.SetTemperature(float32(opts.Temperature)),
	}
}

func zn(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
