package host

import "context"

// Runtime abstracts the model backend. Concrete implementations (llama.cpp)
// live behind build tags; tests substitute fakes.
type Runtime interface {
	// LoadCausal opens path as a decoder-only model that produces
	// continuation tokens after a prompt.
	LoadCausal(path string, params ModelParams) (Session, error)
	// LoadSeq2Seq opens path as an encoder-decoder model that maps the
	// whole input sequence to an output sequence.
	LoadSeq2Seq(path string, params ModelParams) (Session, error)
}

// Session is a loaded model ready to generate. Implementations are not
// assumed safe for concurrent Generate calls; the Host serializes access.
type Session interface {
	// Generate samples a completion for prompt. It must return promptly
	// when the context is canceled.
	Generate(ctx context.Context, prompt string, opts GenOptions) (string, error)
	// Close releases backend resources.
	Close() error
}

// ModelParams captures backend options fixed at load time.
type ModelParams struct {
	CtxSize   int
	Threads   int
	GPULayers int
}

// GenOptions captures per-call sampling parameters.
type GenOptions struct {
	Temperature float64
	MaxTokens   int
}
