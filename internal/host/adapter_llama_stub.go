//go:build !llama

package host

// This file provides a no-CGO stub for the llama runtime. It is compiled when
// the 'llama' build tag is NOT set, keeping default builds and CI CGO-free.
// The real runtime lives in adapter_llama.go (tagged 'llama').

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = false

type llamaRuntime struct{}

// NewLlamaRuntime returns a Runtime that refuses to load models without the
// 'llama' build tag. Startup then fails with a clear message instead of
// mocking inference.
func NewLlamaRuntime() Runtime { return llamaRuntime{} }

func (llamaRuntime) LoadCausal(path string, params ModelParams) (Session, error) {
	return nil, ErrDependencyUnavailable("binary built without llama support (build with -tags=llama)")
}

func (llamaRuntime) LoadSeq2Seq(path string, params ModelParams) (Session, error) {
	return nil, ErrDependencyUnavailable("binary built without llama support (build with -tags=llama)")
}
