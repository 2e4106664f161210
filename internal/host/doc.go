// Package host owns the single loaded model and the generation call.
//
// A Host is created once at startup by trying an ordered list of loader
// strategies (causal first, then seq2seq); the first strategy that opens the
// model file decides the inference mode reported by /health. After that the
// Host is read-only except for the generation mutex.
//
// Known limitation: whether the backend tolerates concurrent generation on
// one model instance is not under our control, so Generate holds a mutex for
// the whole call. Concurrent HTTP requests queue on that lock.
package host
