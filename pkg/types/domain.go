package types

// Model represents a loadable model file on disk.
type Model struct {
	// Stable identifier for the model.
	// example: tinyllama-q4
	ID string `json:"id" example:"tinyllama-q4"`
	// Human-friendly name.
	// example: TinyLlama (Q4)
	Name string `json:"name" example:"TinyLlama (Q4)"`
	// Absolute path to the model file on disk.
	// example: /home/user/models/TinyLlama.Q4_K_M.gguf
	Path string `json:"path" example:"/home/user/models/TinyLlama.Q4_K_M.gguf"`
}

// GenerationConfig carries the server-wide sampling defaults, set once at
// startup and overridable per request.
type GenerationConfig struct {
	// example: 0.7
	Temperature float64 `json:"temperature" example:"0.7"`
	// example: 1024
	MaxTokens int `json:"max_tokens" example:"1024"`
}
