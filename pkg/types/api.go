package types

// Message is a single chat message supplied by the client.
type Message struct {
	// Role of the speaker: system, user or assistant.
	// example: user
	Role string `json:"role" example:"user"`
	// Message text.
	// example: Write a haiku about the ocean.
	Content string `json:"content" example:"Write a haiku about the ocean."`
}

// ChatCompletionRequest is the body of POST /v1/chat/completions.
// Temperature and MaxTokens are pointers so an explicit zero is
// distinguishable from "use the server default".
type ChatCompletionRequest struct {
	// Optional model identifier; echoed back in the response. The server
	// always generates with its single loaded model.
	// example: tinyllama-q4
	Model string `json:"model,omitempty" example:"tinyllama-q4"`
	// Conversation so far, in order.
	Messages []Message `json:"messages"`
	// Sampling temperature (higher = more random).
	// example: 0.7
	Temperature *float64 `json:"temperature,omitempty" example:"0.7"`
	// Maximum number of new tokens to generate.
	// example: 256
	MaxTokens *int `json:"max_tokens,omitempty" example:"256"`
}

// ChatChoice is one completion choice; this server always returns exactly one.
type ChatChoice struct {
	Index int `json:"index" example:"0"`
	// Generated assistant message.
	Message Message `json:"message"`
	// example: stop
	FinishReason string `json:"finish_reason" example:"stop"`
}

// Usage reports word-count based token accounting. Counts are
// whitespace-split word counts, not tokenizer token counts; existing
// clients depend on that approximation.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens" example:"12"`
	CompletionTokens int `json:"completion_tokens" example:"34"`
	TotalTokens      int `json:"total_tokens" example:"46"`
}

// ChatCompletionResponse is the OpenAI-compatible chat completion envelope.
type ChatCompletionResponse struct {
	// example: chatcmpl-1a2b3c4d5e
	ID string `json:"id" example:"chatcmpl-1a2b3c4d5e"`
	// example: chat.completion
	Object string `json:"object" example:"chat.completion"`
	// Creation time in unix seconds.
	// example: 1700000000
	Created int64        `json:"created" example:"1700000000"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   Usage        `json:"usage"`
}

// ModelObject describes the loaded model for GET /v1/models.
type ModelObject struct {
	ID string `json:"id" example:"tinyllama-q4"`
	// example: model
	Object  string `json:"object" example:"model"`
	Created int64  `json:"created" example:"1700000000"`
	// example: local
	OwnedBy    string  `json:"owned_by" example:"local"`
	Permission []any   `json:"permission"`
	Root       string  `json:"root"`
	Parent     *string `json:"parent"`
}

// ModelListResponse wraps GET /v1/models.
type ModelListResponse struct {
	// example: list
	Object string        `json:"object" example:"list"`
	Data   []ModelObject `json:"data"`
}

// HealthResponse is returned by GET /health once the model is loaded.
type HealthResponse struct {
	// example: healthy
	Status string `json:"status" example:"healthy"`
	Model  string `json:"model"`
	// Inference mode the model loaded in: causal or seq2seq.
	// example: causal
	ModelType string `json:"model_type" example:"causal"`
	// RFC 3339 server time.
	Timestamp string `json:"timestamp"`
}

// TestRequest is the body of POST /test. Prompt defaults to a greeting.
type TestRequest struct {
	// example: Hello, how are you?
	Prompt string `json:"prompt,omitempty" example:"Hello, how are you?"`
}

// TestResponse echoes the prompt with the generated text. Response is
// always a string, possibly an error message.
type TestResponse struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	Model    string `json:"model"`
}

// ErrorDetail is the inner object of the OpenAI error envelope.
type ErrorDetail struct {
	// example: AI server is not initialized
	Message string `json:"message" example:"AI server is not initialized"`
	// example: server_error
	Type string `json:"type" example:"server_error"`
	// example: internal_error
	Code string `json:"code" example:"internal_error"`
}

// ErrorResponse is the OpenAI-compatible error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
