// Package prompt flattens a chat-style message list into the single prompt
// string the model consumes, and provides the word-count accounting used for
// the usage fields of completion responses.
package prompt

import (
	"strings"

	"aihostd/pkg/types"
)

// Suffix terminates every built prompt so the model answers as the assistant.
const Suffix = "Assistant:"

// Build concatenates messages as "<Role>: <content>\n" in input order and
// terminates the prompt with "Assistant:". Messages with an unknown role are
// skipped, matching the behavior existing clients rely on.
func Build(messages []types.Message) string {
	var b strings.Builder
	for _, m := range messages {
		switch m.Role {
		case "system":
			b.WriteString("System: ")
		case "user", "":
			// Missing role defaults to user.
			b.WriteString("User: ")
		case "assistant":
			b.WriteString("Assistant: ")
		default:
			continue
		}
		b.WriteString(m.Content)
		b.WriteByte('\n')
	}
	b.WriteString(Suffix)
	return b.String()
}

// WordCount returns the number of whitespace-separated words in s. Usage
// fields are word counts rather than tokenizer token counts; the inaccuracy
// is deliberate and load-bearing for existing clients.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CountUsage builds the usage block for a prompt/response pair.
func CountUsage(prompt, response string) types.Usage {
	p := WordCount(prompt)
	c := WordCount(response)
	return types.Usage{
		PromptTokens:     p,
		CompletionTokens: c,
		TotalTokens:      p + c,
	}
}
