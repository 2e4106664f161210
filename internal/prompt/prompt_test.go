package prompt

import (
	"strings"
	"testing"

	"aihostd/pkg/types"
)

func TestBuild(t *testing.T) {
	cases := []struct {
		name string
		in   []types.Message
		want string
	}{
		{"empty", nil, "Assistant:"},
		{"single user", []types.Message{{Role: "user", Content: "hi"}}, "User: hi\nAssistant:"},
		{"system then user", []types.Message{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
		}, "System: be brief\nUser: hi\nAssistant:"},
		{"assistant history kept", []types.Message{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
			{Role: "user", Content: "bye"},
		}, "User: hi\nAssistant: hello\nUser: bye\nAssistant:"},
		{"missing role defaults to user", []types.Message{{Content: "hi"}}, "User: hi\nAssistant:"},
		{"unknown role skipped", []types.Message{
			{Role: "tool", Content: "ignored"},
			{Role: "user", Content: "hi"},
		}, "User: hi\nAssistant:"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Build(c.in)
			if got != c.want {
				t.Fatalf("Build = %q, want %q", got, c.want)
			}
			if !strings.HasSuffix(got, Suffix) {
				t.Fatalf("prompt %q does not end with %q", got, Suffix)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"hi", 1},
		{"User: hi\nAssistant:", 3},
		{"a  b\tc\nd", 4},
	}
	for _, c := range cases {
		if got := WordCount(c.in); got != c.want {
			t.Fatalf("WordCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCountUsage(t *testing.T) {
	u := CountUsage("User: hi\nAssistant:", "hello there friend")
	if u.PromptTokens != 3 || u.CompletionTokens != 3 || u.TotalTokens != 6 {
		t.Fatalf("unexpected usage: %+v", u)
	}
}
