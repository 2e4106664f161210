//go:build llama

package host

import (
	"testing"

	llama "github.com/go-skynet/go-llama.cpp"
)

func TestPredictOptionsHonorExplicitZeroTemperature(t *testing.T) {
	po := llama.NewPredictOptions(predictOptions(GenOptions{Temperature: 0, MaxTokens: 8}, 2)...)
	if po.Temperature != 0 {
		t.Fatalf("temperature = %v, want explicit 0 forwarded to the backend", po.Temperature)
	}
	if po.Tokens != 8 || po.Threads != 2 {
		t.Fatalf("unexpected options: tokens=%d threads=%d", po.Tokens, po.Threads)
	}
}

func TestPredictOptionsClampZeroTokens(t *testing.T) {
	po := llama.NewPredictOptions(predictOptions(GenOptions{Temperature: 0.7}, 0)...)
	if po.Tokens < 1 || po.Threads < 1 {
		t.Fatalf("tokens/threads not clamped: %d/%d", po.Tokens, po.Threads)
	}
	if po.Temperature != 0.7 {
		t.Fatalf("temperature = %v, want 0.7", po.Temperature)
	}
}
