package httpapi

import (
	"context"
	"errors"
	"testing"
	"time"
)

func waitDone(t *testing.T, ctx context.Context) {
	t.Helper()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled in time")
	}
}

func TestGenerationContextCanceledOnShutdown(t *testing.T) {
	base, stop := context.WithCancel(context.Background())
	SetBaseContext(base)
	defer SetBaseContext(nil)

	ctx, cancel := generationContext(context.Background())
	defer cancel()

	stop()
	waitDone(t, ctx)
	if !errors.Is(context.Cause(ctx), errShutdown) {
		t.Fatalf("cause = %v, want shutdown", context.Cause(ctx))
	}
}

func TestGenerationContextCanceledOnClientDisconnect(t *testing.T) {
	SetBaseContext(nil)
	req, disconnect := context.WithCancel(context.Background())

	ctx, cancel := generationContext(req)
	defer cancel()

	disconnect()
	waitDone(t, ctx)
	if errors.Is(context.Cause(ctx), errShutdown) {
		t.Fatal("client disconnect must not report shutdown as cause")
	}
}

func TestGenerationContextStopReleases(t *testing.T) {
	SetBaseContext(nil)
	ctx, cancel := generationContext(context.Background())
	cancel()
	waitDone(t, ctx)
	if errors.Is(context.Cause(ctx), errShutdown) {
		t.Fatalf("unexpected cause: %v", context.Cause(ctx))
	}
}

func TestSetBaseContextNilResets(t *testing.T) {
	canceled, stop := context.WithCancel(context.Background())
	stop()
	SetBaseContext(canceled)
	SetBaseContext(nil)

	ctx, cancel := generationContext(context.Background())
	defer cancel()
	select {
	case <-ctx.Done():
		t.Fatal("context canceled after reset to Background")
	case <-time.After(20 * time.Millisecond):
	}
}
