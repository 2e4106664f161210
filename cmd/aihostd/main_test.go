package main

import (
	"testing"

	"aihostd/internal/config"
)

func TestMissingModelArgFails(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error when model argument is missing")
	}
}

func TestTooManyArgsFails(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"m1", "m2"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for extra arguments")
	}
}

func TestFlagDefaults(t *testing.T) {
	root := newRootCmd()
	if err := root.ParseFlags(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cases := []struct {
		flag string
		want string
	}{
		{"port", "5000"},
		{"host", "127.0.0.1"},
		{"temperature", "0.7"},
		{"max-length", "1024"},
		{"debug", "false"},
		{"max-body-bytes", "1048576"},
	}
	for _, c := range cases {
		f := root.Flags().Lookup(c.flag)
		if f == nil {
			t.Fatalf("flag %q not registered", c.flag)
		}
		if f.DefValue != c.want {
			t.Fatalf("flag %q default = %q, want %q", c.flag, f.DefValue, c.want)
		}
	}
}

func TestMergeConfigFlagWins(t *testing.T) {
	root := newRootCmd()
	if err := root.ParseFlags([]string{"--port", "9000"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	flags := config.Config{Host: "127.0.0.1", Port: 9000, Temperature: 0.7, MaxLength: 1024, MaxBodyBytes: 1 << 20}
	file := config.Config{Host: "0.0.0.0", Port: 7777, Temperature: 0.2, MaxLength: 64, Debug: true, MaxBodyBytes: 4096}
	out := mergeConfig(file, flags, root)
	if out.Port != 9000 {
		t.Fatalf("explicit --port lost: %d", out.Port)
	}
	// Unset flags take the file values.
	if out.Host != "0.0.0.0" || out.Temperature != 0.2 || out.MaxLength != 64 || !out.Debug || out.MaxBodyBytes != 4096 {
		t.Fatalf("file values not applied: %+v", out)
	}
}
