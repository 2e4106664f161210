package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"aihostd/internal/config"
	"aihostd/internal/host"
	"aihostd/internal/httpapi"
	"aihostd/internal/registry"
	"aihostd/pkg/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		hostAddr    string
		port        int
		temperature float64
		maxLength   int
		debug       bool
		modelsDir   string
		ctxSize     int
		threads      int
		gpuLayers    int
		maxBodyBytes int64
		corsOrigins  []string
	)

	root := &cobra.Command{
		Use:           "aihostd <model>",
		Short:         "Serve a local model through an OpenAI-compatible HTTP API",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{
				Host:        hostAddr,
				Port:        port,
				ModelsDir:   modelsDir,
				Temperature: temperature,
				MaxLength:   maxLength,
				Debug:       debug,
				CtxSize:      ctxSize,
				Threads:      threads,
				GPULayers:    gpuLayers,
				MaxBodyBytes: maxBodyBytes,
				CORSOrigins:  corsOrigins,
			}
			if cfgPath != "" {
				fileCfg, err := config.Load(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = mergeConfig(fileCfg, cfg, cmd)
			}
			return run(cmd.Context(), args[0], cfg)
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "Optional config file (yaml/json/toml); flags override")
	f.StringVar(&hostAddr, "host", "127.0.0.1", "Host to bind the server to")
	f.IntVarP(&port, "port", "p", 5000, "Port to run the server on")
	f.Float64VarP(&temperature, "temperature", "t", 0.7, "Default temperature for text generation")
	f.IntVarP(&maxLength, "max-length", "m", 1024, "Maximum length for generated responses")
	f.BoolVar(&debug, "debug", false, "Enable debug logging")
	f.StringVar(&modelsDir, "models-dir", "~/models/llm", "Directory searched when <model> is a bare name")
	f.IntVar(&ctxSize, "ctx-size", 2048, "Model context size in tokens")
	f.IntVar(&threads, "threads", 0, "CPU threads for inference (0 = autodetect)")
	f.IntVar(&gpuLayers, "gpu-layers", -1, "Layers to offload to the GPU (-1 = autodetect)")
	f.Int64Var(&maxBodyBytes, "max-body-bytes", 1<<20, "Maximum JSON request body size in bytes")
	f.StringSliceVar(&corsOrigins, "cors-origin", nil, "Allowed CORS origins (repeatable); empty disables CORS")

	return root
}

// mergeConfig layers flag values over the config file: a flag the user set
// explicitly wins, otherwise a non-zero file value replaces the flag default.
func mergeConfig(file, flags config.Config, cmd *cobra.Command) config.Config {
	out := flags
	changed := cmd.Flags().Changed
	if !changed("host") && file.Host != "" {
		out.Host = file.Host
	}
	if !changed("port") && file.Port != 0 {
		out.Port = file.Port
	}
	if !changed("models-dir") && file.ModelsDir != "" {
		out.ModelsDir = file.ModelsDir
	}
	if !changed("temperature") && file.Temperature != 0 {
		out.Temperature = file.Temperature
	}
	if !changed("max-length") && file.MaxLength != 0 {
		out.MaxLength = file.MaxLength
	}
	if !changed("debug") && file.Debug {
		out.Debug = true
	}
	if !changed("ctx-size") && file.CtxSize != 0 {
		out.CtxSize = file.CtxSize
	}
	if !changed("threads") && file.Threads != 0 {
		out.Threads = file.Threads
	}
	if !changed("gpu-layers") && file.GPULayers != 0 {
		out.GPULayers = file.GPULayers
	}
	if !changed("max-body-bytes") && file.MaxBodyBytes != 0 {
		out.MaxBodyBytes = file.MaxBodyBytes
	}
	if !changed("cors-origin") && len(file.CORSOrigins) > 0 {
		out.CORSOrigins = file.CORSOrigins
	}
	return out
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func run(ctx context.Context, modelArg string, cfg config.Config) error {
	log := newLogger(cfg.Debug)

	model, err := registry.Resolve(modelArg, cfg.ModelsDir)
	if err != nil {
		return err
	}

	dev := host.DetectDevice()
	params := host.ModelParams{CtxSize: cfg.CtxSize, Threads: dev.Threads, GPULayers: dev.GPULayers}
	if cfg.Threads > 0 {
		params.Threads = cfg.Threads
	}
	if cfg.GPULayers >= 0 {
		params.GPULayers = cfg.GPULayers
	}
	log.Info().Str("device", dev.Name).Int("threads", params.Threads).Int("gpu_layers", params.GPULayers).Msg("device selected")

	defaults := types.GenerationConfig{Temperature: cfg.Temperature, MaxTokens: cfg.MaxLength}
	log.Info().Str("model", model.ID).Str("path", model.Path).Msg("loading model")
	h, err := host.Initialize(model, host.DefaultLoaders(host.NewLlamaRuntime(), params), defaults, log)
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()
	log.Info().Str("kind", h.ModelKind()).Msg("model ready")

	// Base context canceled at shutdown so in-flight generations stop.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)
	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(len(cfg.CORSOrigins) > 0, cfg.CORSOrigins)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	srv := &http.Server{Addr: addr, Handler: httpapi.NewMux(h)}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("chat", "http://"+addr+"/v1/chat/completions").Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
