// Command decodebatch runs a batch decoding pass over a manifest.
//
// Usage:
//
//	decodebatch <config.yml> <manifest>
//
// The manifest lists one input per line, optionally followed by a
// reference transcript. Exit code 2 signals a usage error, 1 a failed
// run.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kbukum/decodekit/batch"
	"github.com/kbukum/decodekit/config"
	"github.com/kbukum/decodekit/decoder"
	"github.com/kbukum/decodekit/decoder/pocketsphinx"
	"github.com/kbukum/decodekit/decoder/sphinxd"
	"github.com/kbukum/decodekit/logger"
	"github.com/kbukum/decodekit/observability"
	"github.com/kbukum/decodekit/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: decodebatch <config.yml> <manifest>")
		return exitUsage
	}
	configPath, manifestPath := args[0], args[1]

	if _, err := os.Stat(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "decodebatch: config file %s: %v\n", configPath, err)
		return exitError
	}

	var cfg appConfig
	if err := config.LoadConfig("decodebatch", &cfg, config.WithConfigFile(configPath)); err != nil {
		fmt.Fprintf(os.Stderr, "decodebatch: loading config: %v\n", err)
		return exitError
	}
	cfg.ApplyDefaults()
	cfg.Batch.ManifestPath = manifestPath
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "decodebatch: invalid config: %v\n", err)
		return exitError
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)
	logger.RegisterDefaults("batch", "engine", "telemetry")
	log.Info("starting", logger.Fields(
		"version", version.GetShortVersion(),
		logger.FieldManifest, manifestPath,
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics, shutdown, err := setupTelemetry(ctx, &cfg)
	if err != nil {
		logger.Get("telemetry").Error("telemetry setup failed", logger.ErrorFields("telemetry", err))
		return exitError
	}
	defer shutdown()

	engine, err := buildEngine(cfg.Engine)
	if err != nil {
		logger.Get("engine").Error("engine setup failed", logger.ErrorFields("engine", err))
		return exitError
	}

	batchLog := logger.Get("batch")
	runner, err := batch.NewRunner(cfg.Batch, engine, batchLog, metrics)
	if err != nil {
		batchLog.Error("invalid batch configuration", logger.ErrorFields("batch", err))
		return exitError
	}

	if err := runner.Run(ctx); err != nil {
		batchLog.Error("batch run failed", logger.ErrorFields("run", err))
		return exitError
	}
	return exitOK
}

// buildEngine resolves the configured engine through the registry.
func buildEngine(cfg engineConfig) (decoder.Engine, error) {
	reg := decoder.NewRegistry()
	reg.RegisterFactory(sphinxd.EngineName, sphinxd.Factory())
	reg.RegisterFactory(pocketsphinx.EngineName, pocketsphinx.Factory())
	engine, err := reg.Create(cfg.Kind, cfg.options())
	if err != nil {
		return nil, fmt.Errorf("%w (known engines: %s)", err, strings.Join(reg.List(), ", "))
	}
	return engine, nil
}

// setupTelemetry initializes metric and trace export when enabled. The
// returned shutdown func is safe to call unconditionally.
func setupTelemetry(ctx context.Context, cfg *appConfig) (*observability.RunMetrics, func(), error) {
	if !cfg.Telemetry.Enabled {
		return nil, func() {}, nil
	}

	meterCfg := observability.DefaultMeterConfig(cfg.Name)
	meterCfg.ServiceVersion = version.GetShortVersion()
	meterCfg.Environment = cfg.Environment
	if cfg.Telemetry.Endpoint != "" {
		meterCfg.Endpoint = cfg.Telemetry.Endpoint
	}
	meterProvider, err := observability.InitMeter(ctx, meterCfg)
	if err != nil {
		return nil, func() {}, err
	}

	tracerCfg := observability.DefaultTracerConfig(cfg.Name)
	tracerCfg.ServiceVersion = version.GetShortVersion()
	tracerCfg.Environment = cfg.Environment
	if cfg.Telemetry.Endpoint != "" {
		tracerCfg.Endpoint = cfg.Telemetry.Endpoint
	}
	tracerProvider, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		_ = meterProvider.Shutdown(ctx)
		return nil, func() {}, err
	}

	metrics, err := observability.NewRunMetrics(
		observability.Meter("decodebatch"), meterProvider)
	if err != nil {
		_ = tracerProvider.Shutdown(ctx)
		_ = meterProvider.Shutdown(ctx)
		return nil, func() {}, err
	}

	shutdown := func() {
		shutdownCtx := context.Background()
		_ = tracerProvider.Shutdown(shutdownCtx)
		_ = meterProvider.Shutdown(shutdownCtx)
	}
	return metrics, shutdown, nil
}
