package batch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/decodekit/decoder"
	"github.com/kbukum/decodekit/errors"
	"github.com/kbukum/decodekit/logger"
	"github.com/kbukum/decodekit/manifest"
	"github.com/kbukum/decodekit/observability"
	"github.com/kbukum/decodekit/pipeline"
)

// Runner drives one batch run: it loads the manifest, carves out this
// run's shard, thins it by the sampling stride, and feeds each surviving
// record to the engine in order.
type Runner struct {
	cfg     Config
	engine  decoder.Engine
	log     *logger.Logger
	metrics *observability.RunMetrics
	kind    decoder.InputKind
	runID   string

	// open is swapped out in tests to avoid touching the filesystem.
	open func(path string) (io.ReadCloser, error)
}

// NewRunner validates cfg and builds a Runner. metrics may be nil.
func NewRunner(cfg Config, engine decoder.Engine, log *logger.Logger, metrics *observability.RunMetrics) (*Runner, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kind, err := decoder.ParseInputKind(cfg.InputKind)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = observability.NoopRunMetrics()
	}

	runID := uuid.NewString()
	return &Runner{
		cfg:     cfg,
		engine:  engine,
		log:     log.WithRunID(runID),
		metrics: metrics,
		kind:    kind,
		runID:   runID,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// RunID returns the identifier attached to this run's logs and spans.
func (r *Runner) RunID() string { return r.runID }

// Run executes the batch run. It returns the first fatal error; records
// skipped under the skip policy do not fail the run. On success the engine
// summary is requested exactly once, then metrics are flushed.
func (r *Runner) Run(ctx context.Context) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanRun,
		trace.WithAttributes(
			attribute.String(observability.AttrRunID, r.runID),
			attribute.String(observability.AttrManifest, r.cfg.ManifestPath),
			attribute.String(observability.AttrShard,
				fmt.Sprintf("%d/%d", r.cfg.WhichShard, r.cfg.TotalShards)),
		))
	defer span.End()

	runErr := r.run(ctx)
	if runErr != nil {
		observability.SetSpanError(ctx, runErr)
	}

	// Flush regardless of outcome so a failed run still reports what it did.
	if err := r.metrics.Flush(ctx); err != nil {
		r.log.Warn("metrics flush failed", logger.ErrorFields("flush", err))
	}

	return runErr
}

func (r *Runner) run(ctx context.Context) error {
	records, err := manifest.LoadFile(r.cfg.ManifestPath)
	if err != nil {
		return err
	}

	shard := manifest.Shard{Index: r.cfg.WhichShard, Total: r.cfg.TotalShards}
	part := manifest.Partition(records, shard)

	r.log.Info("batch run starting", logger.Fields(
		logger.FieldManifest, r.cfg.ManifestPath,
		logger.FieldShardIndex, shard.Normalize().Index,
		logger.FieldShardTotal, shard.Normalize().Total,
		logger.FieldInputKind, string(r.kind),
		logger.FieldEngine, r.engine.Name(),
		"records", len(records),
		"shard_records", len(part),
	))

	if !r.engine.IsAvailable(ctx) {
		return errors.EngineUnavailable(r.engine.Name())
	}

	p := pipeline.Thin(pipeline.FromSlice(part), r.cfg.Skip)

	start := time.Now()
	if err := pipeline.Drain(p, r.decodeRecord).Run(ctx); err != nil {
		return err
	}

	if err := r.summarize(ctx); err != nil {
		return err
	}

	r.log.Info("batch run complete", logger.DurationFields("run", time.Since(start)))
	return nil
}

// decodeRecord handles one selected record: open, dispatch, close. The
// input is closed before control returns to the pipeline, so at most one
// descriptor is ever held open.
func (r *Runner) decodeRecord(ctx context.Context, rec manifest.Record) error {
	if rec.Input == "" {
		return errors.InvalidRecord(rec.Line, "empty input token")
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanDecode,
		trace.WithAttributes(
			attribute.String(observability.AttrInput, rec.Input),
			attribute.String(observability.AttrInputKind, string(r.kind)),
		))
	defer span.End()

	in, err := r.open(rec.Input)
	if err != nil {
		openErr := errors.InputUnreadable(rec.Input, err)
		r.metrics.RecordError(ctx, string(errors.ErrCodeInputUnreadable))
		if r.cfg.OnMissingInput == MissingInputSkip {
			r.log.Warn("input unreadable, skipping record",
				logger.Fields(logger.FieldInput, rec.Input, logger.FieldError, err.Error()))
			return nil
		}
		observability.SetSpanError(ctx, openErr)
		return openErr
	}
	defer in.Close()

	ref := decoder.Ref{Text: rec.Reference, Present: rec.HasReference}

	start := time.Now()
	res, err := decoder.Decode(ctx, r.engine, r.kind, in, ref)
	elapsed := time.Since(start)

	if err != nil {
		var appErr *errors.AppError
		if !stderrors.As(err, &appErr) {
			err = errors.DecodeFailed(rec.Input, err)
		}
		r.metrics.RecordDecode(ctx, string(r.kind), "error", elapsed)
		r.metrics.RecordError(ctx, string(errors.CodeOf(err)))
		observability.SetSpanError(ctx, err)
		r.log.Error("decode failed", logger.MergeWithError(
			logger.Fields(logger.FieldInput, rec.Input), err))
		return err
	}

	r.metrics.RecordDecode(ctx, string(r.kind), "ok", elapsed)
	fields := logger.Fields(
		logger.FieldInput, rec.Input,
		logger.FieldHypothesis, res.Hypothesis,
		logger.FieldDuration, elapsed.String(),
	)
	if rec.HasReference {
		fields[logger.FieldReference] = rec.Reference
	}
	r.log.Info("decoded", fields)
	return nil
}

// summarize requests the engine's aggregate statistics once the shard is
// fully processed.
func (r *Runner) summarize(ctx context.Context) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanSummary)
	defer span.End()

	s, err := r.engine.Summary(ctx)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return err
	}

	r.log.Info("run summary", logger.Fields(
		"decoded", s.Decoded,
		"errors", s.Errors,
		"word_error_rate", s.WordErrorRate,
		"audio_seconds", s.AudioSeconds,
	))
	return nil
}
