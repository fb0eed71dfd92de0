package vec

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/agbru/fixcalc/fixed"
)

var (
	batchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixcalc_batches_total",
			Help: "The total number of bulk kernel evaluations processed",
		},
		[]string{"function", "status"},
	)
	batchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fixcalc_batch_duration_seconds",
			Help: "The duration of bulk kernel evaluations in seconds",
		},
		[]string{"function"},
	)
)

// Evaluator wraps a named kernel function with the cross-cutting concerns a
// batch caller usually wants: a prometheus counter and duration histogram,
// an otel span, and a debug log line per batch. The scalar kernel stays
// pure; all instrumentation lives here, per batch rather than per element.
type Evaluator struct {
	name string
	fn   Func
}

// NewEvaluator constructs an Evaluator for fn, labeled with name in metrics
// and spans. It panics on a nil fn, which can only be a programming error.
func NewEvaluator(name string, fn Func) *Evaluator {
	if fn == nil {
		panic("vec: the kernel function cannot be nil")
	}
	return &Evaluator{name: name, fn: fn}
}

// Name returns the label the evaluator reports under.
func (e *Evaluator) Name() string {
	return e.name
}

// Apply evaluates the wrapped function over src into dst, choosing the
// parallel path per opts, and records metrics, a span and a debug line for
// the batch.
func (e *Evaluator) Apply(ctx context.Context, dst, src []fixed.Value, opts Options) (err error) {
	tracer := otel.Tracer("vec")
	ctx, span := tracer.Start(ctx, e.name)
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		batchesTotal.WithLabelValues(e.name, status).Inc()
		batchDuration.WithLabelValues(e.name).Observe(duration)

		log.Debug().
			Str("function", e.name).
			Int("elements", len(src)).
			Float64("duration", duration).
			Str("status", status).
			Msg("batch evaluated")
	}()

	return MapParallel(ctx, dst, src, e.fn, opts)
}
