package monitoring

import (
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerEngine:     "[MATCHING-ENGINE]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err        error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = append(o.xlogFields, fields...)
	}
}

// Finish ends the segment and writes one log line. Errors are logged on every
// layer, successes only on service, delivery and engine to avoid duplicates.
func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fOpts.xlogFields = append(fOpts.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)))

	if fOpts.err != nil {
		fOpts.xlogFields = append(fOpts.xlogFields,
			xlog.String("status", "error"),
			xlog.Err(fOpts.err))

		xlog.Warn(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)
	} else if m.layer != LayerRepository {
		fOpts.xlogFields = append(fOpts.xlogFields, xlog.String("status", "success"))
		xlog.Info(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}
