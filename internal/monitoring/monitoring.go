package monitoring

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerEngine     = "matching"
	LayerUnknown    = "unknown"
)

type Monitor struct {
	ctx         context.Context
	segmentName string

	// layer is where the caller lives: repository, service, delivery or the engine
	layer string

	start time.Time

	segment *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// New starts a New Relic segment named after the calling function and
// remembers the layer for the finish log line.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	fOpts := &initOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	if fOpts.segmentName == "" {
		// must stay directly in New so Caller(1) is the instrumented function
		pc, file, _, ok := runtime.Caller(1)
		if !ok {
			pc = 0
		}

		segmentName := "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			segmentName = getSegmentName(fn.Name())
		}
		fOpts.segmentName = segmentName

		if fOpts.layer == "" {
			fOpts.layer = layerFromFile(file)
		}
	}
	if fOpts.layer == "" {
		fOpts.layer = LayerUnknown
	}

	txn := newrelic.FromContext(ctx)
	segment := txn.StartSegment(fOpts.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", fOpts.layer)
	}

	return &Monitor{
		ctx:         ctx,
		layer:       fOpts.layer,
		start:       time.Now(),
		segmentName: fOpts.segmentName,
		segment:     segment,
	}
}

func layerFromFile(file string) string {
	switch {
	case strings.Contains(file, "/"+LayerRepository+"/"):
		return LayerRepository
	case strings.Contains(file, "/"+LayerService+"/"):
		return LayerService
	case strings.Contains(file, "/"+LayerDelivery+"/"):
		return LayerDelivery
	case strings.Contains(file, "/common/"+LayerEngine+"/"):
		return LayerEngine
	default:
		return LayerUnknown
	}
}
