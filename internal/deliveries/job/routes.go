package job

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/flag"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/log"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/retry"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
	v1matching "bitbucket.org/Amartha/go-recon-matching/internal/deliveries/job/v1/matching"
	"bitbucket.org/Amartha/go-recon-matching/internal/services"

	"github.com/google/uuid"
)

var ErrUnknownJob = errors.New("invalid version or job name")

type JobFunc = func(ctx context.Context, flag flag.Job) error

type JobRoutes map[string]map[string]JobFunc

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1matching.Routes(srv.Matching,
			retry.NewExponentialBackOff(cfg.ExponentialBackoff),
			cfg.Matching.WithDefaults().WorkerConcurrency),
		// add other version routes
	}

	return &Job{jobRoutes}
}

// List returns "version/name" for every registered job, sorted.
func (j *Job) List() []string {
	var out []string
	for version, jobs := range j.Routes {
		for name := range jobs {
			out = append(out, fmt.Sprintf("%s/%s", version, name))
		}
	}
	sort.Strings(out)
	return out
}

func (j *Job) Start(ctx context.Context, flag flag.Job) (err error) {
	start := time.Now()
	ctx = xlog.SetCorrelationID(ctx, uuid.New().String())
	defer func() {
		log.LogJob(ctx, flag, start, err)
	}()

	if err = flag.Validate(); err != nil {
		return
	}

	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		err = fmt.Errorf("%w: %s/%s", ErrUnknownJob, flag.Version, flag.JobName)
		return
	}

	err = fn(ctx, flag)
	return
}
