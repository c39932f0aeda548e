package log

import (
	"context"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/flag"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
)

func LogJob(ctx context.Context, job flag.Job, startTime time.Time, err error) {
	field := []xlog.Field{
		xlog.String("job-name", job.JobName),
		xlog.String("version", job.Version),
		xlog.Duration("elapsed", time.Since(startTime)),
	}
	if job.ClientID != "" {
		field = append(field, xlog.String("client-id", job.ClientID))
	}
	if err != nil {
		field = append(field, xlog.String("status", "fail"), xlog.Err(err))
		xlog.Warn(ctx, "[JOB]", field...)
	} else {
		field = append(field, xlog.String("status", "success"))
		xlog.Info(ctx, "[JOB]", field...)
	}
}
