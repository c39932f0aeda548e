package main

import (
	"context"
	"sync"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/cmd/setup"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/graceful"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic,
		s.Metrics,
		s.HealthDeps,
		s.Service.Matching,
		s.Service.Rule,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(ctx, starters...)
		graceful.StopProcessAtBackground(ctx, s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	xlog.Info(ctx, "http server stopped!")
}
