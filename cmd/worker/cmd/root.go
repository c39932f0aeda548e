package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/cmd/setup"
	helperFlag "bitbucket.org/Amartha/go-recon-matching/internal/common/flag"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/graceful"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
	"bitbucket.org/Amartha/go-recon-matching/internal/deliveries/job"
	"bitbucket.org/Amartha/go-recon-matching/internal/services"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a matching job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	_ = runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	_ = runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdClientID, "c", "", "run for this client only")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	// the routes only need the service handles, nothing is called
	j := job.New(config.Config{}, &services.Services{})
	for _, name := range j.List() {
		fmt.Fprintln(ccmd.OutOrStdout(), name)
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} [-c={client-id}]",
		RunE:    runJob,
	}
	runJobCmdName     = "name"
	runJobCmdVersion  = "version"
	runJobCmdClientID = "client"
)

func runJob(ccmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	clientID, _ := ccmd.Flags().GetString(runJobCmdClientID)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	timeout := s.Config.App.GracefulTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	defer graceful.StopProcess(timeout, stoppers...)

	j := job.New(s.Config, s.Service)
	err = j.Start(ctx, helperFlag.Job{
		JobName:  name,
		Version:  version,
		ClientID: clientID,
	})
	xlog.Info(ctx, "job server stopped!")

	return err
}
