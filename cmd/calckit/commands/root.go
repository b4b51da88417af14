package commands

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"calckit/internal/app"
)

var (
	home       string
	configFile string
	remoteURL  string
	appCtx     *app.Wire
)

// Execute runs the calckit CLI with os.Args.
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes one invocation of the command tree and releases whatever it
// opened, whether or not the command succeeded.
func Run(args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if appCtx != nil {
		err = errors.Join(err, appCtx.Close())
		appCtx = nil
	}
	return err
}

// NewRootCmd builds the command tree. Flags bind to package state, so build
// a fresh tree per invocation.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "calckit",
		Short:        "Everyday calculators on the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(home, configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("remote") {
				cfg.Remote = remoteURL
			}
			logger, err := app.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, logger)
			return err
		},
	}
	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.calckit)")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "calcweb base URL to run against (e.g. http://127.0.0.1:8080)")

	root.AddCommand(listCmd(), describeCmd(), runCmd(), historyCmd())
	return root
}
