package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/karupanerura/lazyload/internal/config"
)

// app is the state shared by the subcommands, set up before any of them runs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "lazydemo",
		Short:         "Single-flight and progressive loading demo",
		Long:          "lazydemo runs the quiz and hotel flows against a mock backend with realistic latencies.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			a.cfg = cfg
			a.logger = config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default: ./config/lazydemo.yaml or ./lazydemo.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.AddCommand(newQuizCmd(a), newHotelCmd(a))

	return cmd
}

// errorHandler returns a fetch error handler logging at the error level.
func (a *app) errorHandler(msg string) func(error) {
	return func(err error) {
		a.logger.Error().Err(err).Msg(msg)
	}
}
