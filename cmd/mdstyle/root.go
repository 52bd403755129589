package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kyaoi/mdstyle/internal/app"
	"github.com/kyaoi/mdstyle/internal/logger"
)

type rootFlags struct {
	catalogPath string
	logFile     string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "mdstyle [article]",
		Short:         "Preview an article and tune its typography and layout",
		Long:          "mdstyle renders a markdown or HTML article in the terminal. Press s to open the style panel.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := openLogger(flags)
			if err != nil {
				return err
			}
			defer closeLog()

			var target string
			if len(args) == 1 {
				target = filepath.Clean(args[0])
			}
			err = app.Run(app.Options{
				Target:      target,
				CatalogPath: flags.catalogPath,
				Logger:      log,
			})
			if err != nil {
				log.Error(err, "mdstyle failed")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&flags.catalogPath, "catalog", "", "YAML file replacing the built-in style options")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func openLogger(flags *rootFlags) (*logger.Logger, func(), error) {
	if flags.logFile == "" {
		log, err := logger.New(logger.Options{Level: flags.logLevel})
		return log, func() {}, err
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: true, Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, func() { _ = f.Close() }, nil
}
