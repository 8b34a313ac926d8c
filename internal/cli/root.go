package cli

import (
	"os"

	"github.com/spf13/cobra"

	"paydesk/internal/domain/salary"
	"paydesk/internal/messages"
	"paydesk/internal/platform/config"
	"paydesk/internal/platform/logger"
	"paydesk/internal/reports"
	"paydesk/internal/shell"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		lang    string
		noColor bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:          "paydesk",
		Short:        "Interactive salary calculator for registered work types",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Load()
			if lang != "" {
				cfg.Lang = lang
			}
			if noColor {
				cfg.Color = false
			}
			if debug {
				cfg.Debug = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			cleanup, err := logger.Setup(cfg.LogFile, cfg.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			theme := shell.DefaultTheme()
			if !cfg.Color {
				theme = shell.PlainTheme()
			}

			sh := shell.New(shell.Options{
				In:       os.Stdin,
				Out:      os.Stdout,
				Err:      os.Stderr,
				Registry: salary.NewRegistry(),
				Catalog:  messages.ForLang(cfg.Lang),
				Theme:    theme,
				Logger:   logger.L(),
				Exporter: reports.NewPDFExporter(cfg.ReportDir),
			})
			return sh.Run()
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "message language (en or ru), overrides PAYDESK_LANG")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging to PAYDESK_LOG_FILE")
	return cmd
}
