package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/cli/config"
	"github.com/secmon-lab/hostdeploy/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()
	app := newApp(os.Stdout, func(l *slog.Logger) { logger = l })

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctxlog.With(ctx, logger), err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// newApp builds the command tree. Results are written to w. onLogger receives
// the configured logger.
func newApp(w io.Writer, onLogger func(*slog.Logger)) *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:      "hostdeploy",
		Usage:     "Deploy to hosting preview and live channels from CI",
		Version:   "0.1.0",
		Flags:     loggerCfg.Flags(),
		Writer:    w,
		ErrWriter: os.Stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Configure logger
			logger, err := loggerCfg.Configure(c.Root().ErrWriter)
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			if onLogger != nil {
				onLogger(logger)
			}
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdDeploy(),
			cmdRemove(),
			cmdHistory(),
		},
	}
}
