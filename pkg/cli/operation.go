package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/cli/config"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// operationFunc runs one hosting operation
type operationFunc func(ctx context.Context, h *usecase.Hosting) (model.Result, error)

// operationConfig is the configuration shared by every hosting operation command
type operationConfig struct {
	hosting   config.Hosting
	target    config.Target
	output    config.Output
	firestore config.Firestore
	slack     config.Slack
}

func (c *operationConfig) Flags() []cli.Flag {
	return joinFlags(
		c.hosting.Flags(),
		c.target.Flags(),
		c.output.Flags(),
		c.firestore.Flags(),
		c.slack.Flags(),
	)
}

// run executes fn, writes its result, and records it. An ErrorResult is
// written like any other result and then returned as an error so the process
// exits non-zero. An error from fn is recorded as a failed deployment.
func (c *operationConfig) run(ctx context.Context, cmd *cli.Command, op usecase.Operation, fn operationFunc) error {
	logger := ctxlog.From(ctx)

	if err := c.output.Validate(); err != nil {
		return err
	}

	client, err := c.hosting.Configure()
	if err != nil {
		return err
	}

	repo, err := c.firestore.Configure(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("Failed to close repository", slog.Any("error", err))
		}
	}()

	var reportOpts []usecase.ReportOption
	if notifier := c.slack.ConfigureOptional(logger); notifier != nil {
		reportOpts = append(reportOpts, usecase.WithNotifier(notifier))
	}
	report := usecase.NewReport(repo, reportOpts...)

	logger.Info("Starting hosting operation",
		slog.String("kind", op.Kind.String()),
		slog.Any("hosting", c.hosting),
		slog.String("channel", op.ChannelID.String()),
		slog.String("target", op.Target.String()),
	)

	result, err := fn(ctx, usecase.NewHosting(client))
	if err != nil {
		if _, recErr := report.RecordFailure(ctx, op, err); recErr != nil {
			logger.Warn("Failed to record failed operation", slog.Any("error", recErr))
		}
		return err
	}

	if err := writeResult(cmd.Root().Writer, c.output.Format, result); err != nil {
		return err
	}

	if _, err := report.Record(ctx, op, result); err != nil {
		return err
	}

	if errResult, ok := result.(*model.ErrorResult); ok {
		return goerr.New("hosting CLI reported an error",
			goerr.V("kind", op.Kind),
			goerr.V("error", errResult.Error))
	}

	return nil
}
