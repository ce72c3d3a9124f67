package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/hostdeploy/pkg/cli/config"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdHistory() *cli.Command {
	var (
		firestoreCfg config.Firestore
		outputCfg    config.Output
		channelID    string
		deployID     string
		limit        int64
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "channel-id",
				Usage:       "Only list operations on this channel",
				Destination: &channelID,
			},
			&cli.StringFlag{
				Name:        "id",
				Usage:       "Show a single operation",
				Destination: &deployID,
			},
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Maximum number of operations to list",
				Value:       usecase.DefaultHistoryLimit,
				Destination: &limit,
			},
		},
		outputCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "history",
		Usage: "Show recorded hosting operations",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := outputCfg.Validate(); err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Warn("Failed to close repository", slog.Any("error", err))
				}
			}()

			report := usecase.NewReport(repo)

			if deployID != "" {
				deployment, err := report.Get(ctx, types.DeploymentID(deployID))
				if err != nil {
					return err
				}
				return writeResult(c.Root().Writer, outputCfg.Format, deployment)
			}

			deployments, err := report.History(ctx, types.ChannelID(channelID), int(limit))
			if err != nil {
				return err
			}
			logger.Debug("Listed deployments", slog.Int("count", len(deployments)))

			return writeResult(c.Root().Writer, outputCfg.Format, deployments)
		},
	}
}
