package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/hostdeploy/pkg/cli/config"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdDeploy() *cli.Command {
	return &cli.Command{
		Name:  "deploy",
		Usage: "Deploy to a preview channel or to production",
		Commands: []*cli.Command{
			cmdDeployPreview(),
			cmdDeployProduction(),
		},
	}
}

func cmdDeployPreview() *cli.Command {
	var (
		opCfg      operationConfig
		channelCfg config.Channel
	)

	return &cli.Command{
		Name:  "preview",
		Usage: "Deploy to a preview channel",
		Flags: joinFlags(opCfg.Flags(), channelCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := channelCfg.Build(opCfg.hosting.Project(), opCfg.target.Value())

			// The live channel is production
			if cfg.ChannelID.IsLive() {
				ctxlog.From(ctx).Info("Channel is live, deploying to production")
				return deployProduction(ctx, c, &opCfg, cfg.Production())
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			op := usecase.Operation{
				Kind:      types.OperationDeployPreview,
				ProjectID: cfg.ProjectID,
				ChannelID: cfg.ChannelID,
				Target:    cfg.Target,
			}
			return opCfg.run(ctx, c, op, func(ctx context.Context, h *usecase.Hosting) (model.Result, error) {
				return h.DeployPreview(ctx, cfg)
			})
		},
	}
}

func cmdDeployProduction() *cli.Command {
	var opCfg operationConfig

	return &cli.Command{
		Name:  "production",
		Usage: "Deploy to the live channel",
		Flags: opCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := model.ProductionConfig{
				ProjectID: opCfg.hosting.Project(),
				Target:    opCfg.target.Value(),
			}
			return deployProduction(ctx, c, &opCfg, cfg)
		},
	}
}

func deployProduction(ctx context.Context, c *cli.Command, opCfg *operationConfig, cfg model.ProductionConfig) error {
	op := usecase.Operation{
		Kind:      types.OperationDeployProduction,
		ProjectID: cfg.ProjectID,
		ChannelID: types.LiveChannelID,
		Target:    cfg.Target,
	}
	return opCfg.run(ctx, c, op, func(ctx context.Context, h *usecase.Hosting) (model.Result, error) {
		return h.DeployProduction(ctx, cfg)
	})
}
