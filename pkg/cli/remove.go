package cli

import (
	"context"

	"github.com/secmon-lab/hostdeploy/pkg/cli/config"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRemove() *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "Tear down preview channels",
		Commands: []*cli.Command{
			cmdRemovePreview(),
			cmdRemoveProductionPreview(),
		},
	}
}

func cmdRemovePreview() *cli.Command {
	var (
		opCfg      operationConfig
		channelCfg config.Channel
	)

	return &cli.Command{
		Name:  "preview",
		Usage: "Delete a preview channel",
		Flags: joinFlags(opCfg.Flags(), channelCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := channelCfg.Build(opCfg.hosting.Project(), opCfg.target.Value())
			if err := cfg.Validate(); err != nil {
				return err
			}

			op := usecase.Operation{
				Kind:      types.OperationRemovePreview,
				ProjectID: cfg.ProjectID,
				ChannelID: cfg.ChannelID,
			}
			return opCfg.run(ctx, c, op, func(ctx context.Context, h *usecase.Hosting) (model.Result, error) {
				return h.RemovePreview(ctx, cfg)
			})
		},
	}
}

func cmdRemoveProductionPreview() *cli.Command {
	var opCfg operationConfig

	return &cli.Command{
		Name:  "production-preview",
		Usage: "Run the production hosting deploy used by cleanup workflows",
		Flags: opCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := model.ProductionConfig{
				ProjectID: opCfg.hosting.Project(),
				Target:    opCfg.target.Value(),
			}

			op := usecase.Operation{
				Kind:      types.OperationRemoveProductionPreview,
				ProjectID: cfg.ProjectID,
				Target:    cfg.Target,
			}
			return opCfg.run(ctx, c, op, func(ctx context.Context, h *usecase.Hosting) (model.Result, error) {
				return h.RemoveProductionPreview(ctx, cfg)
			})
		},
	}
}
