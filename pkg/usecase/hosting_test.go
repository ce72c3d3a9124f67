package usecase_test

import (
	"context"
	"slices"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/service/hosting"
	"github.com/secmon-lab/hostdeploy/pkg/usecase"
)

const (
	channelSingleSiteSuccess = `{"status":"success","result":{"my-project":{"site":"my-project","url":"https://my-project--pr-1-abc.web.app","expireTime":"2026-10-26T10:00:00Z"}}}`
	channelError             = `{"status":"error","error":"HTTP Error: 400, Channel IDs can only include letters"}`
	liveSingleSiteSuccess    = `{"status":"success","result":{"hosting":"my-project"}}`
	removeSuccess            = `{"status":"success"}`
	removeSkipped            = `{"status":"skipped"}`
)

func cliReturning(text string) *mocks.HostingCLIMock {
	return &mocks.HostingCLIMock{
		RunWithCredentialsFunc: func(ctx context.Context, args []string, projectID types.ProjectID) (string, error) {
			return text, nil
		},
	}
}

func TestHosting_DeployPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("without target omits --only", func(t *testing.T) {
		cli := cliReturning(channelSingleSiteSuccess)
		result, err := usecase.NewHosting(cli).DeployPreview(ctx, model.ChannelConfig{
			ProjectID: "my-project",
			ChannelID: "pr-1",
		})
		gt.NoError(t, err).Required()

		success, ok := result.(*model.ChannelSuccessResult)
		gt.True(t, ok)
		gt.Equal(t, success.Result.URLs(), []string{"https://my-project--pr-1-abc.web.app"})

		calls := cli.RunWithCredentialsCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Args, []string{"hosting:channel:deploy", "pr-1"})
		gt.Equal(t, calls[0].ProjectID, types.ProjectID("my-project"))
		gt.False(t, slices.Contains(calls[0].Args, "--only"))
	})

	t.Run("with target and expires", func(t *testing.T) {
		cli := cliReturning(channelSingleSiteSuccess)
		_, err := usecase.NewHosting(cli).DeployPreview(ctx, model.ChannelConfig{
			ChannelID: "pr-1",
			Target:    "site-b",
			Expires:   "7d",
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, cli.RunWithCredentialsCalls()[0].Args,
			[]string{"hosting:channel:deploy", "pr-1", "--only", "site-b", "--expires", "7d"})
	})

	t.Run("error result is returned as value", func(t *testing.T) {
		result, err := usecase.NewHosting(cliReturning(channelError)).DeployPreview(ctx, model.ChannelConfig{ChannelID: "pr 1"})
		gt.NoError(t, err).Required()
		gt.Equal(t, result.ResultStatus(), types.ResultStatusError)
	})

	t.Run("missing channel is rejected before invoking", func(t *testing.T) {
		cli := cliReturning(channelSingleSiteSuccess)
		_, err := usecase.NewHosting(cli).DeployPreview(ctx, model.ChannelConfig{})
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidConfig)).True()
		gt.Equal(t, len(cli.RunWithCredentialsCalls()), 0)
	})

	t.Run("tool failure propagates", func(t *testing.T) {
		cli := &mocks.HostingCLIMock{
			RunWithCredentialsFunc: func(ctx context.Context, args []string, projectID types.ProjectID) (string, error) {
				return "", goerr.New("exit status 1", goerr.T(model.ErrTagExternalTool))
			},
		}
		result, err := usecase.NewHosting(cli).DeployPreview(ctx, model.ChannelConfig{ChannelID: "pr-1"})
		gt.Error(t, err)
		gt.Nil(t, result)
		gt.B(t, goerr.HasTag(err, model.ErrTagExternalTool)).True()
	})

	t.Run("unparseable output is malformed", func(t *testing.T) {
		_, err := usecase.NewHosting(cliReturning("not json")).DeployPreview(ctx, model.ChannelConfig{ChannelID: "pr-1"})
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagMalformedResult)).True()
	})
}

func TestHosting_ProductionVerbs(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		target   types.Target
		expected []string
	}{
		{"target unset", "", []string{"deploy", "--only", "hosting"}},
		{"target set", "app2", []string{"deploy", "--only", "hosting:app2"}},
	}

	for _, tc := range testCases {
		t.Run("DeployProduction "+tc.name, func(t *testing.T) {
			cli := cliReturning(liveSingleSiteSuccess)
			result, err := usecase.NewHosting(cli).DeployProduction(ctx, model.ProductionConfig{ProjectID: "my-project", Target: tc.target})
			gt.NoError(t, err).Required()

			success, ok := result.(*model.ProductionSuccessResult)
			gt.True(t, ok)
			gt.Equal(t, success.Result.Hosting, model.HostingTargets{"my-project"})
			gt.Equal(t, cli.RunWithCredentialsCalls()[0].Args, tc.expected)
		})

		t.Run("RemoveProductionPreview "+tc.name, func(t *testing.T) {
			cli := cliReturning(liveSingleSiteSuccess)
			result, err := usecase.NewHosting(cli).RemoveProductionPreview(ctx, model.ProductionConfig{Target: tc.target})
			gt.NoError(t, err).Required()
			gt.Equal(t, result.ResultStatus(), types.ResultStatusSuccess)
			gt.Equal(t, cli.RunWithCredentialsCalls()[0].Args, tc.expected)
		})
	}
}

func TestHosting_DeployProduction_NonJSONFailure(t *testing.T) {
	runner := &mocks.ProcessRunnerMock{
		RunFunc: func(ctx context.Context, command string, args []string, env []string) (*model.CapturedOutput, error) {
			out := &model.CapturedOutput{}
			if slices.Contains(args, "--debug") {
				out.Append([]byte("debug trace"))
				return out, nil
			}
			out.Append([]byte("npm WARN something\n"))
			return out, goerr.New("exit status 1", goerr.T(model.ErrTagExternalTool))
		},
	}
	client := hosting.New(runner, "/tmp/gac.json", hosting.WithBaseEnv(func() []string { return nil }))

	result, err := usecase.NewHosting(client).DeployProduction(context.Background(), model.ProductionConfig{ProjectID: "my-project"})
	gt.Error(t, err)
	gt.Nil(t, result)
	gt.B(t, goerr.HasTag(err, model.ErrTagExternalTool)).True()
	gt.B(t, goerr.HasTag(err, model.ErrTagMalformedResult)).False()
}

func TestHosting_RemovePreview(t *testing.T) {
	ctx := context.Background()

	t.Run("removes channel and never passes --only", func(t *testing.T) {
		cli := cliReturning(removeSuccess)
		result, err := usecase.NewHosting(cli).RemovePreview(ctx, model.ChannelConfig{
			ProjectID: "my-project",
			ChannelID: "pr-1",
			Target:    "app2",
		})
		gt.NoError(t, err).Required()

		_, ok := result.(*model.RemovalSuccessResult)
		gt.True(t, ok)

		args := cli.RunWithCredentialsCalls()[0].Args
		gt.Equal(t, args, []string{"hosting:channel:delete", "pr-1"})
		gt.False(t, slices.Contains(args, "--only"))
	})

	t.Run("channel that never existed is skipped", func(t *testing.T) {
		result, err := usecase.NewHosting(cliReturning(removeSkipped)).RemovePreview(ctx, model.ChannelConfig{ChannelID: "pr-404"})
		gt.NoError(t, err).Required()

		skipped, ok := result.(*model.RemovalSkippedResult)
		gt.True(t, ok)
		gt.Equal(t, skipped.Status, types.ResultStatusSkipped)
	})
}
