package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/repository"
	"github.com/secmon-lab/hostdeploy/pkg/usecase"
)

func TestReport_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and notifies a preview deploy", func(t *testing.T) {
		repo := repository.NewMemory()
		notifier := &mocks.NotifierMock{
			NotifyDeploymentFunc: func(ctx context.Context, deployment *model.Deployment) error {
				return nil
			},
		}
		report := usecase.NewReport(repo, usecase.WithNotifier(notifier))

		result, err := model.ParseChannelDeployResult(channelSingleSiteSuccess)
		gt.NoError(t, err).Required()

		deployment, err := report.Record(ctx, usecase.Operation{
			Kind:      types.OperationDeployPreview,
			ProjectID: "my-project",
			ChannelID: "pr-1",
		}, result)
		gt.NoError(t, err).Required()
		gt.Equal(t, deployment.URLs, []string{"https://my-project--pr-1-abc.web.app"})
		gt.Equal(t, deployment.ExpireTime, "2026-10-26T10:00:00Z")

		stored, err := report.Get(ctx, deployment.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, stored.ChannelID, types.ChannelID("pr-1"))

		calls := notifier.NotifyDeploymentCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Deployment.ID, deployment.ID)
	})

	t.Run("storage and notification failures do not fail the record", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			PutDeploymentFunc: func(ctx context.Context, deployment *model.Deployment) error {
				return goerr.New("unavailable")
			},
		}
		notifier := &mocks.NotifierMock{
			NotifyDeploymentFunc: func(ctx context.Context, deployment *model.Deployment) error {
				return goerr.New("slack is down")
			},
		}
		report := usecase.NewReport(repo, usecase.WithNotifier(notifier))

		deployment, err := report.Record(ctx, usecase.Operation{Kind: types.OperationRemovePreview, ChannelID: "pr-1"},
			&model.RemovalSkippedResult{Status: types.ResultStatusSkipped})
		gt.NoError(t, err).Required()
		gt.Equal(t, deployment.Status, types.ResultStatusSkipped)
		gt.Equal(t, len(repo.PutDeploymentCalls()), 1)
		gt.Equal(t, len(notifier.NotifyDeploymentCalls()), 1)
	})

	t.Run("error result is recorded with its message", func(t *testing.T) {
		report := usecase.NewReport(repository.NewMemory())

		deployment, err := report.Record(ctx, usecase.Operation{Kind: types.OperationDeployProduction, Target: "app2"},
			&model.ErrorResult{Status: types.ResultStatusError, Error: "quota exceeded"})
		gt.NoError(t, err).Required()
		gt.Equal(t, deployment.Error, "quota exceeded")
	})

	t.Run("invalid kind", func(t *testing.T) {
		report := usecase.NewReport(repository.NewMemory())
		_, err := report.Record(ctx, usecase.Operation{Kind: "rollback"}, &model.RemovalSuccessResult{Status: types.ResultStatusSuccess})
		gt.Error(t, err)
	})
}

func TestReport_RecordFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and notifies an operation that ended with an error", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			PutDeploymentFunc: func(ctx context.Context, deployment *model.Deployment) error {
				return nil
			},
		}
		notifier := &mocks.NotifierMock{
			NotifyDeploymentFunc: func(ctx context.Context, deployment *model.Deployment) error {
				return nil
			},
		}
		report := usecase.NewReport(repo, usecase.WithNotifier(notifier))

		cause := goerr.New("hosting CLI failed in debug mode", goerr.T(model.ErrTagExternalTool))
		deployment, err := report.RecordFailure(ctx, usecase.Operation{
			Kind:      types.OperationDeployPreview,
			ProjectID: "my-project",
			ChannelID: "pr-1",
		}, cause)
		gt.NoError(t, err).Required()
		gt.Equal(t, deployment.Status, types.ResultStatusError)
		gt.S(t, deployment.Error).Contains("hosting CLI failed in debug mode")

		puts := repo.PutDeploymentCalls()
		gt.Equal(t, len(puts), 1)
		gt.Equal(t, puts[0].Deployment.ID, deployment.ID)
		gt.Equal(t, puts[0].Deployment.Status, types.ResultStatusError)

		notes := notifier.NotifyDeploymentCalls()
		gt.Equal(t, len(notes), 1)
		gt.Equal(t, notes[0].Deployment.ChannelID, types.ChannelID("pr-1"))
		gt.Equal(t, notes[0].Deployment.Error, deployment.Error)
	})

	t.Run("shows up in history", func(t *testing.T) {
		report := usecase.NewReport(repository.NewMemory())
		_, err := report.RecordFailure(ctx, usecase.Operation{Kind: types.OperationDeployProduction, Target: "app2"}, goerr.New("exit status 1"))
		gt.NoError(t, err).Required()

		list, err := report.History(ctx, "", 0)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(list), 1)
		gt.Equal(t, list[0].Status, types.ResultStatusError)
		gt.Equal(t, list[0].Error, "exit status 1")
	})

	t.Run("nil cause", func(t *testing.T) {
		report := usecase.NewReport(repository.NewMemory())
		_, err := report.RecordFailure(ctx, usecase.Operation{Kind: types.OperationDeployProduction}, nil)
		gt.Error(t, err)
	})
}

func TestReport_History(t *testing.T) {
	ctx := context.Background()
	report := usecase.NewReport(repository.NewMemory())

	for _, ch := range []types.ChannelID{"pr-1", "pr-2", "pr-1"} {
		_, err := report.Record(ctx, usecase.Operation{Kind: types.OperationRemovePreview, ChannelID: ch},
			&model.RemovalSuccessResult{Status: types.ResultStatusSuccess})
		gt.NoError(t, err).Required()
	}

	all, err := report.History(ctx, "", 0)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(all), 3)

	pr1, err := report.History(ctx, "pr-1", 10)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(pr1), 2)
	for _, d := range pr1 {
		gt.Equal(t, d.ChannelID, types.ChannelID("pr-1"))
	}

	limited, err := report.History(ctx, "", 1)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(limited), 1)
	gt.Equal(t, limited[0].ChannelID, types.ChannelID("pr-1"))

	t.Run("history passes limit to repository", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			ListDeploymentsFunc: func(ctx context.Context, channelID types.ChannelID, limit int) ([]*model.Deployment, error) {
				return nil, nil
			},
		}
		_, err := usecase.NewReport(repo).History(ctx, "pr-9", 0)
		gt.NoError(t, err)
		gt.Equal(t, repo.ListDeploymentsCalls()[0].Limit, usecase.DefaultHistoryLimit)
	})

	t.Run("get with empty id", func(t *testing.T) {
		_, err := report.Get(ctx, "")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidConfig)).True()
	})
}
