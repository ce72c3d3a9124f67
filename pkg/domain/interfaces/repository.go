package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
)

// Repository defines the interface for deployment history persistence
type Repository interface {
	PutDeployment(ctx context.Context, deployment *model.Deployment) error
	GetDeployment(ctx context.Context, id types.DeploymentID) (*model.Deployment, error)
	// ListDeployments returns the newest records first. An empty channelID lists every channel.
	ListDeployments(ctx context.Context, channelID types.ChannelID, limit int) ([]*model.Deployment, error)

	// Close closes the repository connection
	Close() error
}
