package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu          sync.RWMutex
	deployments map[types.DeploymentID]*model.Deployment
}

// NewMemory creates a new memory repository
func NewMemory() *Memory {
	return &Memory{
		deployments: make(map[types.DeploymentID]*model.Deployment),
	}
}

// PutDeployment saves a deployment record, replacing any record with the same ID
func (m *Memory) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	if deployment == nil {
		return goerr.New("deployment is nil")
	}
	if err := deployment.Validate(); err != nil {
		return goerr.Wrap(err, "invalid deployment")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.deployments[deployment.ID] = copyDeployment(deployment)
	return nil
}

// GetDeployment retrieves a deployment record by ID
func (m *Memory) GetDeployment(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	deployment, exists := m.deployments[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrDeploymentNotFound, "failed to get deployment", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return copyDeployment(deployment), nil
}

// ListDeployments lists deployment records, newest first
func (m *Memory) ListDeployments(ctx context.Context, channelID types.ChannelID, limit int) ([]*model.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	deployments := []*model.Deployment{}
	for _, d := range m.deployments {
		if channelID != "" && d.ChannelID != channelID {
			continue
		}
		deployments = append(deployments, copyDeployment(d))
	}

	sortNewestFirst(deployments)

	if limit > 0 && len(deployments) > limit {
		deployments = deployments[:limit]
	}

	return deployments, nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}

// Count returns the number of stored deployment records
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.deployments)
}

func copyDeployment(d *model.Deployment) *model.Deployment {
	c := *d
	if d.URLs != nil {
		c.URLs = append([]string(nil), d.URLs...)
	}
	return &c
}

// sortNewestFirst orders by creation time, then by ID since UUID v7 IDs are time ordered
func sortNewestFirst(deployments []*model.Deployment) {
	sort.Slice(deployments, func(i, j int) bool {
		if !deployments[i].CreatedAt.Equal(deployments[j].CreatedAt) {
			return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
		}
		return deployments[i].ID > deployments[j].ID
	})
}

var _ interfaces.Repository = (*Memory)(nil)
