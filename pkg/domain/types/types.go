package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ProjectID represents a hosting project identifier
type ProjectID string

// String returns the string representation
func (id ProjectID) String() string {
	return string(id)
}

// ChannelID represents a preview channel identifier
type ChannelID string

// LiveChannelID is the channel name the hosting CLI reserves for production
const LiveChannelID ChannelID = "live"

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// IsLive reports whether the channel is the production channel
func (id ChannelID) IsLive() bool {
	return id == LiveChannelID
}

// Target represents a deploy target alias from the project configuration
type Target string

// String returns the string representation
func (t Target) String() string {
	return string(t)
}

// DeploymentID represents a deployment record identifier
type DeploymentID string

// String returns the string representation
func (id DeploymentID) String() string {
	return string(id)
}

// NewDeploymentID creates a new DeploymentID using UUID v7
func NewDeploymentID() (DeploymentID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate deployment ID")
	}
	return DeploymentID(id.String()), nil
}

// Validate checks if the deployment ID is valid (non-empty)
func (id DeploymentID) Validate() error {
	if id == "" {
		return goerr.New("deployment ID cannot be empty")
	}
	return nil
}
