package interfaces

//go:generate moq -out mocks/process_mock.go -pkg mocks . ProcessRunner HostingCLI

import (
	"context"

	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
)

// ProcessRunner spawns one external process and captures its stdout.
// On failure it returns both the output captured so far and an error.
type ProcessRunner interface {
	Run(ctx context.Context, command string, args []string, env []string) (*model.CapturedOutput, error)
}

// HostingCLI invokes the hosting provider's CLI with credentials and returns
// the text of its final result
type HostingCLI interface {
	RunWithCredentials(ctx context.Context, args []string, projectID types.ProjectID) (string, error)
}
