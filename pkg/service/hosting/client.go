// Package hosting invokes the hosting provider's CLI with credentials and a
// single verbose retry on failure.
package hosting

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/secmon-lab/hostdeploy/pkg/domain/types"
	"github.com/secmon-lab/hostdeploy/pkg/service/process"
	"github.com/tidwall/gjson"
)

const (
	// DefaultCommand runs the Firebase CLI through npx
	DefaultCommand = "npx firebase-tools"
	// DefaultAgent identifies this tool to the CLI
	DefaultAgent = "hostdeploy"

	// EnvDeployAgent is read by the CLI to attribute deploys
	EnvDeployAgent = "FIREBASE_DEPLOY_AGENT"
	// EnvCredentials points the CLI at a service account key file
	EnvCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
)

// attemptModes is the fixed attempt sequence: a machine-readable run, then
// at most one verbose run for diagnostics.
var attemptModes = []types.OutputMode{types.OutputModeJSON, types.OutputModeDebug}

// Client runs the hosting CLI
type Client struct {
	runner          interfaces.ProcessRunner
	command         string
	agent           string
	credentialsPath string
	baseEnv         func() []string
}

// Option configures a Client
type Option func(*Client)

// WithCommand sets the CLI command line, e.g. "firebase"
func WithCommand(command string) Option {
	return func(c *Client) {
		c.command = command
	}
}

// WithAgent sets the value of FIREBASE_DEPLOY_AGENT
func WithAgent(agent string) Option {
	return func(c *Client) {
		c.agent = agent
	}
}

// WithBaseEnv sets the environment the overlay is merged onto. Defaults to os.Environ.
func WithBaseEnv(fn func() []string) Option {
	return func(c *Client) {
		c.baseEnv = fn
	}
}

// New creates a new Client authenticating with the key file at credentialsPath
func New(runner interfaces.ProcessRunner, credentialsPath string, opts ...Option) *Client {
	c := &Client{
		runner:          runner,
		command:         DefaultCommand,
		agent:           DefaultAgent,
		credentialsPath: credentialsPath,
		baseEnv:         os.Environ,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunWithCredentials runs the CLI with args and returns the last stdout chunk of
// the JSON-mode attempt.
//
// If the JSON-mode attempt fails, its output and error are logged and the CLI
// is run once more with --debug so the verbose diagnostics land in the logs.
// The debug run is never parsed: when it succeeds, the JSON-mode output is
// returned if its last chunk is JSON (the CLI usually prints a structured error
// before exiting non-zero), otherwise the JSON-mode error is returned. When the debug
// run also fails, its error is returned. There is no third attempt.
func (c *Client) RunWithCredentials(ctx context.Context, args []string, projectID types.ProjectID) (string, error) {
	logger := ctxlog.From(ctx)
	env := process.MergeEnv(c.baseEnv(), c.envOverlay())

	var (
		jsonOutput *model.CapturedOutput
		jsonErr    error
	)

	for _, mode := range attemptModes {
		output, err := c.runner.Run(ctx, c.command, BuildArgs(args, projectID, mode), env)

		if mode == types.OutputModeDebug {
			if err != nil {
				logger.Error("Hosting CLI failed again in debug mode",
					slog.String("output", output.String()),
					slog.Any("error", err),
				)
				return "", goerr.Wrap(err, "hosting CLI failed in debug mode",
					goerr.T(model.ErrTagExternalTool),
					goerr.V("attempt", string(mode)),
					goerr.V("first_error", jsonErr.Error()),
				)
			}

			logger.Info("Hosting CLI debug output", slog.String("output", output.String()))
			last := jsonOutput.Last()
			if !gjson.Valid(strings.TrimSpace(last)) {
				return "", goerr.Wrap(jsonErr, "hosting CLI failed without a result",
					goerr.T(model.ErrTagExternalTool),
					goerr.V("attempt", string(types.OutputModeJSON)),
					goerr.V("debug_retry", "succeeded"),
					goerr.V("last_output", last),
				)
			}
			return last, nil
		}

		if err == nil {
			return output.Last(), nil
		}

		logger.Warn("Hosting CLI failed",
			slog.String("output", output.String()),
			slog.Any("error", err),
		)
		logger.Info("Retrying with the --debug flag for better error output")
		jsonOutput, jsonErr = output, err
	}

	return "", goerr.New("unreachable: no attempt modes")
}

func (c *Client) envOverlay() map[string]string {
	return map[string]string{
		EnvDeployAgent: c.agent,
		EnvCredentials: c.credentialsPath,
	}
}

// BuildArgs appends the project and output mode flags to the verb arguments.
// The result always holds exactly one of --json and --debug.
func BuildArgs(args []string, projectID types.ProjectID, mode types.OutputMode) []string {
	result := make([]string, 0, len(args)+3)
	result = append(result, args...)
	if projectID != "" {
		result = append(result, "--project", projectID.String())
	}
	return append(result, mode.Flag())
}

// Ensure Client implements interfaces.HostingCLI.
var _ interfaces.HostingCLI = (*Client)(nil)
