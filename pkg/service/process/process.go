// Package process runs external commands and captures their stdout chunk by chunk.
package process

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/interfaces"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
)

// waitDelay bounds how long Run waits for the output pipes to close after the
// child was killed. npx keeps grandchildren that may hold them open.
const waitDelay = 5 * time.Second

// Runner executes external commands with os/exec
type Runner struct {
	stderr io.Writer
}

// Option configures a Runner
type Option func(*Runner)

// WithStderr sets where the child's stderr goes. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// New creates a new Runner
func New(opts ...Option) *Runner {
	r := &Runner{
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes command with args and env, and waits for it to exit.
// command may contain spaces (e.g. "npx firebase-tools"); it is split into
// the executable and leading arguments. env replaces the child's environment;
// build it with MergeEnv. On failure the output captured so far is returned
// together with an error tagged model.ErrTagExternalTool.
func (r *Runner) Run(ctx context.Context, command string, args []string, env []string) (*model.CapturedOutput, error) {
	output := &model.CapturedOutput{}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return output, goerr.New("empty command", goerr.T(model.ErrTagExternalTool))
	}
	allArgs := append(parts[1:len(parts):len(parts)], args...)

	cmd := exec.CommandContext(ctx, parts[0], allArgs...)
	cmd.Env = env
	cmd.Stdout = &chunkWriter{output: output}
	cmd.Stderr = r.stderr
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	ctxlog.From(ctx).Debug("Running external command",
		"command", parts[0],
		"args", allArgs,
	)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return output, goerr.Wrap(err, "external command failed",
			goerr.T(model.ErrTagExternalTool),
			goerr.V("command", command),
			goerr.V("args", args),
			goerr.V("exit_code", exitCode),
		)
	}

	return output, nil
}

// chunkWriter appends every write to a CapturedOutput
type chunkWriter struct {
	mu     sync.Mutex
	output *model.CapturedOutput
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.output.Append(p)
	return len(p), nil
}

// Ensure Runner implements interfaces.ProcessRunner.
var _ interfaces.ProcessRunner = (*Runner)(nil)
