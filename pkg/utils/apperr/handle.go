package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
)

// Handle logs err with a message chosen by its tag
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	switch {
	case goerr.HasTag(err, model.ErrTagInvalidConfig):
		logger.Error("invalid configuration", "error", err)
	case goerr.HasTag(err, model.ErrTagExternalTool):
		logger.Error("hosting CLI failed", "error", err)
	case goerr.HasTag(err, model.ErrTagMalformedResult):
		logger.Error("unexpected hosting CLI output", "error", err)
	case errors.Is(err, context.Canceled):
		logger.Warn("operation cancelled", "error", err)
	default:
		logger.Error("application error", "error", err)
	}
}
