package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	// ErrTagExternalTool marks a hosting CLI process that exited non-zero or failed to start
	ErrTagExternalTool = goerr.NewTag("external_tool")
	// ErrTagMalformedResult marks CLI output that does not match the expected JSON shape
	ErrTagMalformedResult = goerr.NewTag("malformed_result")
	// ErrTagInvalidConfig marks invalid caller-supplied parameters
	ErrTagInvalidConfig = goerr.NewTag("invalid_config")
)

// Sentinel errors for domain operations
var (
	ErrDeploymentNotFound = goerr.New("deployment not found")
)
