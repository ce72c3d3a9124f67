package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hostdeploy/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Output formats
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Output holds result rendering settings
type Output struct {
	Format string
}

// Flags returns CLI flags for Output configuration
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Result output format (json, yaml)",
			Category:    "Output",
			Value:       OutputFormatJSON,
			Sources:     cli.EnvVars("HOSTDEPLOY_FORMAT"),
			Destination: &o.Format,
		},
	}
}

// Validate validates the output configuration
func (o *Output) Validate() error {
	switch o.Format {
	case OutputFormatJSON, OutputFormatYAML, "":
		return nil
	default:
		return goerr.New("invalid output format", goerr.T(model.ErrTagInvalidConfig), goerr.V("format", o.Format))
	}
}

// LogValue returns structured log value
func (o Output) LogValue() slog.Value {
	return slog.GroupValue(slog.String("format", o.Format))
}
