package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/rostergo/internal/config"
	"github.com/vk/rostergo/internal/ctxlog"
)

// fileRoot is the top-level schema of a settings file.
type fileRoot struct {
	Prompt   string    `hcl:"prompt,optional"`
	DataFile string    `hcl:"data_file,optional"`
	Log      *logBlock `hcl:"log,block"`
}

// logBlock is the optional `log { ... }` block.
type logBlock struct {
	File       string `hcl:"file,optional"`
	Level      string `hcl:"level,optional"`
	Format     string `hcl:"format,optional"`
	MaxSizeMB  int    `hcl:"max_size_mb,optional"`
	MaxBackups int    `hcl:"max_backups,optional"`
}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// EnvFile is an optional dotenv file whose values are visible as
	// `env.NAME` underneath the process environment.
	EnvFile string
	// Environ returns the process environment. Defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL settings loader.
func NewLoader(envFile string) *Loader {
	return &Loader{EnvFile: envFile}
}

// Load parses and decodes the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx, err := l.evalContext(ctx)
	if err != nil {
		return nil, err
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	settings := &config.Settings{
		Prompt:   root.Prompt,
		DataFile: root.DataFile,
	}
	if root.Log != nil {
		settings.Log = config.Log{
			File:       root.Log.File,
			Level:      root.Log.Level,
			Format:     root.Log.Format,
			MaxSizeMB:  root.Log.MaxSizeMB,
			MaxBackups: root.Log.MaxBackups,
		}
	}
	logger.Debug("HCL settings decoded.", "path", path, "has_log_block", root.Log != nil)
	return settings, nil
}
