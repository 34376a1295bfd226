package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/joho/godotenv"
	"github.com/vk/rostergo/internal/ctxlog"
	"github.com/vk/rostergo/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// evalContext exposes the environment to settings expressions as the `env`
// map. Process variables win over dotenv values.
func (l *Loader) evalContext(ctx context.Context) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)

	vars := make(map[string]string)
	if l.EnvFile != "" {
		exists, err := fsutil.FileExists(l.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("failed to stat env file %s: %w", l.EnvFile, err)
		}
		if exists {
			dotenv, err := godotenv.Read(l.EnvFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read env file %s: %w", l.EnvFile, err)
			}
			for k, v := range dotenv {
				vars[k] = v
			}
			logger.Debug("Env file merged into settings context.", "path", l.EnvFile, "count", len(dotenv))
		} else {
			logger.Debug("Env file not found, skipping.", "path", l.EnvFile)
		}
	}

	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	for _, kv := range environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envValue(vars)},
	}, nil
}

// envValue converts the variables into a cty map of strings.
func envValue(vars map[string]string) cty.Value {
	m := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			continue
		}
		m[k] = cty.StringVal(v)
	}
	if len(m) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(m)
}
