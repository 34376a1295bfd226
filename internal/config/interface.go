package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and returns only the values it
	// sets. Callers merge the result over Default.
	Load(ctx context.Context, path string) (*Settings, error)
}
