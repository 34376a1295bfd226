package config

// Settings is the unified, format-agnostic representation of the
// application settings file.
type Settings struct {
	// Prompt is printed before every command.
	Prompt string
	// DataFile, when set, is loaded into the roster at startup.
	DataFile string
	Log      Log
}

// Log configures the log sink.
type Log struct {
	// File is the log file path. "-" sends logs to the error stream.
	File       string
	Level      string
	Format     string
	MaxSizeMB  int
	MaxBackups int
}

// Default returns the settings used when no settings file is given.
func Default() *Settings {
	return &Settings{
		Prompt: ">>> ",
		Log: Log{
			File:       "students.log",
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Merge overlays the non-zero fields of other onto s.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	if other.Prompt != "" {
		s.Prompt = other.Prompt
	}
	if other.DataFile != "" {
		s.DataFile = other.DataFile
	}
	if other.Log.File != "" {
		s.Log.File = other.Log.File
	}
	if other.Log.Level != "" {
		s.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		s.Log.Format = other.Log.Format
	}
	if other.Log.MaxSizeMB > 0 {
		s.Log.MaxSizeMB = other.Log.MaxSizeMB
	}
	if other.Log.MaxBackups > 0 {
		s.Log.MaxBackups = other.Log.MaxBackups
	}
}
