package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/rostergo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rostergo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
rostergo - An interactive student roster with XML storage.

Usage:
  rostergo [options] [DATA_FILE]

Arguments:
  DATA_FILE
    Optional XML roster loaded before the first prompt.

Commands (at the prompt):
  add, list, select <arg>, load <file>, save <file>, help, exit

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	cFlag := flagSet.String("c", "", "Path to an HCL settings file (shorthand).")
	envFileFlag := flagSet.String("env-file", ".env", "Dotenv file available to the settings file as env.NAME.")
	loadFlag := flagSet.String("load", "", "XML roster to load at startup.")
	logFileFlag := flagSet.String("log-file", "", "Log file path, '-' for the error stream. Default 'students.log'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	dataFile := *loadFlag
	if dataFile == "" && flagSet.NArg() == 1 {
		dataFile = flagSet.Arg(0)
	}
	slog.Debug("Paths determined.", "config", configPath, "data_file", dataFile)

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		EnvFile:    *envFileFlag,
		DataFile:   dataFile,
		LogFile:    *logFileFlag,
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
