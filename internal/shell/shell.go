package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/vk/rostergo/internal/ctxlog"
	"github.com/vk/rostergo/internal/roster"
)

// DefaultPrompt is printed before every command unless overridden.
const DefaultPrompt = ">>> "

const helpText = `Commands:

add - add a student;
list - list all students;
select <arg> - list students with an average grade of 4 or higher;
load <file> - load students from an XML file;
save <file> - save students to an XML file;
help - show this help;
exit - quit the program.
`

// Shell reads commands from an input stream and applies them to a roster.
type Shell struct {
	roster *roster.Roster
	in     *bufio.Reader
	inErr  error
	out    io.Writer
	errOut io.Writer
	prompt string
}

// New creates a shell bound to the given roster and streams. An empty
// prompt falls back to DefaultPrompt.
func New(r *roster.Roster, in io.Reader, out, errOut io.Writer, prompt string) *Shell {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Shell{
		roster: r,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		prompt: prompt,
	}
}

// Run processes commands until `exit` or end of input. Command failures
// are reported and the loop continues; only a read error on the input
// stream ends Run with an error.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Shell started.")

	for {
		line, ok := s.readLine(s.prompt)
		if !ok {
			if s.inErr != nil {
				return fmt.Errorf("failed to read command: %w", s.inErr)
			}
			logger.Debug("Input closed, leaving shell.")
			return nil
		}

		exit, err := s.Execute(ctx, line)
		if err != nil {
			s.Report(ctx, line, err)
			continue
		}
		if exit {
			logger.Debug("Exit requested, leaving shell.")
			return nil
		}
	}
}

// Execute runs a single command line. It reports exit=true for `exit`.
func (s *Shell) Execute(ctx context.Context, line string) (exit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	verb, arg := splitCommand(line)

	switch verb {
	case "exit":
		if arg != "" {
			break
		}
		return true, nil
	case "add":
		if arg != "" {
			break
		}
		return false, s.add(ctx)
	case "list":
		if arg != "" {
			break
		}
		s.list(ctx)
		return false, nil
	case "select":
		if arg == "" {
			break
		}
		return false, s.selectPassing(ctx, arg)
	case "load":
		return false, s.Load(ctx, arg)
	case "save":
		return false, s.Save(ctx, arg)
	case "help":
		if arg != "" {
			break
		}
		fmt.Fprint(s.out, helpText)
		return false, nil
	}
	return false, &UnknownCommandError{Command: line}
}

// Report logs a failed command and prints the error to the error stream.
func (s *Shell) Report(ctx context.Context, line string, err error) {
	ctxlog.FromContext(ctx).Error("Command failed.", "command", line, "error", err)
	fmt.Fprintln(s.errOut, err)
}

// Load replaces the roster with the contents of the XML file at path.
func (s *Shell) Load(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("load: file name: %w", ErrMissingArgument)
	}
	if err := s.roster.Load(path); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Roster loaded from file.", "path", path, "count", s.roster.Len())
	return nil
}

// Save writes the roster to the XML file at path.
func (s *Shell) Save(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("save: file name: %w", ErrMissingArgument)
	}
	if err := s.roster.Save(path); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Roster saved to file.", "path", path, "count", s.roster.Len())
	return nil
}

func (s *Shell) add(ctx context.Context) error {
	var fields [3]string
	for i, question := range []string{"Full name? ", "Group? ", "Grades? "} {
		answer, ok := s.readLine(question)
		if !ok {
			if s.inErr != nil {
				return fmt.Errorf("add: %w", s.inErr)
			}
			return fmt.Errorf("add: %w", io.ErrUnexpectedEOF)
		}
		fields[i] = answer
	}

	s.roster.Add(fields[0], fields[1], fields[2])
	ctxlog.FromContext(ctx).Info("Student added.", "name", fields[0], "group", fields[1], "grade", fields[2])
	return nil
}

func (s *Shell) list(ctx context.Context) {
	fmt.Fprintln(s.out, s.roster.String())
	ctxlog.FromContext(ctx).Info("Roster listed.", "count", s.roster.Len())
}

// selectPassing prints the students at or above the passing average. arg
// is only logged.
func (s *Shell) selectPassing(ctx context.Context, arg string) error {
	logger := ctxlog.FromContext(ctx)

	selected, err := s.roster.Select()
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintln(s.out, "No students with an average grade of 4 or higher found.")
		logger.Warn("No students with a passing average.", "threshold", roster.PassingAverage, "arg", arg)
		return nil
	}

	for i, st := range selected {
		fmt.Fprintf(s.out, "%4d: %s\n", i+1, st.Name)
	}
	logger.Info("Students with a passing average found.", "count", len(selected), "threshold", roster.PassingAverage, "arg", arg)
	return nil
}

// readLine prints prompt and reads one line of any length. ok is false at
// end of input or on a read error, which is kept in inErr.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if s.inErr != nil {
		return "", false
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.inErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

// splitCommand separates the lower-cased verb from the rest of the line.
func splitCommand(line string) (verb, arg string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), strings.TrimSpace(line[i:])
}
