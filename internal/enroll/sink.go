package enroll

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Sink is the external collaborator the save operation talks to: the
// append-only record log plus the host-level announce action. Kept as an
// interface so the wizard and its tests can run against a fake.
type Sink interface {
	AppendRecord(line string) error
	Announce(firstName, lastName string) error
}

// FileSink appends records to a flat text file and announces by running a
// configured host command (a speech-synthesis utility on the kiosks).
type FileSink struct {
	Path    string
	Command string
	Args    []string
}

// AppendRecord appends one formatted line to the record log, creating the
// file if absent and never truncating. The file handle lives only for the
// duration of the call.
func (s *FileSink) AppendRecord(line string) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open record log %s: %w", s.Path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append record log %s: %w", s.Path, err)
	}
	return nil
}

// Announce runs the configured command with {first}/{last} placeholders
// expanded. Callers ignore the error beyond logging it: announce failure
// must never block enrollment.
func (s *FileSink) Announce(firstName, lastName string) error {
	if s.Command == "" {
		return nil
	}
	args := make([]string, 0, len(s.Args))
	for _, a := range s.Args {
		a = strings.ReplaceAll(a, "{first}", firstName)
		a = strings.ReplaceAll(a, "{last}", lastName)
		args = append(args, a)
	}
	if err := exec.Command(s.Command, args...).Run(); err != nil {
		return fmt.Errorf("announce command %s: %w", s.Command, err)
	}
	return nil
}
