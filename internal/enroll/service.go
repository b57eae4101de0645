package enroll

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wolftech/enrollkiosk/internal/catalog"
)

// Service performs the terminal save operation: timestamp, code lookup,
// one appended log line, one announce.
type Service struct {
	Catalog     *catalog.Catalog
	Sink        Sink
	Clock       func() time.Time
	ClockFormat string
	Log         zerolog.Logger
}

// NewService wires a save service over the given catalog and sink. A nil
// clock uses local wall time.
func NewService(cat *catalog.Catalog, sink Sink, clockFormat string, log zerolog.Logger) *Service {
	return &Service{
		Catalog:     cat,
		Sink:        sink,
		Clock:       time.Now,
		ClockFormat: clockFormat,
		Log:         log,
	}
}

// Save appends the enrollment record and fires the announce action.
// The record must be complete and its department must resolve to a code;
// either failing is an invariant violation since the wizard builds its
// selectors from the same catalog. Announce failure is logged and dropped.
func (s *Service) Save(r Record) error {
	if !r.Complete() {
		return fmt.Errorf("incomplete record: %+v", r)
	}
	code, ok := s.Catalog.DepartmentCode(r.Department)
	if !ok {
		return fmt.Errorf("no enrollment code for department %q", r.Department)
	}

	timestamp := s.Clock().Format(s.ClockFormat)
	line := FormatLine(timestamp, r, code)
	if err := s.Sink.AppendRecord(line); err != nil {
		return err
	}
	s.Log.Info().
		Str("department", code).
		Str("building", r.Building).
		Msg("enrollment recorded")

	if err := s.Sink.Announce(r.FirstName, r.LastName); err != nil {
		s.Log.Warn().Err(err).Msg("announce failed")
	}
	return nil
}
