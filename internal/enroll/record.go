package enroll

import "fmt"

// Record holds one enrollment submission. Created only at the final Submit
// action and never modified afterwards.
type Record struct {
	FirstName  string
	LastName   string
	Department string
	Building   string
}

// Complete reports whether every field carries a value. No trimming: a
// whitespace-only entry counts, matching the kiosk's advance guards.
func (r Record) Complete() bool {
	return r.FirstName != "" && r.LastName != "" && r.Department != "" && r.Building != ""
}

// FormatLine renders the single log line appended per enrollment. The shape
// is a compatibility contract for downstream consumers of the record log:
//
//	<timestamp> - <first> <last> - <building> - <code> (<department>)
func FormatLine(timestamp string, r Record, code string) string {
	return fmt.Sprintf("%s - %s %s - %s - %s (%s)\n",
		timestamp, r.FirstName, r.LastName, r.Building, code, r.Department)
}
