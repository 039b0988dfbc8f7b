// Package rowerror defines the diagnostic taxonomy for the tabular import
// boundary. Malformed rows never abort a batch; they are dropped or defaulted
// individually, and each incident is reported as a Diagnostic.
package rowerror

import "fmt"

// Reason classifies why a row was dropped or defaulted.
type Reason string

const (
	// ReasonEmptyProperty marks a row dropped for a missing property name.
	ReasonEmptyProperty Reason = "empty_property"
	// ReasonBadYear marks a row dropped for an unparseable year.
	ReasonBadYear Reason = "bad_year"
	// ReasonUnknownMonth marks a row whose month text did not resolve and
	// was defaulted to January. The row is still imported.
	ReasonUnknownMonth Reason = "unknown_month"
)

// Diagnostic describes one incident on one input row. Line is the 1-based
// line number in the input, including any header line.
type Diagnostic struct {
	Line    int
	Reason  Reason
	Value   string
	Dropped bool
}

func (d Diagnostic) String() string {
	switch d.Reason {
	case ReasonEmptyProperty:
		return fmt.Sprintf("line %d: row dropped, property name is empty", d.Line)
	case ReasonBadYear:
		return fmt.Sprintf("line %d: row dropped, year %q is not an integer", d.Line, d.Value)
	case ReasonUnknownMonth:
		return fmt.Sprintf("line %d: month %q not recognized, defaulted to Gennaio", d.Line, d.Value)
	}
	return fmt.Sprintf("line %d: %s (%q)", d.Line, d.Reason, d.Value)
}
