package pipeline

import (
	"fmt"
	"strings"
)

// Warning severities.
const (
	SeverityRecoverable = "recoverable"
	SeverityAdvisory    = "advisory"
)

// Warning categories.
const (
	CategoryProtect   = "protect"
	CategoryFigure    = "figure"
	CategoryTable     = "table"
	CategoryLabel     = "label"
	CategoryReference = "reference"
	CategoryStyle     = "style"
)

// Warning describes a recoverable or advisory issue found during conversion.
// Warnings never abort the pipeline; they are collected and returned to the
// caller, which may choose to treat them as build-breaking (strict mode).
type Warning struct {
	Line     int    // 1-based line in the working text, 0 if unknown
	Category string
	Severity string
	Message  string
	Fix      string // suggested fix, may be empty
}

// String formats the warning for human display.
func (w Warning) String() string {
	loc := ""
	if w.Line > 0 {
		loc = fmt.Sprintf("line %d: ", w.Line)
	}
	s := fmt.Sprintf("%s[%s] %s", loc, w.Category, w.Message)
	if w.Fix != "" {
		s += " (hint: " + w.Fix + ")"
	}
	return s
}

// WarningList collects warnings for one document build.
type WarningList struct {
	warnings []Warning
}

// Add appends a warning.
func (l *WarningList) Add(w Warning) {
	l.warnings = append(l.warnings, w)
}

// Addf appends a recoverable warning with a formatted message.
func (l *WarningList) Addf(category, format string, args ...any) {
	l.Add(Warning{
		Category: category,
		Severity: SeverityRecoverable,
		Message:  fmt.Sprintf(format, args...),
	})
}

// AddfAt appends a recoverable warning pinned to a 1-based line in the
// working text. Converters that scan by line or byte offset use this; the
// regex-driven converters report without a location.
func (l *WarningList) AddfAt(line int, category, format string, args ...any) {
	l.Add(Warning{
		Line:     line,
		Category: category,
		Severity: SeverityRecoverable,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Advise appends an advisory warning with a formatted message.
func (l *WarningList) Advise(category, format string, args ...any) {
	l.Add(Warning{
		Category: category,
		Severity: SeverityAdvisory,
		Message:  fmt.Sprintf(format, args...),
	})
}

// All returns the collected warnings in insertion order.
func (l *WarningList) All() []Warning {
	return l.warnings
}

// Len returns the number of collected warnings.
func (l *WarningList) Len() int {
	return len(l.warnings)
}

// lineAt returns the 1-based line number of a byte offset in text.
func lineAt(text string, offset int) int {
	return 1 + strings.Count(text[:offset], "\n")
}
