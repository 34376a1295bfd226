package roster

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// PassingAverage is the inclusive lower bound used by Select.
const PassingAverage = 4.0

// Column widths of the rendered table. They are minimums, wider values are
// printed in full.
const (
	widthIndex = 4
	widthName  = 30
	widthGroup = 20
	widthGrade = 15
)

// Roster is an ordered collection of students, sorted by name after every
// insert.
type Roster struct {
	students []Student
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// Add appends a student and re-sorts the whole roster by name.
func (r *Roster) Add(name, group, grade string) {
	r.students = append(r.students, Student{Name: name, Group: group, Grade: grade})
	sort.SliceStable(r.students, func(i, j int) bool {
		return r.students[i].Name < r.students[j].Name
	})
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.students)
}

// Students returns a copy of the current sequence.
func (r *Roster) Students() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

// Select returns the students whose average grade is at least
// PassingAverage, in roster order. A non-integer grade token fails the
// whole selection.
func (r *Roster) Select() ([]Student, error) {
	var result []Student
	for _, s := range r.students {
		ok, err := s.passing()
		if err != nil {
			return nil, parseError("select", s.Name, err)
		}
		if ok {
			result = append(result, s)
		}
	}
	return result, nil
}

// String renders the roster as a fixed-width table.
func (r *Roster) String() string {
	border := fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+",
		strings.Repeat("-", widthIndex),
		strings.Repeat("-", widthName),
		strings.Repeat("-", widthGroup),
		strings.Repeat("-", widthGrade),
	)

	lines := make([]string, 0, len(r.students)+4)
	lines = append(lines, border)
	lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s |",
		center("No", widthIndex),
		center("Full name", widthName),
		center("Group", widthGroup),
		center("Grades", widthGrade),
	))
	lines = append(lines, border)
	for i, s := range r.students {
		lines = append(lines, fmt.Sprintf("| %*d | %-*s | %-*s | %*s |",
			widthIndex, i+1,
			widthName, s.Name,
			widthGroup, s.Group,
			widthGrade, s.Grade,
		))
	}
	lines = append(lines, border)
	return strings.Join(lines, "\n")
}

// center pads s on both sides to width runes, putting the odd space on the
// right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
