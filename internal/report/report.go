// Package report implements the structured warning-report model: parsing the
// canonical check-run text into a per-module warning set, diffing two runs,
// and re-serializing results.
package report

import (
	"sort"
)

// ModuleHeaderPrefix opens a module section in the canonical report text.
const ModuleHeaderPrefix = "************* Module "

// WarningSet is a set of warning records for one module. A record is the
// full text of a finding: the primary line (starting with a message ID)
// joined with any continuation lines by "\n". Two records are equal iff
// their full joined text is equal.
type WarningSet map[string]struct{}

// NewWarningSet builds a WarningSet from record texts.
func NewWarningSet(records ...string) WarningSet {
	s := make(WarningSet, len(records))
	for _, r := range records {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts a record. Duplicates collapse.
func (s WarningSet) Add(record string) {
	s[record] = struct{}{}
}

// Contains reports whether record is in the set.
func (s WarningSet) Contains(record string) bool {
	_, ok := s[record]
	return ok
}

// Sorted returns the records in lexicographic order.
func (s WarningSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Subtract returns the records present in s but absent from other.
func (s WarningSet) Subtract(other WarningSet) WarningSet {
	out := make(WarningSet)
	for r := range s {
		if _, ok := other[r]; !ok {
			out[r] = struct{}{}
		}
	}
	return out
}

// ModuleReport maps module names to their warning sets. Instances are built
// fresh per parse and hold no cross-run state.
type ModuleReport map[string]WarningSet

// Add records a warning for module, creating the module's set on first use.
func (m ModuleReport) Add(module, record string) {
	set, ok := m[module]
	if !ok {
		set = make(WarningSet)
		m[module] = set
	}
	set.Add(record)
}

// Modules returns the module names in lexicographic order.
func (m ModuleReport) Modules() []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether two reports contain exactly the same modules and
// warning records.
func (m ModuleReport) Equal(other ModuleReport) bool {
	if len(m) != len(other) {
		return false
	}
	for name, set := range m {
		otherSet, ok := other[name]
		if !ok || len(set) != len(otherSet) {
			return false
		}
		for r := range set {
			if _, ok := otherSet[r]; !ok {
				return false
			}
		}
	}
	return true
}

// TotalWarnings returns the number of records across all modules.
func (m ModuleReport) TotalWarnings() int {
	n := 0
	for _, set := range m {
		n += len(set)
	}
	return n
}
