// Package message defines the message code identifiers emitted by checkers.
package message

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ID is a message code identifying one kind of finding: a single severity
// letter followed by exactly four digits (e.g. "C0111", "W9001").
// Beyond the severity letter, codes are opaque identifiers.
type ID string

// idPattern matches a well-formed message ID.
var idPattern = regexp.MustCompile(`^[WCEFR]\d{4}$`)

// LinePattern matches a report line that opens a new warning record.
// Continuation lines never match it.
var LinePattern = regexp.MustCompile(`^[WCEFR]\d{4}:`)

// Parse validates s and returns it as an ID.
func Parse(s string) (ID, error) {
	if !idPattern.MatchString(s) {
		return "", fmt.Errorf("invalid message ID %q (want severity letter W/C/E/F/R followed by 4 digits)", s)
	}
	return ID(s), nil
}

// MustParse is Parse for statically known codes. Panics on invalid input.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether the ID is well-formed.
func (id ID) Valid() bool {
	return idPattern.MatchString(string(id))
}

// Severity returns the severity class encoded in the ID's first letter.
func (id ID) Severity() Severity {
	if len(id) == 0 {
		return SeverityUnknown
	}
	switch id[0] {
	case 'W':
		return SeverityWarning
	case 'C':
		return SeverityConvention
	case 'E':
		return SeverityError
	case 'F':
		return SeverityFatal
	case 'R':
		return SeverityRefactor
	default:
		return SeverityUnknown
	}
}

// Severity is the class encoded in a message ID's leading letter.
// It is informational only; filtering operates on whole IDs.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityWarning
	SeverityConvention
	SeverityError
	SeverityFatal
	SeverityRefactor
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityConvention:
		return "convention"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	case SeverityRefactor:
		return "refactor"
	default:
		return "unknown"
	}
}

// Set is an unordered collection of message IDs.
type Set map[ID]struct{}

// NewSet builds a Set from the given IDs.
func NewSet(ids ...ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s Set) Add(id ID) {
	s[id] = struct{}{}
}

// AddAll inserts every given ID.
func (s Set) AddAll(ids ...ID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Remove deletes id from the set. Removing an absent ID is a no-op.
func (s Set) Remove(id ID) {
	delete(s, id)
}

// Contains reports whether id is in the set.
func (s Set) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Intersects reports whether the set shares at least one ID with ids.
func (s Set) Intersects(ids []ID) bool {
	for _, id := range ids {
		if _, ok := s[id]; ok {
			return true
		}
	}
	return false
}

// Sorted returns the IDs in lexicographic order.
func (s Set) Sorted() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the set as a comma-separated sorted list, for diagnostics.
func (s Set) String() string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}
