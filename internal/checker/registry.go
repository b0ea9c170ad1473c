package checker

import (
	"sort"
)

// Registry owns the active checkers for a run. It maintains three indexes
// over the same checker entities: the name-indexed checker table, the report
// table keyed by checker, and the option-provider list. Removal goes through
// Unregister so the indexes never drift apart.
type Registry struct {
	byName  map[string][]Checker
	reports map[Checker]StatsProvider
	options []Checker

	// order preserves registration order per checker for deterministic
	// iteration in FindUseless and Checkers.
	order []Checker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string][]Checker),
		reports: make(map[Checker]StatsProvider),
	}
}

// Register adds a checker to the registry, indexing it by name and, when the
// checker implements the optional interfaces, into the report table and the
// option-provider list.
func (r *Registry) Register(c Checker) {
	r.byName[c.Name()] = append(r.byName[c.Name()], c)
	r.order = append(r.order, c)
	if sp, ok := c.(StatsProvider); ok {
		r.reports[c] = sp
	}
	if _, ok := c.(OptionsProvider); ok {
		r.options = append(r.options, c)
	}
}

// Unregister removes one checker instance from every index that references
// it. Each removal tolerates the checker already being absent: the three
// indexes are independent and must not be assumed to be in lockstep.
// After Unregister the checker can no longer be invoked, contribute options,
// or receive report callbacks.
func (r *Registry) Unregister(c Checker) {
	if group, ok := r.byName[c.Name()]; ok {
		if filtered := removeChecker(group, c); len(filtered) == 0 {
			delete(r.byName, c.Name())
		} else {
			r.byName[c.Name()] = filtered
		}
	}
	delete(r.reports, c)
	r.options = removeChecker(r.options, c)
	r.order = removeChecker(r.order, c)
}

func removeChecker(list []Checker, c Checker) []Checker {
	for i, it := range list {
		if it == c {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// Checkers returns all registered checkers in registration order.
func (r *Registry) Checkers() []Checker {
	out := make([]Checker, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered checker names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the checkers registered under name.
func (r *Registry) ByName(name string) []Checker {
	return r.byName[name]
}

// Has reports whether c is present in the name-indexed checker table.
func (r *Registry) Has(c Checker) bool {
	for _, it := range r.byName[c.Name()] {
		if it == c {
			return true
		}
	}
	return false
}

// HasReport reports whether c has a report-table entry.
func (r *Registry) HasReport(c Checker) bool {
	_, ok := r.reports[c]
	return ok
}

// HasOptions reports whether c is in the option-provider list.
func (r *Registry) HasOptions(c Checker) bool {
	for _, it := range r.options {
		if it == c {
			return true
		}
	}
	return false
}

// OptionProviders returns the option-provider list in registration order.
func (r *Registry) OptionProviders() []Checker {
	out := make([]Checker, len(r.options))
	copy(out, r.options)
	return out
}

// ReportProviders returns the report-table entries in registration order.
func (r *Registry) ReportProviders() []StatsProvider {
	out := make([]StatsProvider, 0, len(r.reports))
	for _, c := range r.order {
		if sp, ok := r.reports[c]; ok {
			out = append(out, sp)
		}
	}
	return out
}
