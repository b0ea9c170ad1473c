package checker

import (
	"github.com/wharflab/relint/internal/message"
)

// FindUseless scans every registered checker and returns those whose message
// set has no overlap with allowed. Such checkers can never produce visible
// output and are candidates for removal. Pure query, no mutation.
func FindUseless(r *Registry, allowed message.Set) []Checker {
	var useless []Checker
	for _, c := range r.Checkers() {
		if !allowed.Intersects(c.Messages()) {
			useless = append(useless, c)
		}
	}
	return useless
}

// Restrict removes every checker that cannot emit an allowed message.
// This is the sole enforcement guaranteeing no disallowed message ID reaches
// output: a checker incapable of producing any allowed code can never be
// invoked after this call. It also cuts evaluation cost.
func Restrict(r *Registry, allowed message.Set) {
	for _, c := range FindUseless(r, allowed) {
		r.Unregister(c)
	}
}
