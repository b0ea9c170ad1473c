package report

// Diff computes the warnings newly introduced in current relative to
// baseline: for every module in current, the records absent from the
// baseline's set for that module. Modules whose difference is empty are
// omitted entirely.
//
// The diff is intentionally one-directional. Modules present only in the
// baseline contribute nothing, and fixed warnings are never reported: the
// result answers "what regressed since the baseline was captured", not
// "what changed". Callers wanting a symmetric change-set must diff twice.
func Diff(baseline, current ModuleReport) ModuleReport {
	result := make(ModuleReport)
	for module, records := range current {
		introduced := records.Subtract(baseline[module])
		if len(introduced) > 0 {
			result[module] = introduced
		}
	}
	return result
}
