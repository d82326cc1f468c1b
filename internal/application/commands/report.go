package commands

import (
	"fmt"
	"io"
)

// WriteReport renders a human-readable listing of the plan, one section
// per category, with an explicit "(None)" placeholder for empty ones.
func WriteReport(w io.Writer, result *PlanResult) {
	fmt.Fprintf(w, "Release version: %s\n", result.Version)

	writeSection(w, "Refreshed (overwritten from release)", result.Plan.Refreshed)
	writeSection(w, "Added (new in release)", result.Plan.Added)
	writeSection(w, "Removed (no longer released)", result.Plan.Removed)
}

func writeSection(w io.Writer, title string, names []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(names) == 0 {
		fmt.Fprintln(w, "  (None)")
		return
	}
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
