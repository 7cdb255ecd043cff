// Package purge deletes classified artifact directories.
package purge

import (
	"fmt"
	"log/slog"
	"os"

	"sweep/pkg/display"
	"sweep/pkg/scan"
)

// Outcome reports the result of one purge run.
type Outcome struct {
	// Freed is the byte total of successfully removed candidates, using
	// the sizes captured at scan time.
	Freed int64
	// Failures counts candidates that could not be removed.
	Failures int
}

// Execute removes every candidate directory across all results. A failed
// removal is logged and counted but does not stop the remaining
// deletions. Candidate subtrees are disjoint, so order does not matter.
func Execute(results []scan.Result, disp display.Display) Outcome {
	var out Outcome
	for _, res := range results {
		for _, c := range res.Candidates {
			if err := os.RemoveAll(c.Path); err != nil {
				disp.Log(fmt.Sprintf("sweep: %s: %v", c.Path, err))
				out.Failures++
				continue
			}
			slog.Debug("removed", "path", c.Path)
			out.Freed += c.Size
		}
	}
	return out
}
