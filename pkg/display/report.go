package display

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"sweep/pkg/disk"
	"sweep/pkg/scan"
)

// Render prints every repository's candidates followed by a summary line.
// Repository paths are shown relative to base and candidate paths relative
// to their repository. It returns the candidate count and the total
// reclaimable size.
func Render(d Display, t *Theme, base string, results []scan.Result) (int, int64) {
	var total int64
	var count int

	for _, res := range results {
		d.Print(t.Bold.Render(relPath(base, res.Repo.Root)) + "\n")
		for _, c := range res.Candidates {
			d.Print(fmt.Sprintf("  %s  %s\n",
				t.Red.Render(relPath(res.Repo.Root, c.Path)),
				disk.FormatSize(c.Size)))
			total += c.Size
			count++
		}
	}

	d.Print(fmt.Sprintf("\n%s dirs, %s reclaimable\n",
		humanize.Comma(int64(count)), disk.FormatSize(total)))
	return count, total
}

func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
