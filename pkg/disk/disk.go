// Package disk measures and formats disk usage.
package disk

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirSize returns the total byte size and number of regular files beneath
// path. Symlinks are not followed and unreadable entries contribute zero.
// The walk keeps an explicit work list, so it is not bounded by stack depth.
func DirSize(path string) (int64, int) {
	var size int64
	var count int
	stack := []string{path}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			switch {
			case e.IsDir():
				stack = append(stack, filepath.Join(dir, e.Name()))
			case e.Type().IsRegular():
				if info, err := e.Info(); err == nil {
					size += info.Size()
					count++
				}
			}
		}
	}
	return size, count
}

const (
	kib = 1 << 10
	mib = 1 << 20
	gib = 1 << 30
)

// FormatSize converts bytes to a human-readable string using binary units.
// Sizes up to KiB are shown without decimals, MiB and above with one.
func FormatSize(b int64) string {
	switch {
	case b >= gib:
		return fmt.Sprintf("%.1f GiB", float64(b)/gib)
	case b >= mib:
		return fmt.Sprintf("%.1f MiB", float64(b)/mib)
	case b >= kib:
		return fmt.Sprintf("%.0f KiB", float64(b)/kib)
	default:
		return fmt.Sprintf("%d B", b)
	}
}
