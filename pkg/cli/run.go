package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sweep/pkg/disk"
	"sweep/pkg/display"
	"sweep/pkg/purge"
	"sweep/pkg/repo"
	"sweep/pkg/scan"
)

func run(ctx context.Context, path string) error {
	setupLogging()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", path, err)
	}
	base, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", path, err)
	}

	disp := display.NewConsole()
	defer disp.Close()

	repos := repo.Discover(base, depth)
	if len(repos) == 0 {
		return fmt.Errorf("no git repositories found in %s", base)
	}
	slog.Debug("discovery finished", "repos", len(repos), "base", base)

	results := scan.Aggregate(ctx, repos)
	if len(results) == 0 {
		disp.Print("Nothing to purge.\n")
		return nil
	}

	display.Render(disp, display.DefaultTheme(), base, results)

	if dryRun {
		return nil
	}
	if !yes && !disp.Confirm("Purge? [y/N] ") {
		disp.Print("Aborted.\n")
		return nil
	}

	out := purge.Execute(results, disp)
	disp.Print(fmt.Sprintf("Freed %s\n", disk.FormatSize(out.Freed)))
	if out.Failures > 0 {
		return fmt.Errorf("%d dirs failed to remove", out.Failures)
	}
	return nil
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
