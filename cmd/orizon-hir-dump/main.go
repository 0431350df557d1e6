// Command orizon-hir-dump renders one of a small set of builtin HIR
// fixtures to its canonical pretty-printed text, the same form golden
// tests compare against. It exists for authors iterating on golden
// fixtures: point -watch at the fixture's descriptor file and it reprints
// on every save instead of requiring a manual rerun.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/orizon-hir/internal/hir"
)

// FormatVersion is the HIR textual format this dumper produces. Bumped
// whenever the pretty-printer's spellings change in a way that would break
// a golden fixture.
const FormatVersion = "1.0.0"

func main() {
	var (
		sample       string
		watchPath    string
		minVersion   string
	)
	flag.StringVar(&sample, "sample", "sieve", "builtin fixture to render: sieve, bfs")
	flag.StringVar(&watchPath, "watch", "", "re-render whenever this file changes")
	flag.StringVar(&minVersion, "min-version", "", "required format version constraint, e.g. \">=1.0.0\"")
	flag.Parse()

	if minVersion != "" {
		if err := checkFormatVersion(minVersion); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	render := func() {
		text, err := renderSample(sample)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(text)
	}
	render()

	if watchPath == "" {
		return
	}
	if err := watchAndRerender(watchPath, render); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checkFormatVersion rejects a build whose FormatVersion doesn't satisfy
// constraint, the gate an external golden-test harness checks before trusting
// this dumper's output to match its fixtures.
func checkFormatVersion(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid -min-version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(FormatVersion)
	if err != nil {
		return fmt.Errorf("invalid FormatVersion %q: %w", FormatVersion, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("orizon-hir-dump format version %s does not satisfy %s", FormatVersion, constraint)
	}
	return nil
}

// watchAndRerender calls render once for every fsnotify write or create event
// on path. Events are not coalesced: a save that produces several events
// renders several times.
func watchAndRerender(path string, render func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	fmt.Fprintf(os.Stderr, "watching %s for changes (ctrl-c to stop)\n", path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				render()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}

func renderSample(name string) (string, error) {
	switch name {
	case "sieve":
		return hir.StatementsToString[hir.Resolved](sieveFixture(), hir.VariableString[hir.Resolved]), nil
	case "bfs":
		return hir.StatementsToString[hir.Resolved](bfsFixture(), hir.VariableString[hir.Resolved]), nil
	default:
		return "", fmt.Errorf("unknown -sample %q, want sieve or bfs", name)
	}
}
