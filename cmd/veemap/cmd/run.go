package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/veemap/internal/backup"
	"github.com/OpenTraceLab/veemap/internal/prompt"
	"github.com/OpenTraceLab/veemap/internal/report"
	"github.com/OpenTraceLab/veemap/pkg/kicad/netlist"
	"github.com/OpenTraceLab/veemap/pkg/mapper"
	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// now is replaced in tests to get stable backup names
var now = time.Now

// runMap performs one full mapping run. Nothing is written unless every
// footprint was resolved.
func runMap(cmd *cobra.Command, cfg runConfig) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Reading netlist: %s\n", cfg.Input)
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to read netlist: %w", err)
	}
	text := string(data)
	lines := netlist.SplitLines(text)

	headers := netlist.ParseHeaders(lines)
	if len(headers) == 0 {
		return netlist.NoHeadersError(text)
	}
	groups := netlist.GroupByFootprint(headers)
	counts := netlist.PinCounts(headers, lines)
	fmt.Fprintf(out, "Found %d components with %d unique footprints.\n", len(headers), len(groups))

	fmt.Fprintf(out, "Scanning VeeCAD libraries under: %s\n", cfg.LibDir)
	lib, stats, err := veecad.Scan(cfg.scanConfig())
	if err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(out, "  %d library files read (%d structured, %d line-based, %d skipped)\n",
			stats.Files, stats.Structured, stats.LineBased, stats.Skipped)
	}
	fmt.Fprintf(out, "Found %d unique outlines across %d library files.\n", lib.Len(), lib.FileCount())
	if err := interrupted(cmd); err != nil {
		return err
	}

	opts := cfg.mapperOptions()
	opts.Out = out
	sel := prompt.New(cmd.InOrStdin(), out)
	defer sel.Close()
	mapping, err := mapper.Build(cmd.Context(), groups, lib, counts, opts, sel)
	if err != nil {
		return err
	}

	updated, changes := netlist.Apply(lines, headers, mapping)

	if cfg.DryRun {
		fmt.Fprintln(out)
		report.Changes(out, changes)
		if cfg.Diff {
			diff, err := report.Unified(filepath.Base(cfg.Input), lines, updated, report.DefaultContext)
			if err != nil {
				return err
			}
			if diff != "" {
				fmt.Fprintln(out)
				fmt.Fprint(out, diff)
			}
		}
		fmt.Fprintln(out, "\nDry run completed. No files written.")
		return nil
	}

	if err := interrupted(cmd); err != nil {
		return err
	}
	if cfg.Output == cfg.Input && !cfg.NoBackup {
		name, err := backup.Create(cfg.Input, now())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Backup created: %s\n", name)
	}

	if err := writeNetlist(cfg.Output, updated); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote updated netlist: %s\n", cfg.Output)
	report.Summary(out, changes)
	return nil
}

// interrupted reports an operator abort that arrived while no prompt was
// waiting.
func interrupted(cmd *cobra.Command) error {
	if err := cmd.Context().Err(); err != nil {
		return fmt.Errorf("%w: %v", mapper.ErrAborted, err)
	}
	return nil
}

// writeNetlist replaces the contents of path in a single write, keeping
// the permissions of an existing file.
func writeNetlist(path string, lines []string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), perm); err != nil {
		return fmt.Errorf("failed to write netlist: %w", err)
	}
	return nil
}
