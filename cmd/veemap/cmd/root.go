package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/OpenTraceLab/veemap/pkg/mapper"
	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// Exit statuses
const (
	ExitOK      = 0
	ExitError   = 1
	ExitAborted = 130
)

// NewRootCmd builds the veemap command. Each call returns an independent
// command with its own configuration.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "veemap -i <netlist>",
		Short: "Map KiCad netlist footprints to VeeCAD outlines",
		Long: `veemap rewrites the footprint of every component header in a KiCad
Eeschema legacy netlist (Version 1.1 style) to an outline name from a
VeeCAD library, preserving all other bytes of the file.

Interactive commands when choosing outlines:
  0        keep original footprint
  *        list all outlines
  /text    filter outlines by substring
  <number> choose from displayed candidates
  <name>   type a custom outline name (non-library names need confirmation)

Every flag may also come from a VEEMAP_* environment variable
(VEEMAP_INPUT, VEEMAP_LIB_DIR, ...) or a .veemap.yaml file in the working
or home directory.

Examples:
  veemap -i board.net                         # interactive, overwrite with backup
  veemap -i board.net --auto-map --dry-run    # preview automatic mapping
  veemap -i board.net -o out.net --keep-unknown --lib-dir ./Library`,
		Version:       "0.9.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return runMap(cmd, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP("input", "i", "", "path to KiCad netlist file (required)")
	flags.StringP("output", "o", "", "output path (default: overwrite input)")
	flags.String("lib-dir", veecad.DefaultLibraryDir, "VeeCAD library directory")
	flags.Bool("dry-run", false, "show changes without writing")
	flags.Bool("diff", false, "with --dry-run, also print a unified diff")
	flags.Bool("no-backup", false, "do not create a backup when overwriting input")
	flags.Bool("no-auto-exact", false, "do not auto-accept exact outline matches; ask instead")
	flags.Bool("keep-unknown", false, "do not prompt for unknown outlines; keep original footprints")
	flags.Bool("auto-map", false, "attempt automatic mapping from common KiCad names to VeeCAD outlines")
	flags.BoolP("verbose", "v", false, "verbose output")

	// Flags win over VEEMAP_* variables, which win over the config file.
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("VEEMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigName(".veemap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	return rootCmd
}

// Execute runs the root command and returns the process exit status.
// An interrupt while waiting for input aborts the run with ExitAborted.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, mapper.ErrAborted):
		fmt.Fprintln(os.Stderr, "\nAborted by user.")
		return ExitAborted
	default:
		fmt.Fprintln(os.Stderr, err)
		return ExitError
	}
}
