package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/OpenTraceLab/veemap/pkg/mapper"
	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// runConfig is the resolved configuration of one run
type runConfig struct {
	Input       string
	Output      string
	LibDir      string
	DryRun      bool
	Diff        bool
	NoBackup    bool
	NoAutoExact bool
	KeepUnknown bool
	AutoMap     bool
	Verbose     bool
}

// loadConfig resolves flags, environment and the optional config file.
func loadConfig(v *viper.Viper) (runConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return runConfig{}, fmt.Errorf("config: %w", err)
		}
	}

	cfg := runConfig{
		Input:       v.GetString("input"),
		Output:      v.GetString("output"),
		LibDir:      v.GetString("lib-dir"),
		DryRun:      v.GetBool("dry-run"),
		Diff:        v.GetBool("diff"),
		NoBackup:    v.GetBool("no-backup"),
		NoAutoExact: v.GetBool("no-auto-exact"),
		KeepUnknown: v.GetBool("keep-unknown"),
		AutoMap:     v.GetBool("auto-map"),
		Verbose:     v.GetBool("verbose"),
	}
	if cfg.Input == "" {
		return runConfig{}, errors.New("config: an input netlist is required")
	}

	var err error
	if cfg.Input, err = filepath.Abs(cfg.Input); err != nil {
		return runConfig{}, fmt.Errorf("config: input: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = cfg.Input
	} else if cfg.Output, err = filepath.Abs(cfg.Output); err != nil {
		return runConfig{}, fmt.Errorf("config: output: %w", err)
	}
	cfg.LibDir = veecad.ExpandHome(cfg.LibDir)
	return cfg, nil
}

// mapperOptions translates the command switches into builder options.
func (c runConfig) mapperOptions() *mapper.Options {
	opts := mapper.DefaultOptions()
	opts.AcceptExact = !c.NoAutoExact
	opts.AutoMap = c.AutoMap
	opts.KeepUnknown = c.KeepUnknown
	return opts
}

// scanConfig returns the library scan configuration
func (c runConfig) scanConfig() veecad.ScanConfig {
	return veecad.DefaultScanConfig(c.LibDir)
}
