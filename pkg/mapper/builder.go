package mapper

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/OpenTraceLab/veemap/pkg/kicad/netlist"
	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// ErrAborted is returned when the operator cancels an interactive choice.
// No mapping is produced in that case.
var ErrAborted = errors.New("mapper: aborted by user")

// Mapping maps an original footprint to its chosen outline. A footprint
// mapped to itself is left unchanged.
type Mapping map[string]string

// Request is everything a Selector needs to let the operator choose an
// outline for one footprint.
type Request struct {
	Footprint    string
	Refs         []string
	RequiredPins int      // 0 when unknown
	Candidates   []string // ranked by Candidates
	Library      *veecad.Library
}

// Selector resolves a footprint interactively. It returns the chosen
// outline, or keep=true to leave the footprint unchanged.
type Selector interface {
	Select(ctx context.Context, req Request) (outline string, keep bool, err error)
}

// Build decides the outline for every distinct footprint in groups. Each
// footprint is resolved once, in case-insensitive order, trying in turn an
// exact match, the auto-mapping rules, keeping unknowns, and finally the
// selector. A selector error stops the build and no mapping is returned.
func Build(ctx context.Context, groups []netlist.Group, lib *veecad.Library, counts map[string]int, opts *Options, sel Selector) (Mapping, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ordered := make([]netlist.Group, len(groups))
	copy(ordered, groups)
	sort.SliceStable(ordered, func(i, j int) bool {
		return strings.ToLower(ordered[i].Footprint) < strings.ToLower(ordered[j].Footprint)
	})

	mapping := make(Mapping, len(ordered))
	for _, g := range ordered {
		fp := g.Footprint

		if opts.AcceptExact && lib.Has(fp) {
			fmt.Fprintf(opts.Out, "Exact outline found for '%s', using as-is.\n", fp)
			mapping[fp] = fp
			continue
		}

		if opts.AutoMap {
			if target, rule, ok := autoMap(fp, lib); ok {
				fmt.Fprintf(opts.Out, "Auto-mapped '%s' -> '%s' (%s rule).\n", fp, target, rule)
				mapping[fp] = target
				continue
			}
		}

		if opts.KeepUnknown {
			fmt.Fprintf(opts.Out, "No exact outline for '%s', keeping original (non-interactive).\n", fp)
			mapping[fp] = fp
			continue
		}

		if sel == nil {
			return nil, fmt.Errorf("mapper: no selector to resolve '%s'", fp)
		}

		refs := g.Refs()
		required := g.RequiredPins(counts)
		req := Request{
			Footprint:    fp,
			Refs:         refs,
			RequiredPins: required,
			Candidates:   Candidates(fp, required, lib, PreferredFiles(refs, lib)),
			Library:      lib,
		}
		outline, keep, err := sel.Select(ctx, req)
		if err != nil {
			return nil, err
		}
		if keep || outline == "" {
			mapping[fp] = fp
		} else {
			mapping[fp] = outline
		}
	}
	return mapping, nil
}
