// Package prompt implements the interactive outline chooser used when a
// footprint cannot be resolved automatically.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/OpenTraceLab/veemap/pkg/mapper"
	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// ErrInputClosed is returned when input ends before a choice is made.
var ErrInputClosed = errors.New("prompt: input closed")

// Display limits for the different lists
const (
	MaxCandidates = 40
	MaxAll        = 200
	MaxFiltered   = 80
	MaxRefs       = 8
)

const selectionPrompt = "Enter selection [number], 0=keep original, *=list all, /=filter, or type name: "

// Selector asks the operator to pick outlines. It implements
// mapper.Selector.
type Selector struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan string

	closeOnce sync.Once
	done      chan struct{}
}

// New creates a Selector reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Selector {
	return &Selector{in: in, out: out, done: make(chan struct{})}
}

// Close releases the input pump. Lines not yet consumed are dropped and
// later prompts fail with ErrInputClosed. A read already blocked on in
// ends only when in yields data or EOF.
func (s *Selector) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// pump feeds input lines to s.lines until in is exhausted. It runs in its
// own goroutine so a pending read never blocks cancellation.
func (s *Selector) pump() {
	s.lines = make(chan string)
	go func() {
		defer close(s.lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case s.lines <- scanner.Text():
			case <-s.done:
				return
			}
		}
	}()
}

// ask prints question and waits for one line of input.
func (s *Selector) ask(ctx context.Context, question string) (string, error) {
	s.once.Do(s.pump)
	fmt.Fprint(s.out, question)
	select {
	case <-s.done:
		fmt.Fprintln(s.out)
		return "", ErrInputClosed
	default:
	}
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", fmt.Errorf("%w: %v", mapper.ErrAborted, ctx.Err())
	case <-s.done:
		fmt.Fprintln(s.out)
		return "", ErrInputClosed
	case line, ok := <-s.lines:
		if !ok {
			fmt.Fprintln(s.out)
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

// Select shows the candidates for req and loops until the operator picks
// an outline or chooses to keep the original footprint.
func (s *Selector) Select(ctx context.Context, req mapper.Request) (string, bool, error) {
	if req.Library == nil {
		req.Library = veecad.NewLibrary()
	}
	s.describe(req)

	sess := &session{req: req, state: awaitingInput}
	for sess.state != resolved {
		switch sess.state {
		case awaitingInput:
			line, err := s.ask(ctx, selectionPrompt)
			if err != nil {
				return "", false, err
			}
			if msg := sess.dispatch(line); msg != "" {
				fmt.Fprintln(s.out, msg)
			}

		case listing:
			fmt.Fprintln(s.out, "All outlines:")
			printCompactList(s.out, req.Library.Names(), MaxAll)
			sess.state = awaitingInput

		case filtering:
			matches := filterNames(req.Library.Names(), sess.query)
			if len(matches) == 0 {
				fmt.Fprintln(s.out, "No matches.")
			} else {
				fmt.Fprintln(s.out, "Filtered:")
				printCompactList(s.out, annotateAll(matches, req.Library), MaxFiltered)
			}
			sess.state = awaitingInput

		case confirmingCustom:
			answer, err := s.ask(ctx, fmt.Sprintf("Outline '%s' not in library. Use anyway? [y/N]: ", sess.pending))
			if err != nil {
				return "", false, err
			}
			sess.confirm(answer)
		}
	}
	return sess.choice, sess.keep, nil
}

// describe prints the footprint summary and the candidate list.
func (s *Selector) describe(req mapper.Request) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Footprint: %s\n", req.Footprint)

	refs := req.Refs
	more := ""
	if len(refs) > MaxRefs {
		refs = refs[:MaxRefs]
		more = "..."
	}
	fmt.Fprintf(s.out, "  Used by refs (examples): %s%s\n", strings.Join(refs, ", "), more)
	if req.RequiredPins > 0 {
		fmt.Fprintf(s.out, "  Required pins: %d\n", req.RequiredPins)
	}

	if len(req.Candidates) == 0 {
		fmt.Fprintln(s.out, "No matching outlines found. Type a custom outline name, or * to list all.")
		return
	}
	fmt.Fprintln(s.out, "Choose one of the following outlines (enter number).")
	printCompactList(s.out, annotateAll(req.Candidates, req.Library), MaxCandidates)
}

// Annotate renders an outline name with its pin count and inferred size,
// e.g. "CAPR10_5 (2 pins; D=10mm, P=5mm)".
func Annotate(name string, lib *veecad.Library) string {
	var suffix []string
	if o, ok := lib.Lookup(name); ok {
		if o.PinCount > 0 {
			suffix = append(suffix, fmt.Sprintf("%d pins", o.PinCount))
		}
		if size := o.Size.String(); size != "" {
			suffix = append(suffix, size)
		}
	}
	if len(suffix) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(suffix, "; "))
}

func annotateAll(names []string, lib *veecad.Library) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Annotate(n, lib)
	}
	return out
}

func filterNames(names []string, query string) []string {
	var out []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), query) {
			out = append(out, n)
		}
	}
	return out
}

// printCompactList prints a numbered list, truncated after limit items.
func printCompactList(w io.Writer, items []string, limit int) {
	for i, item := range items {
		if i == limit {
			fmt.Fprintf(w, "  ... and %d more\n", len(items)-limit)
			break
		}
		fmt.Fprintf(w, "  %2d) %s\n", i+1, item)
	}
}

// parseSelection returns the 1-based index typed by the operator
func parseSelection(line string) (int, bool) {
	if line == "" {
		return 0, false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, true
	}
	return n, true
}
