package veecad

import (
	"strings"

	"github.com/OpenTraceLab/veemap/pkg/veecad/literal"
)

// parseStructured reads outlines from the structured block of a library
// file. It returns false when the file has no usable block, in which case
// the caller falls back to the line grammar.
func parseStructured(parser *literal.Parser, file, text string, containers []string) ([]Entry, bool) {
	block, ok := literal.ExtractBlock(text)
	if !ok {
		return nil, false
	}
	root, err := parser.ParseString(block)
	if err != nil || root.Kind != literal.Object {
		return nil, false
	}

	found := false
	var entries []Entry
	for _, key := range containers {
		arr, ok := root.Get(key)
		if !ok || arr.Kind != literal.Array {
			continue
		}
		found = true
		for _, item := range arr.Items {
			if e, ok := outlineEntry(file, item); ok {
				entries = append(entries, e)
			}
		}
	}
	return entries, found
}

// outlineEntry converts one outline object. Objects without a non-empty
// Name are ignored.
func outlineEntry(file string, obj literal.Value) (Entry, bool) {
	if obj.Kind != literal.Object {
		return Entry{}, false
	}
	nameVal, _ := obj.Get("Name")
	name, ok := nameVal.AsString()
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Entry{}, false
	}

	seen := make(map[string]struct{})
	var pins []string
	for _, p := range obj.CollectStrings("Pin") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pins = append(pins, p)
	}

	count := len(pins)
	if pinNames, ok := obj.Get("PinNames"); ok && pinNames.Kind == literal.Array {
		count = len(pinNames.Items)
	}

	return Entry{File: file, Name: name, PinNames: pins, PinCount: count}, true
}
