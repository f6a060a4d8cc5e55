// Package veecad loads outline definitions from VeeCAD stripboard library
// files (.per) into a registry keyed by outline name.
package veecad

import (
	"sort"
	"strings"
)

// Outline is one named package definition found in the library.
type Outline struct {
	Name     string
	PinCount int  // 0 when unknown
	Size     Size // inferred from Name

	files    map[string]struct{}
	pinNames map[string]struct{}
}

// Files returns the library files (relative to the scan root) defining the
// outline, sorted.
func (o *Outline) Files() []string {
	return sortedKeys(o.files)
}

// PinNames returns the distinct pin identifiers collected for the outline,
// sorted.
func (o *Outline) PinNames() []string {
	return sortedKeys(o.pinNames)
}

// Library is the result of a scan: outline records plus the derived
// file → outline index.
type Library struct {
	Root string

	outlines map[string]*Outline
	byFile   map[string]map[string]struct{}
	names    []string // case-insensitive order, built by finalize
}

func newLibrary(root string) *Library {
	return &Library{
		Root:     root,
		outlines: make(map[string]*Outline),
		byFile:   make(map[string]map[string]struct{}),
	}
}

// Entry is one sighting of an outline in one library file.
type Entry struct {
	File     string // relative to the scan root
	Name     string
	PinNames []string
	PinCount int // explicit count, 0 when the source gives none
}

// NewLibrary builds a registry from entries without scanning the
// filesystem. Entries merge exactly as they would during a scan.
func NewLibrary(entries ...Entry) *Library {
	lib := newLibrary("")
	for _, e := range entries {
		lib.add(e)
	}
	lib.finalize()
	return lib
}

// add merges one sighting into the registry: files and pin names are
// unioned, the pin count keeps its maximum.
func (l *Library) add(e Entry) {
	o, ok := l.outlines[e.Name]
	if !ok {
		o = &Outline{
			Name:     e.Name,
			Size:     InferSize(e.Name),
			files:    make(map[string]struct{}),
			pinNames: make(map[string]struct{}),
		}
		l.outlines[e.Name] = o
	}

	o.files[e.File] = struct{}{}
	for _, p := range e.PinNames {
		o.pinNames[p] = struct{}{}
	}
	if e.PinCount > o.PinCount {
		o.PinCount = e.PinCount
	}

	if l.byFile[e.File] == nil {
		l.byFile[e.File] = make(map[string]struct{})
	}
	l.byFile[e.File][e.Name] = struct{}{}
}

// finalize raises every pin count to at least the size of the merged
// pin-name set and caches the display order.
func (l *Library) finalize() {
	l.names = make([]string, 0, len(l.outlines))
	for name, o := range l.outlines {
		if len(o.pinNames) > o.PinCount {
			o.PinCount = len(o.pinNames)
		}
		l.names = append(l.names, name)
	}
	SortFold(l.names)
}

// Lookup returns the outline registered under name
func (l *Library) Lookup(name string) (*Outline, bool) {
	o, ok := l.outlines[name]
	return o, ok
}

// Has reports whether name is a known outline
func (l *Library) Has(name string) bool {
	_, ok := l.outlines[name]
	return ok
}

// PinCount returns the recorded pin count of name, 0 if unknown.
func (l *Library) PinCount(name string) int {
	if o, ok := l.outlines[name]; ok {
		return o.PinCount
	}
	return 0
}

// Names returns every outline name sorted case-insensitively.
func (l *Library) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Files returns every library file that contributed at least one outline,
// sorted.
func (l *Library) Files() []string {
	return sortedKeys(l.byFile)
}

// NamesInFile returns the outlines defined in file, sorted.
func (l *Library) NamesInFile(file string) []string {
	return sortedKeys(l.byFile[file])
}

// Len returns the number of distinct outlines
func (l *Library) Len() int {
	return len(l.outlines)
}

// FileCount returns the number of files that contributed outlines
func (l *Library) FileCount() int {
	return len(l.byFile)
}

// SortFold sorts names case-insensitively; names equal under folding keep
// a byte-wise order so results are deterministic.
func SortFold(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
