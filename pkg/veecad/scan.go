package veecad

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/veemap/pkg/veecad/literal"
)

// ErrLibraryNotFound is returned when the library root does not exist or
// is not a directory.
var ErrLibraryNotFound = errors.New("veecad: library directory not found")

// DefaultLibraryDir is where a stock VeeCAD install keeps its libraries
// under Wine.
const DefaultLibraryDir = "~/.wine/drive_c/Program Files (x86)/VeeCAD/Library"

// ScanConfig controls which files are read and which names are recognised.
type ScanConfig struct {
	Root       string   // library root directory
	Extension  string   // library file extension, matched case-insensitively
	Containers []string // structured-block keys holding outline arrays
	Sections   []string // line-grammar section names holding outlines
}

// DefaultScanConfig returns the configuration for a stock VeeCAD library
// rooted at root.
func DefaultScanConfig(root string) ScanConfig {
	return ScanConfig{
		Root:       root,
		Extension:  ".per",
		Containers: []string{"CelledOutlines", "Outlines"},
		Sections:   []string{"outlines", "leadedoutlines", "radialoutlines", "customoutlines"},
	}
}

// ScanStats summarises a scan
type ScanStats struct {
	Files      int // library files read
	Skipped    int // library files that could not be read
	Structured int // files parsed from their structured block
	LineBased  int // files parsed with the line grammar
}

// Scan recursively reads every library file under cfg.Root and returns the
// merged outline registry. Unreadable files and directories are skipped.
func Scan(cfg ScanConfig) (*Library, ScanStats, error) {
	var stats ScanStats

	info, err := os.Stat(cfg.Root)
	if err != nil || !info.IsDir() {
		return nil, stats, fmt.Errorf("%w: %s", ErrLibraryNotFound, cfg.Root)
	}

	parser, err := literal.NewParser()
	if err != nil {
		return nil, stats, err
	}

	sections := make(map[string]bool, len(cfg.Sections))
	for _, s := range cfg.Sections {
		sections[strings.ToLower(s)] = true
	}

	lib := newLibrary(cfg.Root)
	err = filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() && path != cfg.Root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasExtension(path, cfg.Extension) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			stats.Skipped++
			return nil
		}
		stats.Files++

		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		text := string(data)

		if entries, ok := parseStructured(parser, rel, text, cfg.Containers); ok {
			stats.Structured++
			for _, e := range entries {
				lib.add(e)
			}
			return nil
		}

		stats.LineBased++
		for _, e := range parseSections(rel, text, sections) {
			lib.add(e)
		}
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("veecad: scan %s: %w", cfg.Root, err)
	}

	lib.finalize()
	return lib, stats, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func hasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}
