// Package catalogue builds a read-only index of the C/C++ source files on
// disk, used as a best-effort lookup table when a build log names a source
// file without a usable path.
package catalogue

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Catalogue is the set of absolute paths to every .c/.cpp file under the
// scan root. Built once before parsing begins and read-only afterwards.
type Catalogue struct {
	paths  []string
	byName map[string][]string
}

// Scan walks root recursively and catalogues every file ending in .c or
// .cpp. Paths are stored absolute with "/" separators. Unreadable
// subdirectories are skipped rather than failing the scan; missing entries
// only degrade lookup quality.
func Scan(root string) (*Catalogue, error) {
	c := &Catalogue{byName: make(map[string][]string)}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(p, ".c") && !strings.HasSuffix(p, ".cpp") {
			return nil
		}

		abs, err := filepath.Abs(p)
		if err != nil {
			return nil
		}
		c.add(filepath.ToSlash(abs))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// New builds a catalogue from an explicit list of absolute paths. Intended
// for tests, which need a synthetic catalogue without a disk layout.
func New(paths []string) *Catalogue {
	c := &Catalogue{byName: make(map[string][]string)}
	for _, p := range paths {
		c.add(filepath.ToSlash(p))
	}
	return c
}

func (c *Catalogue) add(p string) {
	c.paths = append(c.paths, p)
	name := path.Base(p)
	c.byName[name] = append(c.byName[name], p)
}

// Lookup resolves a bare filename (or the filename component of a relative
// path) to the first catalogued absolute path with the same base name.
func (c *Catalogue) Lookup(file string) (string, bool) {
	matches := c.byName[path.Base(filepath.ToSlash(file))]
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// Len reports the number of catalogued files.
func (c *Catalogue) Len() int {
	return len(c.paths)
}
