// Package relpath rewrites absolute paths to be relative to a named
// project-root directory component, so that a compilation database generated
// on one machine stays meaningful on another.
package relpath

import "strings"

// Strip searches the path for a component equal to root and returns the join
// of all components after it. The path is returned unchanged when root is
// empty, absent from the path, or its final component; paths outside the
// project tree (system headers, toolchain files) pass through deliberately.
// Separators are normalized to "/" before splitting, so Windows-style log
// paths split correctly.
func Strip(path, root string) string {
	if root == "" {
		return path
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	parts := strings.Split(normalized, "/")

	for i, part := range parts {
		if part != root {
			continue
		}
		if i+1 >= len(parts) {
			return path
		}
		return strings.Join(parts[i+1:], "/")
	}

	return path
}
