package source

import (
	"path/filepath"
	"slices"
	"sort"
)

// normalizeCRLF rewrites \r\n to \n, leaving lone \r intact.
// The second result reports whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// buildLineIndex records the byte offset of every \n; entry i therefore
// terminates line i+1 (1-based lines, line 1 starts at offset 0).
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) //nolint:gosec // file size is capped by uint32 spans
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Number of newlines strictly before off.
	n := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })

	var lineStart uint32
	if n > 0 {
		lineStart = lineIdx[n-1] + 1
	}
	return LineCol{
		Line: uint32(n) + 1, //nolint:gosec // bounded by line count
		Col:  off - lineStart + 1,
	}
}

func normalizePath(p string) string {
	// Uniform form for cross-platform diffs.
	return filepath.ToSlash(filepath.Clean(p))
}
