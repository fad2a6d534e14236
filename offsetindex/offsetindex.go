// Package offsetindex maps absolute byte offsets into a source buffer to
// 1-based line / 0-based column positions.
package offsetindex

import "sort"

// Index is an ordered sequence of byte offsets, one per line start, derived
// once from a source buffer. The zero Index is not valid; use New.
type Index struct {
	starts []int // starts[i] is the byte offset of line i+1
}

// New builds an Index over source. The first element of the underlying
// offset table is always 0; the last is always len(source).
func New(source []byte) *Index {
	starts := make([]int, 1, 16)
	starts[0] = 0

	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	if starts[len(starts)-1] != len(source) {
		starts = append(starts, len(source))
	}

	return &Index{starts: starts}
}

// Location returns the 1-based line and 0-based column for offset. Empty
// source yields (1, 0) for offset 0, per spec.
func (idx *Index) Location(offset int) (line, column int) {
	// First line-start offset strictly greater than offset; that index is
	// the 1-based line number. For the empty-source and end-of-input cases
	// no entry is greater, so Search returns len(starts), which names the
	// last line.
	i := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
	if i == 0 {
		i = 1
	}

	return i, offset - idx.starts[i-1]
}

// LineCount returns the largest line number Location can return for this
// source. When the source does not end in a newline this includes the
// synthetic end-of-input position past the last real line start.
func (idx *Index) LineCount() int {
	return len(idx.starts)
}
