package bfs

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoPath is returned by PathTo for a vertex the traversal never reached.
var ErrNoPath = errors.New("bfs: vertex not reached")

// Result is the BFS tree of one traversal.
type Result struct {
	// Order lists vertices in visit order.
	Order []string
	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[string]int
	// Parent maps each reached vertex except the start to its predecessor.
	Parent map[string]string
}

// PathTo returns a shortest path from the start vertex to dest, inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: PathTo(%q): %w", dest, ErrNoPath)
	}
	path := make([]string, 0, d+1)
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
