package bezier

import (
	"errors"
	"fmt"
)

// PatchSize is the number of control points along each direction of a patch
// built by [FromIndexedVertices].
const PatchSize = 4

// ErrPatchIndex is wrapped by [IndexError].
var ErrPatchIndex = errors.New("vertex index out of range")

// IndexError reports a patch referencing a vertex that doesn't exist.
type IndexError struct {
	Patch int
	// Slot is the position of the index within the patch, in [0, 16).
	Slot int
	// Index is the offending one-based index.
	Index    int
	Vertices int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("patch %d, control point %d: index %d not in [1, %d]: %s",
		e.Patch, e.Slot, e.Index, e.Vertices, ErrPatchIndex)
}

func (e *IndexError) Unwrap() error {
	return ErrPatchIndex
}

// FromIndexedVertices builds one bicubic patch per row of patches. Each row
// holds 16 one-based indices into vertices, describing a 4×4 grid of control
// points in row-major order: index 1 refers to vertices[0].
func FromIndexedVertices(patches [][16]int, vertices [][3]float64) ([]Surface, error) {
	out := make([]Surface, 0, len(patches))
	for pi, patch := range patches {
		grid := make([][]Point3, PatchSize)
		for r := range grid {
			grid[r] = make([]Point3, PatchSize)
		}
		for slot, idx := range patch {
			if idx < 1 || idx > len(vertices) {
				return nil, &IndexError{Patch: pi, Slot: slot, Index: idx, Vertices: len(vertices)}
			}
			grid[slot/PatchSize][slot%PatchSize] = FromCoords[float64](vertices[idx-1])
		}
		out = append(out, Surface{P: grid})
	}
	return out, nil
}
