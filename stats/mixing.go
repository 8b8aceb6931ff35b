package stats

import (
	"gonum.org/v1/gonum/mat"
	"sort"
)

// Mixing is a label co-occurrence matrix.  Cell (i, j) with i != j counts the
// groups containing both Labels[i] and Labels[j].  The diagonal cell (i, i)
// counts the groups containing Labels[i] more than once.
type Mixing struct {
	// Labels are sorted ascending, a label's position is its matrix index
	Labels []string
	Matrix *mat.Dense
	index  map[string]int
}

// MixingCell is one entry of the long form mixing table used to draw
// heatmaps
type MixingCell struct {
	Value float64
	Row   string
	Col   string
}

// MixingMatrix calculates how the objects returned by object mix within the
// groups returned by group.  For a detection dataset the group is usually the
// image and the object the class label, giving the class mixing over images.
func MixingMatrix[R any, K comparable](rows []R, group func(R) K,
	object func(R) string) (*Mixing, error) {

	if len(rows) == 0 {
		return nil, ErrNoData
	}

	// map labels to the mixing matrix index
	index := make(map[string]int)
	groups := make(map[K]map[string]int)
	var order []K

	for _, row := range rows {

		key := group(row)
		label := object(row)

		index[label] = 0

		counts, ok := groups[key]

		if !ok {
			counts = make(map[string]int)
			groups[key] = counts
			order = append(order, key)
		}

		counts[label]++
	}

	labels := make([]string, 0, len(index))

	for label := range index {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	for i, label := range labels {
		index[label] = i
	}

	m := mat.NewDense(len(labels), len(labels), nil)

	// iterate over each group to calculate how its objects mix
	for _, key := range order {

		counts := groups[key]

		for a, countA := range counts {

			i := index[a]

			// self mixing
			if countA > 1 {
				m.Set(i, i, m.At(i, i)+1)
			}

			// mixing of different objects, both orderings are counted
			for b := range counts {
				if a != b {
					j := index[b]
					m.Set(i, j, m.At(i, j)+1)
				}
			}
		}
	}

	return &Mixing{Labels: labels, Matrix: m, index: index}, nil
}

// Index returns the matrix index of label
func (m *Mixing) Index(label string) (int, bool) {
	i, ok := m.index[label]
	return i, ok
}

// Value returns the mixing count of two labels, 0 for unknown labels
func (m *Mixing) Value(row, col string) float64 {

	i, ok := m.index[row]

	if !ok {
		return 0
	}

	j, ok := m.index[col]

	if !ok {
		return 0
	}

	return m.Matrix.At(i, j)
}

// Max returns the largest cell value
func (m *Mixing) Max() float64 {
	return mat.Max(m.Matrix)
}

// Cells returns the matrix in long form, row by row
func (m *Mixing) Cells() []MixingCell {

	cells := make([]MixingCell, 0, len(m.Labels)*len(m.Labels))

	for i, row := range m.Labels {
		for j, col := range m.Labels {
			cells = append(cells, MixingCell{
				Value: m.Matrix.At(i, j),
				Row:   row,
				Col:   col,
			})
		}
	}

	return cells
}
