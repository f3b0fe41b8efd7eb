package matrix

import "fmt"

// Mul returns a·b.
// Returns ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·k·c), i-k-j loop order for row-major locality.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul(%dx%d, %dx%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, _ := NewDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Add returns a+b. Returns ErrDimensionMismatch on different shapes.
// Complexity: O(r·c).
func Add(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("Add(%dx%d, %dx%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Clamp returns a copy of m with every nonzero entry replaced by 1.
// Complexity: O(r·c).
func Clamp(m *Dense) *Dense {
	out := m.Clone()
	for i, v := range out.data {
		if v != 0 {
			out.data[i] = 1
		}
	}

	return out
}

func (m *Dense) isZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}
