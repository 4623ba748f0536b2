// SPDX-License-Identifier: MIT

// Package matrix: exact-integer Dense implementation.
//
// Purpose:
//   - Provide a row-major matrix of *big.Int with safe, bounds-checked access.
//   - Support no-copy leading windows (View) so that a basis can grow inside a
//     preallocated backing array without moving existing entries.
//
// Storage model:
//   - data holds pointers to distinct big.Int cells; no two cells alias.
//   - stride is the row pitch of the backing array; for a fresh Dense stride == c.
//   - A View shares cells with its base: writes through either are visible in both.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Method tags used by denseErrorf.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxView   = "View"
	ctxInduce = "Induced"
	ctxNew    = "NewDense"
)

// Formatting tokens for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with the Dense method name and the coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact integers.
//   - r,c hold dimensions (rows, cols).
//   - stride is the distance between consecutive rows in data.
//   - data holds r rows of c live cells; cell (i,j) lives at data[i*stride+j].
type Dense struct {
	r, c   int
	stride int
	data   []*big.Int
}

// NewDense allocates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0 and cols ≥ 0 (0×n and n×0 are legal, they
//     describe an empty basis).
//   - Stage 2: allocate r*c distinct zero cells.
//
// Errors:
//   - ErrBadShape if rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrBadShape)
	}
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}

	return &Dense{r: rows, c: cols, stride: cols, data: data}, nil
}

// NewDenseFrom builds a matrix from int64 rows. All rows must have equal length.
func NewDenseFrom(rows [][]int64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*m.stride+j].SetInt64(v)
		}
	}

	return m, nil
}

// NewDenseBig builds a matrix from *big.Int rows, copying every value.
func NewDenseBig(rows [][]*big.Int) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseBig: row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if v == nil {
				return nil, denseErrorf(ctxSet, i, j, ErrNilValue)
			}
			m.data[i*m.stride+j].Set(v)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	return Scaled(n, big.NewInt(1))
}

// Scaled returns s·I_n.
func Scaled(n int, s *big.Int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i].Set(s)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the flat offset in data.
// Returns the bare sentinel; public methods add the coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.stride + col, nil
}

// cell returns the live cell at (i,j) without bounds checks.
// Internal kernels only; callers guarantee the indices.
func (m *Dense) cell(i, j int) *big.Int { return m.data[i*m.stride+j] }

// At returns a copy of the value at (row, col).
//
// Behavior highlights:
//   - Never panics on out-of-range; returns ErrOutOfRange.
//   - The returned integer is a fresh copy; mutating it does not touch m.
func (m *Dense) At(row, col int) (*big.Int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Int).Set(m.data[off]), nil
}

// Set copies v into (row, col).
// Errors: ErrOutOfRange, ErrNilValue.
func (m *Dense) Set(row, col int, v *big.Int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[off].Set(v)

	return nil
}

// SetInt64 stores v at (row, col).
func (m *Dense) SetInt64(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off].SetInt64(v)

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]*big.Int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]*big.Int, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Int).Set(m.cell(i, j))
	}

	return out, nil
}

// Clone returns a deep, compact copy (stride == cols) of m.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original, even when m is a View.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]*big.Int, m.r*m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			data[i*m.c+j] = new(big.Int).Set(m.cell(i, j))
		}
	}

	return &Dense{r: m.r, c: m.c, stride: m.c, data: data}
}

// Equal reports whether m and b have the same shape and identical entries.
// Storage layout (stride, views) is irrelevant.
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.cell(i, j).Cmp(b.cell(i, j)) != 0 {
				return false
			}
		}
	}

	return true
}

// Zero sets every entry of m to 0. On a View only the window is cleared.
func (m *Dense) Zero() {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			m.cell(i, j).SetInt64(0)
		}
	}
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Implementation:
//   - Stage 1: validate window bounds; allow zero-area.
//   - Stage 2: return a Dense sharing cells with m (stride inherited).
//
// Behavior highlights:
//   - Writes via the view reflect in the base and vice versa.
//   - A view of a view composes offsets.
//
// AI-Hints:
//   - Preallocate an n×n backing matrix and hand out View(0,0,d,d) to grow a
//     d×d triangular basis one dimension at a time without copying.
func (m *Dense) View(r0, c0, rows, cols int) (*Dense, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}
	if rows == 0 || cols == 0 {
		return &Dense{r: rows, c: cols, stride: m.stride}, nil
	}
	off := r0*m.stride + c0
	end := off + (rows-1)*m.stride + cols

	return &Dense{r: rows, c: cols, stride: m.stride, data: m.data[off:end:end]}, nil
}

// Induced returns a new matrix with rows rowsIdx and columns colsIdx of m (copied).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	res, err := NewDense(len(rowsIdx), len(colsIdx))
	if err != nil {
		return nil, err
	}
	for i, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j, cj := range colsIdx {
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.cell(i, j).Set(m.cell(ri, cj))
		}
	}

	return res, nil
}

// Do calls f for every entry in row-major order until f returns false.
// The value passed to f is the live cell; f must not modify it.
func (m *Dense) Do(f func(i, j int, v *big.Int) bool) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.cell(i, j)) {
				return
			}
		}
	}
}

// String renders rows as lines with comma-separated decimal values.
// Intended for logs and test failure messages.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			b.WriteString(m.cell(i, j).String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
