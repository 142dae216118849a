// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package engine implements the Talos cipher core: key scheduling over
// cellular automata, the bit-scrambling permutation, and the streaming
// block pipeline. Everything in this package is a pure function of its
// inputs; no component here logs, reads files, or touches the network.
package engine

// gridSize is the side length of the torus both cipher streams evolve on.
const gridSize = 16

// Grid is a 16x16 torus of bits, indexed (row, col) with both coordinates
// in 0..15. It is the common representation for subkey streams and for
// plaintext/ciphertext blocks.
type Grid struct {
	cells [gridSize][gridSize]uint8
}

// Bit returns the bit stored at (r, c). r and c are reduced modulo 16 first,
// so callers may pass out-of-range or negative coordinates when it is
// convenient to express toroidal wraparound at the call site.
func (g *Grid) Bit(r, c int) uint8 {
	return g.cells[wrap(r)][wrap(c)]
}

// Set stores v (interpreted as 0 or 1) at (r, c), wrapping coordinates.
func (g *Grid) Set(r, c int, v uint8) {
	g.cells[wrap(r)][wrap(c)] = v & 1
}

// wrap reduces an index into 0..15, handling negative values correctly
// (Go's % retains the sign of the dividend, so a plain modulo of a negative
// row/col would not toroidally wrap on its own).
func wrap(i int) int {
	i %= gridSize
	if i < 0 {
		i += gridSize
	}
	return i
}

// Row returns row r packed into a 16-bit value, bit c of the value holding
// the bit at column c (column 0 is the least significant bit).
func (g *Grid) Row(r int) uint16 {
	var v uint16
	for c := 0; c < gridSize; c++ {
		v |= uint16(g.Bit(r, c)) << uint(c)
	}
	return v
}

// Col returns column c packed into a 16-bit value, bit r of the value
// holding the bit at row r (row 0 is the least significant bit).
func (g *Grid) Col(c int) uint16 {
	var v uint16
	for r := 0; r < gridSize; r++ {
		v |= uint16(g.Bit(r, c)) << uint(r)
	}
	return v
}

// NeighborCount sums the eight toroidal Moore neighbors of (r, c):
// (r-1,c-1) (r-1,c) (r-1,c+1)
// (r  ,c-1)         (r  ,c+1)
// (r+1,c-1) (r+1,c) (r+1,c+1)
// each coordinate reduced modulo 16.
func (g *Grid) NeighborCount(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n += int(g.Bit(r+dr, c+dc))
		}
	}
	return n
}

// Xor returns the bitwise XOR of g and other as a new Grid.
func (g *Grid) Xor(other *Grid) Grid {
	var out Grid
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			out.cells[r][c] = g.cells[r][c] ^ other.cells[r][c]
		}
	}
	return out
}

// Equal reports whether g and other hold identical bits.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// Step advances g by one generation of rule, returning the successor grid.
// Every successor bit is computed purely from g (the previous state); g
// itself is never mutated, so Step is safe to call concurrently on
// independent streams sharing no state.
func (g *Grid) Step(rule func(cur uint8, neighbors int) uint8) Grid {
	var next Grid
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			next.cells[r][c] = rule(g.cells[r][c], g.NeighborCount(r, c))
		}
	}
	return next
}
