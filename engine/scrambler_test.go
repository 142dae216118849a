package engine

import "testing"

func gridFromKey(key uint32) Grid {
	return templateTranspose.Seed(key)
}

func TestScramblerInvolution(t *testing.T) {
	cases := []uint32{0x00000000, 0xFFFFFFFF, 0x12345678, 0xDEADBEEF, 1}
	for _, tk := range cases {
		tg := gridFromKey(tk)
		for _, pk := range cases {
			p := gridFromKey(pk)
			e := Scramble(p, &tg)
			got := Unscramble(e, &tg)
			if !got.Equal(&p) {
				t.Fatalf("T=0x%08x P=0x%08x: Unscramble(Scramble(P,T),T) != P", tk, pk)
			}
		}
	}
}

func TestScramblerAllZeroAllOneTransposeKeys(t *testing.T) {
	var zero, one Grid
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			one.Set(r, c, 1)
		}
	}
	p := gridFromKey(0xCAFEBABE)
	for _, tg := range []Grid{zero, one} {
		e := Scramble(p, &tg)
		got := Unscramble(e, &tg)
		if !got.Equal(&p) {
			t.Fatal("involution failed for a constant transpose key")
		}
	}
}

func TestRowAndColIndexBitsDisjoint(t *testing.T) {
	for j := 0; j < gridSize; j++ {
		rBase := (3 * j) % 4
		cBase := (3*j + 3) % 4
		rowCols := map[int]bool{}
		for k := 0; k < 4; k++ {
			rowCols[rBase+4*k] = true
		}
		for k := 0; k < 4; k++ {
			col := cBase + 4*k
			if rowCols[col] {
				t.Fatalf("j=%d: column index reads a column position (%d) also used for the row index", j, col)
			}
		}
	}
}

func TestSelfSwapIsNoOp(t *testing.T) {
	var g Grid
	g.Set(3, 3, 1)
	before := g
	g.swapRows(3, 3)
	g.swapCols(3, 3)
	if !g.Equal(&before) {
		t.Fatal("self-swap mutated the grid")
	}
}
