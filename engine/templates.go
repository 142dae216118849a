package engine

// cellKind tags how a single cell of an Initialization Template is seeded.
// A Zero/One cell is a compile-time constant; a KeyBit cell is populated
// from one bit of the 32-bit user key at schedule time.
type cellKind struct {
	constant uint8 // used when fromKey is false
	keyIndex uint8 // used when fromKey is true, 0..31
	fromKey  bool
}

func cellZero() cellKind { return cellKind{constant: 0} }
func cellOne() cellKind  { return cellKind{constant: 1} }
func keyBit(i uint8) cellKind {
	return cellKind{keyIndex: i, fromKey: true}
}

// initTemplate is a compile-time 16x16 table of cellKind, describing how to
// seed a Bit Grid from a 32-bit user key.
type initTemplate [gridSize][gridSize]cellKind

// Seed produces a Bit Grid from key using template t: a Zero cell becomes
// bit 0, a One cell becomes bit 1, and a KeyBit(i) cell becomes bit i of
// key (bit 0 is the key's least significant bit).
func (t *initTemplate) Seed(key uint32) Grid {
	var g Grid
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			cell := t[r][c]
			if cell.fromKey {
				g.Set(r, c, uint8((key>>cell.keyIndex)&1))
			} else {
				g.Set(r, c, cell.constant)
			}
		}
	}
	return g
}

// templateTranspose (I_T) and templateShift (I_S) are the two fixed
// Initialization Matrices of the cipher: compile-time data, not code. Each
// holds exactly 64 Zero cells, 64 One cells, and each key-bit index 0..31
// appearing exactly 4 times among the 128 KeyBit cells. Neither template is
// bilaterally symmetric, and I_S is not a reflection of I_T; TestTemplate*
// in templates_test.go checks all of this at test time rather than trusting
// the literals below.
var templateTranspose = initTemplate{
	{keyBit(26), keyBit(31), cellOne(), keyBit(13), cellZero(), keyBit(20), keyBit(26), keyBit(23), cellOne(), keyBit(14), keyBit(12), keyBit(7), cellZero(), keyBit(1), cellZero(), cellZero()},
	{keyBit(16), cellZero(), keyBit(24), cellOne(), keyBit(13), keyBit(6), cellZero(), keyBit(17), cellOne(), keyBit(29), cellOne(), cellOne(), cellOne(), cellOne(), keyBit(18), keyBit(14)},
	{cellZero(), keyBit(15), keyBit(6), keyBit(18), keyBit(9), keyBit(7), keyBit(12), cellOne(), keyBit(2), keyBit(24), cellZero(), cellOne(), keyBit(2), keyBit(19), cellOne(), cellZero()},
	{keyBit(30), cellOne(), keyBit(7), cellZero(), cellZero(), keyBit(26), keyBit(27), cellOne(), keyBit(22), keyBit(30), cellZero(), cellZero(), keyBit(23), cellOne(), keyBit(27), cellZero()},
	{keyBit(8), cellOne(), cellZero(), cellZero(), keyBit(7), cellOne(), cellOne(), cellOne(), cellOne(), cellOne(), keyBit(8), cellZero(), cellZero(), keyBit(10), cellZero(), cellOne()},
	{cellOne(), keyBit(4), keyBit(17), cellZero(), cellZero(), cellZero(), keyBit(1), cellZero(), keyBit(21), cellZero(), cellZero(), cellOne(), cellZero(), cellZero(), keyBit(2), keyBit(5)},
	{cellZero(), keyBit(25), keyBit(10), keyBit(8), keyBit(23), cellZero(), cellOne(), keyBit(15), cellOne(), keyBit(3), cellZero(), keyBit(5), keyBit(4), cellOne(), cellOne(), keyBit(26)},
	{keyBit(25), keyBit(15), keyBit(28), cellZero(), cellOne(), keyBit(9), keyBit(11), cellOne(), keyBit(10), keyBit(15), cellOne(), keyBit(21), cellZero(), cellOne(), cellZero(), cellZero()},
	{cellOne(), cellZero(), cellZero(), cellOne(), cellZero(), keyBit(24), keyBit(24), cellOne(), keyBit(18), keyBit(0), keyBit(31), keyBit(17), keyBit(21), cellZero(), cellZero(), keyBit(23)},
	{keyBit(13), keyBit(4), cellZero(), keyBit(6), cellOne(), cellZero(), keyBit(29), keyBit(20), cellOne(), cellOne(), keyBit(27), keyBit(1), cellZero(), cellZero(), keyBit(0), keyBit(19)},
	{cellZero(), cellOne(), keyBit(3), cellOne(), cellZero(), keyBit(16), cellOne(), cellZero(), cellOne(), cellZero(), keyBit(11), cellOne(), keyBit(12), cellOne(), keyBit(5), cellOne()},
	{cellOne(), cellZero(), keyBit(10), keyBit(0), keyBit(20), keyBit(0), keyBit(13), cellOne(), keyBit(30), cellOne(), keyBit(20), keyBit(8), cellZero(), cellZero(), keyBit(9), keyBit(3)},
	{cellOne(), keyBit(22), cellOne(), cellOne(), keyBit(29), keyBit(19), keyBit(11), keyBit(28), cellOne(), cellZero(), keyBit(3), keyBit(29), cellOne(), keyBit(25), cellZero(), keyBit(1)},
	{keyBit(22), keyBit(14), cellOne(), cellZero(), keyBit(11), keyBit(28), cellZero(), keyBit(2), keyBit(28), cellZero(), cellZero(), keyBit(27), cellOne(), cellZero(), keyBit(5), cellZero()},
	{keyBit(31), keyBit(14), keyBit(31), cellOne(), keyBit(12), cellZero(), keyBit(17), keyBit(30), keyBit(6), cellOne(), cellOne(), keyBit(21), keyBit(25), cellZero(), cellOne(), cellZero()},
	{cellZero(), keyBit(18), cellOne(), keyBit(9), cellOne(), cellOne(), keyBit(16), cellOne(), cellZero(), cellOne(), cellZero(), keyBit(16), keyBit(19), keyBit(22), keyBit(4), cellOne()},
}

var templateShift = initTemplate{
	{keyBit(15), keyBit(18), keyBit(0), cellZero(), cellOne(), cellOne(), cellOne(), keyBit(5), keyBit(4), keyBit(3), keyBit(26), cellOne(), keyBit(30), cellZero(), keyBit(1), keyBit(17)},
	{keyBit(20), cellZero(), cellOne(), cellZero(), keyBit(25), cellOne(), cellOne(), keyBit(8), keyBit(18), keyBit(20), keyBit(20), keyBit(22), keyBit(10), cellOne(), cellOne(), cellOne()},
	{keyBit(0), cellOne(), cellOne(), keyBit(30), keyBit(29), keyBit(7), cellZero(), cellZero(), cellOne(), cellOne(), keyBit(4), cellZero(), cellZero(), keyBit(30), cellZero(), keyBit(18)},
	{keyBit(6), cellOne(), cellZero(), keyBit(15), cellOne(), keyBit(6), cellZero(), cellZero(), cellZero(), cellOne(), cellZero(), keyBit(14), keyBit(5), keyBit(27), cellZero(), cellOne()},
	{keyBit(6), keyBit(3), keyBit(21), cellZero(), keyBit(14), cellZero(), keyBit(28), cellOne(), keyBit(29), cellOne(), cellZero(), keyBit(24), cellZero(), keyBit(4), keyBit(9), keyBit(17)},
	{keyBit(18), keyBit(8), keyBit(7), keyBit(29), keyBit(20), keyBit(5), cellZero(), keyBit(28), cellOne(), cellOne(), keyBit(21), keyBit(16), keyBit(23), cellOne(), cellOne(), cellZero()},
	{cellOne(), keyBit(2), keyBit(19), cellZero(), keyBit(14), cellZero(), cellZero(), keyBit(25), cellZero(), keyBit(19), keyBit(25), cellOne(), cellOne(), keyBit(9), cellZero(), keyBit(1)},
	{keyBit(17), keyBit(24), keyBit(23), keyBit(26), cellZero(), keyBit(27), keyBit(22), keyBit(7), cellOne(), cellZero(), cellZero(), keyBit(1), keyBit(5), cellOne(), keyBit(3), cellOne()},
	{cellZero(), keyBit(0), keyBit(11), cellZero(), cellZero(), keyBit(4), keyBit(8), keyBit(31), cellOne(), keyBit(12), keyBit(21), cellOne(), keyBit(12), keyBit(31), keyBit(29), cellZero()},
	{cellOne(), keyBit(23), cellOne(), cellOne(), keyBit(28), cellZero(), cellZero(), cellOne(), keyBit(31), cellOne(), keyBit(9), cellOne(), cellOne(), keyBit(11), keyBit(0), cellZero()},
	{cellZero(), cellZero(), cellOne(), cellZero(), keyBit(15), keyBit(14), cellZero(), keyBit(9), cellOne(), keyBit(24), cellZero(), cellZero(), cellOne(), cellOne(), cellOne(), keyBit(6)},
	{keyBit(23), keyBit(26), keyBit(25), cellOne(), cellOne(), keyBit(16), keyBit(24), keyBit(7), cellOne(), cellZero(), keyBit(26), keyBit(10), cellOne(), cellOne(), keyBit(22), cellZero()},
	{cellZero(), keyBit(3), keyBit(1), cellOne(), cellOne(), keyBit(8), cellZero(), cellOne(), cellZero(), cellZero(), cellOne(), cellZero(), cellOne(), cellZero(), keyBit(13), keyBit(12)},
	{cellZero(), keyBit(2), cellZero(), keyBit(17), keyBit(19), keyBit(13), keyBit(30), keyBit(2), keyBit(21), keyBit(16), cellZero(), keyBit(27), keyBit(12), cellOne(), keyBit(13), keyBit(13)},
	{cellOne(), cellZero(), cellOne(), keyBit(15), keyBit(27), cellZero(), cellZero(), cellOne(), keyBit(19), cellZero(), keyBit(28), keyBit(10), keyBit(11), cellZero(), cellOne(), keyBit(11)},
	{cellOne(), cellZero(), keyBit(31), cellZero(), cellZero(), cellOne(), keyBit(2), cellZero(), cellOne(), cellZero(), cellOne(), cellOne(), cellZero(), keyBit(16), keyBit(10), keyBit(22)},
}
