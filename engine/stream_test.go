package engine

import (
	"bytes"
	"errors"
	"testing"
)

func TestStreamRoundTripSingleBlock(t *testing.T) {
	p := bytes.Repeat([]byte{0x00}, BlockSize)
	var cipherBuf bytes.Buffer
	if err := EncryptStream(&cipherBuf, bytes.NewReader(p), 0x00000001); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Equal(cipherBuf.Bytes(), p) {
		t.Fatal("ciphertext equals plaintext")
	}

	var plainBuf bytes.Buffer
	if err := DecryptStream(&plainBuf, bytes.NewReader(cipherBuf.Bytes()), 0x00000001); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(plainBuf.Bytes(), p) {
		t.Fatal("decrypt(encrypt(P)) != P")
	}
}

func TestStreamRoundTripTwoBlocksDeterministic(t *testing.T) {
	p := make([]byte, 2*BlockSize)
	for i := range p {
		p[i] = byte(i)
	}

	var c1, c2 bytes.Buffer
	if err := EncryptStream(&c1, bytes.NewReader(p), 0xDEADBEEF); err != nil {
		t.Fatalf("encrypt 1: %v", err)
	}
	if err := EncryptStream(&c2, bytes.NewReader(p), 0xDEADBEEF); err != nil {
		t.Fatalf("encrypt 2: %v", err)
	}
	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Fatal("encrypting identical input twice under the same key gave different output")
	}
}

func TestStreamKeySensitivity(t *testing.T) {
	p := bytes.Repeat([]byte{0xFF}, BlockSize)
	var c1, c2 bytes.Buffer
	if err := EncryptStream(&c1, bytes.NewReader(p), 0x00000000); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if err := EncryptStream(&c2, bytes.NewReader(p), 0x00000001); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Fatal("different keys produced identical ciphertext")
	}
}

func TestStreamEmptyInput(t *testing.T) {
	var out bytes.Buffer
	if err := EncryptStream(&out, bytes.NewReader(nil), 1); err != nil {
		t.Fatalf("empty input should not error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatal("empty input produced nonempty output")
	}
}

func TestStreamShortInputRejected(t *testing.T) {
	for _, n := range []int{17, 31, 33} {
		p := make([]byte, n)
		var out bytes.Buffer
		err := EncryptStream(&out, bytes.NewReader(p), 1)
		if !errors.Is(err, ErrInputLengthInvalid) {
			t.Fatalf("length %d: got err=%v, want ErrInputLengthInvalid", n, err)
		}
	}
}

func TestStreamBlockIndependenceOfLength(t *testing.T) {
	p := make([]byte, BlockSize)
	q := make([]byte, BlockSize)
	for i := range p {
		p[i] = byte(i)
		q[i] = byte(i + 100)
	}

	var whole bytes.Buffer
	if err := EncryptStream(&whole, bytes.NewReader(append(append([]byte{}, p...), q...)), 7); err != nil {
		t.Fatalf("encrypt whole: %v", err)
	}

	sched := NewSchedule(7)
	tr, sh := sched.Next()
	ep := UnpackBlock(ptr(EncryptBlock(PackBlock(p), &tr, &sh)))
	tr, sh = sched.Next()
	eq := UnpackBlock(ptr(EncryptBlock(PackBlock(q), &tr, &sh)))

	got := append(append([]byte{}, ep...), eq...)
	if !bytes.Equal(whole.Bytes(), got) {
		t.Fatal("encrypt(P||Q) != encrypt(P) || encrypt continuing from subkey |P|/32")
	}
}

func ptr(g Grid) *Grid { return &g }
