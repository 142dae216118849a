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

package ioutil

import (
	"io"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// CompressedWriter wraps w so that everything written through it is
// snappy-compressed before it reaches w. It must be closed to flush the
// final frame. Used by the -compress flag on talos-encrypt: plaintext is
// compressed before it is framed into 32-byte blocks, so the block pipeline
// itself never sees the compression.
type CompressedWriter struct {
	w *snappy.Writer
}

// NewCompressedWriter returns a CompressedWriter over dst.
func NewCompressedWriter(dst io.Writer) *CompressedWriter {
	return &CompressedWriter{w: snappy.NewBufferedWriter(dst)}
}

func (c *CompressedWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, errors.WithStack(err)
	}
	return n, nil
}

// Close flushes any buffered compressed data.
func (c *CompressedWriter) Close() error {
	return errors.WithStack(c.w.Close())
}

// DecompressedReader wraps src so that reads through it yield the
// snappy-decompressed bytes of src. Used by -compress on talos-decrypt,
// after the block pipeline has already removed the cipher transform.
func DecompressedReader(src io.Reader) io.Reader {
	return snappy.NewReader(src)
}
