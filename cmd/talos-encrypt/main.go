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

package main

import (
	"crypto/rand"
	"crypto/sha1"
	"io"
	"log"
	"os"

	"golang.org/x/crypto/pbkdf2"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/talos-cipher/talos/engine"
	tioutil "github.com/talos-cipher/talos/internal/ioutil"
	"github.com/talos-cipher/talos/internal/stats"
)

// SALT seasons pbkdf2's key expansion when -passphrase is used instead of
// -k. It has no security value of its own; it only keeps the derivation
// stable across runs for the same passphrase.
const SALT = "talos-cipher"

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "talos-encrypt"
	myApp.Usage = "encrypt a file with the Talos block cipher"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "k, key",
			Usage: "32-bit key, hex (0x...) or decimal; a random key is generated and printed to stderr if omitted",
		},
		cli.StringFlag{
			Name:  "passphrase",
			Usage: "derive the key from a passphrase via pbkdf2 instead of -k",
		},
		cli.BoolFlag{
			Name:  "compress",
			Usage: "snappy-compress the plaintext before framing it into blocks",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "redirect log output to this file",
		},
		cli.StringFlag{
			Name:  "statslog",
			Usage: "periodically append block-throughput stats to this CSV file",
		},
		cli.IntFlag{
			Name:  "statsevery",
			Value: 0,
			Usage: "interval in seconds between statslog rows, 0 to disable",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress non-error log output",
		},
		cli.StringFlag{
			Name:  "c",
			Usage: "path to a JSON config file overriding the flags above",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		config := Config{}
		config.Input = c.Args().Get(0)
		config.Output = c.Args().Get(1)
		config.Key = c.String("key")
		config.Passphrase = c.String("passphrase")
		config.Compress = c.Bool("compress")
		config.Log = c.String("log")
		config.StatsLog = c.String("statslog")
		config.StatsEvery = c.Int("statsevery")
		config.Quiet = c.Bool("quiet")

		if c.String("c") != "" {
			checkError(parseJSONConfig(&config, c.String("c")))
		}

		if config.Input == "" || config.Output == "" {
			checkError(errors.New("usage: talos-encrypt <input-path> <output-path> -k <KEY>"))
		}

		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			checkError(errors.Wrap(err, "open log file"))
			log.SetOutput(f)
		}

		key, err := resolveEncryptKey(&config)
		checkError(errors.Wrap(err, "resolve key"))

		in, err := os.Open(config.Input)
		checkError(errors.Wrap(err, "open input"))
		defer in.Close()

		out, err := os.Create(config.Output)
		checkError(errors.Wrap(err, "create output"))
		defer out.Close()

		var reader io.Reader = in
		if config.Compress {
			var buf []byte
			buf, err = io.ReadAll(reader)
			checkError(errors.Wrap(err, "read input"))

			var compressed = new(bufferWriteCloser)
			w := tioutil.NewCompressedWriter(compressed)
			_, err = w.Write(buf)
			checkError(errors.Wrap(err, "compress input"))
			checkError(errors.Wrap(w.Close(), "flush compressor"))
			reader = compressed
		}

		counters := &stats.Counters{}
		statsLogger := stats.StartLogger(counters, config.StatsLog, config.StatsEvery)
		defer statsLogger.Stop()

		countingWriter := &countingWriter{w: out, counters: counters}
		err = engine.EncryptStream(countingWriter, reader, key)
		checkError(errors.Wrap(err, "encrypt"))

		if !config.Quiet {
			log.Printf("encrypted %s -> %s", config.Input, config.Output)
		}
		return nil
	}
	myApp.Run(os.Args)
}

// resolveEncryptKey derives the 32-bit key from -passphrase, or parses -k,
// or (if neither is given) generates a random key and prints it to stderr
// in the parseable form spec.md §6 requires.
func resolveEncryptKey(config *Config) (uint32, error) {
	if config.Passphrase != "" {
		derived := pbkdf2.Key([]byte(config.Passphrase), []byte(SALT), 4096, 4, sha1.New)
		if len(config.Passphrase) < 8 {
			color.New(color.FgRed).Fprintln(os.Stderr, "WARNING: passphrase is shorter than the recommended 8 characters")
		}
		return uint32(derived[0]) | uint32(derived[1])<<8 | uint32(derived[2])<<16 | uint32(derived[3])<<24, nil
	}

	if config.Key != "" {
		return engine.ParseKey(config.Key)
	}

	var raw [4]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return 0, errors.Wrap(err, "generate random key")
	}
	key := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	color.New(color.FgRed).Fprintf(os.Stderr, "key: 0x%08x\n", key)
	return key, nil
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

// countingWriter tees every Write through to stats.Counters so the
// background stats.Logger (if any) sees live throughput.
type countingWriter struct {
	w        io.Writer
	counters *stats.Counters
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.counters.AddBlock(n)
	return n, err
}

// bufferWriteCloser adapts a growable byte buffer to io.Writer so
// tioutil.NewCompressedWriter has somewhere to compress into before the
// result is handed to the block pipeline as an io.Reader.
type bufferWriteCloser struct {
	buf []byte
	pos int
}

func (b *bufferWriteCloser) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *bufferWriteCloser) Read(p []byte) (int, error) {
	if b.pos >= len(b.buf) {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.pos:])
	b.pos += n
	return n, nil
}
