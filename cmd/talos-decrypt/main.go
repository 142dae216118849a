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
	"crypto/sha1"
	"io"
	"log"
	"os"

	"golang.org/x/crypto/pbkdf2"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/talos-cipher/talos/engine"
	tioutil "github.com/talos-cipher/talos/internal/ioutil"
	"github.com/talos-cipher/talos/internal/stats"
)

// SALT must match talos-encrypt's SALT for -passphrase to derive the same
// key on both sides.
const SALT = "talos-cipher"

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "talos-decrypt"
	myApp.Usage = "decrypt a file encrypted with talos-encrypt"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "k, key",
			Usage: "32-bit key, hex (0x...) or decimal",
		},
		cli.StringFlag{
			Name:  "passphrase",
			Usage: "derive the key from a passphrase via pbkdf2 instead of -k",
		},
		cli.BoolFlag{
			Name:  "compress",
			Usage: "snappy-decompress the plaintext after unframing it from blocks",
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
			checkError(errors.New("usage: talos-decrypt <input-path> <output-path> -k <KEY>"))
		}

		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			checkError(errors.Wrap(err, "open log file"))
			log.SetOutput(f)
		}

		if config.Key == "" && config.Passphrase == "" {
			checkError(errors.Wrap(engine.ErrKeyMissing, "talos-decrypt requires -k or -passphrase"))
		}

		key, err := resolveDecryptKey(&config)
		checkError(errors.Wrap(err, "resolve key"))

		in, err := os.Open(config.Input)
		checkError(errors.Wrap(err, "open input"))
		defer in.Close()

		out, err := os.Create(config.Output)
		checkError(errors.Wrap(err, "create output"))
		defer out.Close()

		counters := &stats.Counters{}
		statsLogger := stats.StartLogger(counters, config.StatsLog, config.StatsEvery)
		defer statsLogger.Stop()

		countingReader := &countingReader{r: in, counters: counters}

		var writer io.Writer = out
		if config.Compress {
			var plainBuf bufferWriteCloser
			err = engine.DecryptStream(&plainBuf, countingReader, key)
			checkError(errors.Wrap(err, "decrypt"))

			decompressed := tioutil.DecompressedReader(&plainBuf)
			_, err = tioutil.Copy(out, decompressed)
			checkError(errors.Wrap(err, "decompress output"))
		} else {
			err = engine.DecryptStream(writer, countingReader, key)
			checkError(errors.Wrap(err, "decrypt"))
		}

		if !config.Quiet {
			log.Printf("decrypted %s -> %s", config.Input, config.Output)
		}
		return nil
	}
	myApp.Run(os.Args)
}

func resolveDecryptKey(config *Config) (uint32, error) {
	if config.Passphrase != "" {
		derived := pbkdf2.Key([]byte(config.Passphrase), []byte(SALT), 4096, 4, sha1.New)
		return uint32(derived[0]) | uint32(derived[1])<<8 | uint32(derived[2])<<16 | uint32(derived[3])<<24, nil
	}
	return engine.ParseKey(config.Key)
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

type countingReader struct {
	r        io.Reader
	counters *stats.Counters
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.counters.AddBlock(n)
	}
	return n, err
}

// bufferWriteCloser is a growable in-memory buffer implementing both
// io.Writer and io.Reader, used to hold the decrypted-but-still-compressed
// plaintext between DecryptStream and the snappy decompression pass.
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
