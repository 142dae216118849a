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

// Package stats tracks block-pipeline throughput for the CLI binaries and,
// optionally, logs it to a CSV file on a timer. The engine package itself
// never logs; this package only ever observes bytes already flowing
// through a talos-encrypt/talos-decrypt run.
package stats

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Counters tracks cumulative bytes and blocks processed by one cipher
// session. All fields are updated with atomic operations so a Counters can
// be shared between the block pipeline goroutine and a background logger.
type Counters struct {
	bytes  int64
	blocks int64
}

// AddBlock records one processed block of n bytes.
func (c *Counters) AddBlock(n int) {
	atomic.AddInt64(&c.blocks, 1)
	atomic.AddInt64(&c.bytes, int64(n))
}

// Header names the CSV columns ToSlice fills, in order.
func (c *Counters) Header() []string {
	return []string{"Bytes", "Blocks"}
}

// ToSlice renders the current counter values as strings, in Header order.
func (c *Counters) ToSlice() []string {
	return []string{
		fmt.Sprint(atomic.LoadInt64(&c.bytes)),
		fmt.Sprint(atomic.LoadInt64(&c.blocks)),
	}
}

// Logger appends one CSV row of Counters to path every interval, until
// Stop is called. path is formatted with time.Now() the same way the
// teacher's log-rotation path works, so "stats-20060102.csv"-style
// patterns roll over naturally.
type Logger struct {
	stop chan struct{}
}

// StartLogger starts a background ticker that appends a row to path every
// interval seconds. If path is empty or interval is 0, StartLogger is a
// no-op and returns a Logger whose Stop does nothing.
func StartLogger(c *Counters, path string, interval int) *Logger {
	l := &Logger{stop: make(chan struct{})}
	if path == "" || interval == 0 {
		return l
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-l.stop:
				return
			case <-ticker.C:
				if err := appendRow(c, path); err != nil {
					log.Println(err)
				}
			}
		}
	}()
	return l
}

// Stop ends the background logging goroutine, if one was started.
func (l *Logger) Stop() {
	close(l.stop)
}

func appendRow(c *Counters, path string) error {
	logdir, logfile := filepath.Split(path)
	f, err := os.OpenFile(logdir+time.Now().Format(logfile), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		if err := w.Write(append([]string{"Unix"}, c.Header()...)); err != nil {
			return err
		}
	}
	if err := w.Write(append([]string{fmt.Sprint(time.Now().Unix())}, c.ToSlice()...)); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
