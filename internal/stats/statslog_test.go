package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCountersAccumulate(t *testing.T) {
	var c Counters
	c.AddBlock(32)
	c.AddBlock(32)
	row := c.ToSlice()
	if row[0] != "64" {
		t.Fatalf("bytes = %s, want 64", row[0])
	}
	if row[1] != "2" {
		t.Fatalf("blocks = %s, want 2", row[1])
	}
}

func TestLoggerNoOpWithoutPath(t *testing.T) {
	var c Counters
	l := StartLogger(&c, "", 1)
	l.Stop() // must not panic or block
}

func TestLoggerWritesRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.csv")

	var c Counters
	c.AddBlock(32)
	l := StartLogger(&c, path, 1)
	time.Sleep(1200 * time.Millisecond)
	l.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stats file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected at least one logged row")
	}
}
