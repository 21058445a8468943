// Package edgelist reads whitespace-separated text edge lists, the input
// format of the triangle counting pipeline: one edge per line as two
// non-negative integers, with '#' comment lines and blank lines ignored.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A Source is a raw edge stream that can be opened more than once. The
// ingestion pipeline reads its input twice, so Open must yield a fresh
// reader positioned at the start on every call.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// File is a Source backed by a file on disk.
type File string

func (f File) Name() string { return string(f) }

func (f File) Open() (io.ReadCloser, error) {
	r, err := os.Open(string(f))
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	return r, nil
}

// Text is an in-memory Source, mainly for tests.
type Text string

func (Text) Name() string { return "inline" }

func (t Text) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(t))), nil
}

// Edge is one raw record: an endpoint pair exactly as it appeared in the
// input, before canonicalization.
type Edge struct {
	U, V uint64
}

// Scanner yields one Edge per data line. Any data line that does not
// contain exactly two unsigned integers fails the whole scan; malformed
// input is never silently skipped.
type Scanner struct {
	name string
	s    *bufio.Scanner
	line int
	edge Edge
	err  error
}

const maxLineLen = 1 << 20

func NewScanner(name string, r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	return &Scanner{name: name, s: s}
}

// Scan advances to the next data line, skipping comments and blank lines.
// It returns false at end of input or on the first malformed line; Err
// distinguishes the two.
func (sc *Scanner) Scan() bool {
	if sc.err != nil {
		return false
	}
	for sc.s.Scan() {
		sc.line++
		text := strings.TrimSpace(sc.s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			sc.err = fmt.Errorf("edgelist: %v:%v: expected two node ids, got %q", sc.name, sc.line, text)
			return false
		}
		u, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			sc.err = fmt.Errorf("edgelist: %v:%v: bad node id %q", sc.name, sc.line, fields[0])
			return false
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			sc.err = fmt.Errorf("edgelist: %v:%v: bad node id %q", sc.name, sc.line, fields[1])
			return false
		}
		sc.edge = Edge{U: u, V: v}
		return true
	}
	if err := sc.s.Err(); err != nil {
		sc.err = fmt.Errorf("edgelist: %v:%v: %w", sc.name, sc.line, err)
	}
	return false
}

// Edge returns the record produced by the last successful Scan.
func (sc *Scanner) Edge() Edge { return sc.edge }

func (sc *Scanner) Err() error { return sc.err }
