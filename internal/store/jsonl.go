// Package store keeps the task list and its backing file in step.
// This file provides JSONL read/write helpers with atomic persistence.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// jsonlLine is one non-blank line of a JSONL file with its 1-based line
// number, kept so decode failures can point at the offending line.
type jsonlLine struct {
	num  int
	data []byte
}

// readJSONL reads a JSONL file and returns each non-blank line. Lines are
// not parsed here; the caller decodes and reports failures by line number.
// Open errors are returned unwrapped by os so callers can test for
// fs.ErrNotExist.
func readJSONL(path string) ([]jsonlLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// readLines splits r into numbered lines with the line terminator removed.
// Lines have no length limit. Lines holding only whitespace are skipped
// but still counted.
func readLines(r io.Reader) ([]jsonlLine, error) {
	var lines []jsonlLine
	br := bufio.NewReader(r)
	num := 0
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			num++
			line = bytes.TrimSuffix(line, []byte("\n"))
			line = bytes.TrimSuffix(line, []byte("\r"))
			if len(bytes.TrimSpace(line)) > 0 {
				lines = append(lines, jsonlLine{num: num, data: line})
			}
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern. On any failure the previous file is untouched and
// the temp file is removed.
func writeJSONL(path string, records [][]byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(format string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(format, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail("setting file mode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
