// Package input reads puzzle inputs into memory as lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const maxLineSize = 1024 * 1024

// Lines reads r fully. Line terminators, including a trailing "\r", are
// dropped; a final newline does not produce an empty last line.
func Lines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot scan input: %w", err)
	}
	return lines, nil
}

func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input at %s, err: %w", path, err)
	}
	defer f.Close()

	return Lines(f)
}
