// Package calibration recovers calibration values from the lines of an
// amended calibration document.
package calibration

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoDigit = errors.New("no digit in line")

var spelledDigits = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// digitAt reports the digit starting at line[i], if any. Spelled words are
// only recognized when spelled is set.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if line[i] >= '0' && line[i] <= '9' {
		return int(line[i] - '0'), true
	}
	if !spelled {
		return 0, false
	}
	rest := line[i:]
	for word, n := range spelledDigits {
		if strings.HasPrefix(rest, word) {
			return n, true
		}
	}
	return 0, false
}

// DecodeLine combines the first and the last digit of a line. Words may
// share letters ("eightwo" gives 8 first and 2 last), so the last digit is
// searched from the right.
func DecodeLine(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if n, ok := digitAt(line, i, spelled); ok {
			first = n
			break
		}
	}
	if first == -1 {
		return 0, ErrNoDigit
	}
	for i := len(line) - 1; i >= 0; i-- {
		if n, ok := digitAt(line, i, spelled); ok {
			last = n
			break
		}
	}
	return 10*first + last, nil
}

func Sum(lines []string, spelled bool) (int, error) {
	sum := 0
	for lineNo, line := range lines {
		val, err := DecodeLine(line, spelled)
		if err != nil {
			return 0, fmt.Errorf("line %d %q: %w", lineNo+1, line, err)
		}
		sum += val
	}
	return sum, nil
}
