package cards

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

const maxLineBytes = 1 << 20

// Load reads the deck at path. A missing file fails with ErrFileNotFound; a
// file without usable lines returns an empty deck and no error.
func Load(path string) (Deck, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Deck{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Deck{}, fmt.Errorf("open deck %s: %w", path, err)
	}
	defer file.Close()

	deck, err := Parse(file)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck %s: %w", path, err)
	}
	return deck, nil
}

// Parse applies the deck line format to r.
func Parse(r io.Reader) (Deck, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(scanAnyLines)

	var cards []Card
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		acronym, meaning, ok := parseLine(line)
		if !ok {
			continue
		}
		cards = append(cards, Card{
			ID:      len(cards) + 1,
			Acronym: acronym,
			Meaning: meaning,
		})
	}
	if err := scanner.Err(); err != nil {
		return Deck{}, err
	}

	return Deck{cards: cards}, nil
}

// scanAnyLines is bufio.ScanLines that also ends a line at a bare '\r', so
// files with classic Mac line endings split the same way as Unix and DOS ones.
func scanAnyLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A '\r' at the end of the buffer may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// parseLine splits a trimmed line on its first whitespace run.
func parseLine(line string) (acronym, meaning string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}

	cut := strings.IndexFunc(line, unicode.IsSpace)
	if cut < 0 {
		return line, "", true
	}
	return line[:cut], strings.TrimLeftFunc(line[cut:], unicode.IsSpace), true
}
