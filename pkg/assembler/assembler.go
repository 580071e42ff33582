// Copyright (C) 2026  The COE1541-Project-1 Authors

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package assembler

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/xerrors"
)

// One successfully encoded source line
type Record struct {
	Line   int
	Source string
	Parsed ParsedInstruction
	Word   Word
}

type Options struct {
	// Called once per encoded instruction, in source order
	Observer func(*Record)
}

// StripComment drops everything from the first '#' onward.
func StripComment(line string) string {
	if i := strings.Index(line, COMMENT_PREFIX); i != -1 {
		return line[:i]
	}

	return line
}

// Strips a trailing comment. Returns false when nothing but whitespace is
// left.
func cleanLine(line string) (string, bool) {
	line = StripComment(line)

	if strings.TrimSpace(line) == "" {
		return "", false
	}

	return line, true
}

// AssembleRecords encodes every instruction in input. Assembly stops at the
// first line that fails to encode, and that error satisfies TokenError.
// Read failures are returned wrapped and carry no position.
func AssembleRecords(input io.Reader, opts *Options) ([]Record, error) {
	var records []Record
	var scanner = bufio.NewScanner(input)
	var lineNo int

	for scanner.Scan() {
		lineNo++

		source := scanner.Text()
		line, ok := cleanLine(source)

		if !ok {
			continue
		}

		record := Record{
			Line:   lineNo,
			Source: source,
			Parsed: TokenizeLine(lineNo, line),
		}

		word, err := EncodeInstruction(&record.Parsed)

		if err != nil {
			return nil, err
		}

		record.Word = word
		records = append(records, record)

		if opts != nil && opts.Observer != nil {
			opts.Observer(&records[len(records)-1])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("reading source: %w", err)
	}

	return records, nil
}

// WriteImage writes the raw image header followed by one hex word per line.
func WriteImage(output io.Writer, records []Record) error {
	writer := bufio.NewWriter(output)

	if _, err := writer.WriteString(IMAGE_HEADER + "\n"); err != nil {
		return xerrors.Errorf("writing image header: %w", err)
	}

	for i := range records {
		if _, err := writer.WriteString(records[i].Word.Hex() + "\n"); err != nil {
			return xerrors.Errorf("writing line %d: %w", records[i].Line, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return xerrors.Errorf("writing image: %w", err)
	}

	return nil
}

// AssembleSource assembles input and writes the resulting image to output.
// Nothing is written unless every line encodes.
func AssembleSource(input io.Reader, output io.Writer, opts *Options) ([]Record, error) {
	records, err := AssembleRecords(input, opts)

	if err != nil {
		return nil, err
	}

	if err := WriteImage(output, records); err != nil {
		return nil, err
	}

	return records, nil
}
