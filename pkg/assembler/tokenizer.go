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
	"strings"
	"unicode"
)

func isSeparator(char rune) bool {
	return char == ',' || unicode.IsSpace(char)
}

// Tokenize splits a single source line into its mnemonic and operands.
func Tokenize(line string) ParsedInstruction {
	return TokenizeLine(0, line)
}

// TokenizeLine is Tokenize for a line whose 1-based number is known. Token
// columns are 1-based byte offsets into line.
func TokenizeLine(lineNo int, line string) ParsedInstruction {
	var tokens = make([]Token, 0, 3)
	var builder strings.Builder
	var tokenStart int

	flush := func() {
		if builder.Len() == 0 {
			return
		}

		tokens = append(tokens, Token{
			Position: Cursor{
				Line:   lineNo,
				Column: tokenStart,
				Size:   builder.Len(),
			},
			Value: builder.String(),
		})
		builder.Reset()
	}

	for column, char := range line {
		if isSeparator(char) {
			flush()
			continue
		}

		if builder.Len() == 0 {
			tokenStart = column + 1
		}

		builder.WriteRune(char)
	}

	flush()

	parsed := ParsedInstruction{Line: lineNo}

	if len(tokens) > 0 {
		parsed.Mnemonic = tokens[0]
		parsed.Operands = tokens[1:]
	}

	return parsed
}
