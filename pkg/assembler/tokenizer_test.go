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

package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garretthagen21/COE1541-Project-1/pkg/assembler"
)

func tokenValues(parsed assembler.ParsedInstruction) []string {
	values := []string{parsed.Mnemonic.Value}

	for _, operand := range parsed.Operands {
		values = append(values, operand.Value)
	}

	return values
}

func TestTokenize(t *testing.T) {
	testData := []struct {
		line   string
		tokens []string
	}{
		{"add $r1, $r2", []string{"add", "$r1", "$r2"}},
		{"add $r1,$r2", []string{"add", "$r1", "$r2"}},
		{"add,$r1 ,, $r2,", []string{"add", "$r1", "$r2"}},
		{"  halt  ", []string{"halt"}},
		{"addi\t$r0,\t5\r", []string{"addi", "$r0", "5"}},
		{"put $r2 extra words", []string{"put", "$r2", "extra", "words"}},
		{"", []string{""}},
		{" , ", []string{""}},
	}

	for _, data := range testData {
		assert.Equal(t, data.tokens, tokenValues(assembler.Tokenize(data.line)), data.line)
	}
}

func TestTokenizeLinePositions(t *testing.T) {
	parsed := assembler.TokenizeLine(7, "  addi $r3, 12")

	assert.Equal(t, 7, parsed.Line)
	assert.Equal(t, assembler.Cursor{Line: 7, Column: 3, Size: 4}, parsed.Mnemonic.Position)
	assert.Equal(t, []assembler.Token{
		{Position: assembler.Cursor{Line: 7, Column: 8, Size: 3}, Value: "$r3"},
		{Position: assembler.Cursor{Line: 7, Column: 13, Size: 2}, Value: "12"},
	}, parsed.Operands)
}
