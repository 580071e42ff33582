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
	"github.com/garretthagen21/COE1541-Project-1/pkg/encoding"
)

const maxImmediate = (int64(1) << FIELD_IMM8) - 1

func resolveRegister(token *Token, field string) (uint16, error) {
	code, ok := parseRegister(token.Value)

	if !ok {
		return 0, &UnknownRegisterError{token.Position, field, token.Value}
	}

	return code, nil
}

func resolveImmediate(token *Token) (uint8, error) {
	value, err := encoding.DecodeInt(token.Value)

	if err != nil {
		return 0, &MalformedImmediateError{token.Position, token.Value}
	}

	if !encoding.FitsUnsigned(value, FIELD_IMM8) {
		return 0, &ImmediateOverflowError{token.Position, maxImmediate, value}
	}

	return uint8(value), nil
}

// Encode assembles one line of source and returns its hex rendering.
func Encode(line string) (string, error) {
	word, err := EncodeLine(0, line)

	if err != nil {
		return "", err
	}

	return word.Hex(), nil
}

// EncodeLine assembles one line of source whose 1-based number is lineNo.
// A trailing '#' comment is ignored.
func EncodeLine(lineNo int, line string) (Word, error) {
	parsed := TokenizeLine(lineNo, StripComment(line))
	return EncodeInstruction(&parsed)
}

// EncodeInstruction packs an already tokenized instruction.
func EncodeInstruction(parsed *ParsedInstruction) (Word, error) {
	keyword := &parsed.Mnemonic
	operands := parsed.Operands

	spec, err := LookupInstruction(keyword.Value)

	if err != nil {
		return 0, &UnknownInstructionError{keyword.Position, keyword.Value}
	}

	if count := len(operands); count != spec.Operands {
		return 0, &OperandCountError{
			keyword.Position, spec.Mnemonic, spec.Operands, count,
		}
	}

	switch spec.Format {
	case FORMAT_R:
		var rs, rt uint16

		if spec.Operands == 2 {
			if rs, err = resolveRegister(&operands[0], "rs"); err != nil {
				return 0, err
			}

			if rt, err = resolveRegister(&operands[1], "rt"); err != nil {
				return 0, err
			}
		}

		return PackR(spec.Opcode, rs, rt, spec.Subop), nil

	case FORMAT_I:
		var imm uint8

		rs, err := resolveRegister(&operands[0], "rs")

		if err != nil {
			return 0, err
		}

		if spec.Operands == 2 {
			if imm, err = resolveImmediate(&operands[1]); err != nil {
				return 0, err
			}
		}

		return PackI(spec.Opcode, rs, spec.Unsigned, imm), nil
	}

	return 0, &UnknownInstructionError{keyword.Position, keyword.Value}
}
