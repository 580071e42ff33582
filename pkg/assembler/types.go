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
	"fmt"

	"github.com/garretthagen21/COE1541-Project-1/pkg/encoding"
)

type FormatType uint
type InstructionType uint

func (f FormatType) String() string {
	switch f {
	case FORMAT_R:
		return "R"
	case FORMAT_I:
		return "I"
	}

	return "<invalid>"
}

type Cursor struct {
	Line   int
	Column int
	Size   int
}

type Token struct {
	Position Cursor
	Value    string
}

type InstructionSpec struct {
	Type     InstructionType
	Mnemonic string
	Format   FormatType
	Opcode   uint16
	Subop    uint16 // R-type only
	Operands int
	Unsigned bool // I-type only
}

type ParsedInstruction struct {
	Line     int
	Mnemonic Token
	Operands []Token
}

// A single encoded machine word
type Word uint16

func (w Word) Binary() string {
	return encoding.FormatBinary(uint16(w), WORD_BITS)
}

func (w Word) Hex() string {
	return encoding.FormatHex(uint16(w))
}

func (w Word) String() string {
	return w.Hex()
}

type TokenError interface {
	GetPosition() Cursor
}

type UnknownInstructionError struct {
	Position Cursor
	Received string
}

func (err *UnknownInstructionError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownInstructionError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown instruction '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownRegisterError struct {
	Position Cursor
	Field    string
	Received string
}

func (err *UnknownRegisterError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownRegisterError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown register '%s' for field %s\n\twant:$r0-$r7\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Field,
		err.Received,
	)
}

type MalformedImmediateError struct {
	Position Cursor
	Received string
}

func (err *MalformedImmediateError) GetPosition() Cursor {
	return err.Position
}

func (err *MalformedImmediateError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid immediate '%s' for field imm\n\twant:base-10 integer\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Received,
	)
}

type ImmediateOverflowError struct {
	Position Cursor
	Required int64
	Received int64
}

func (err *ImmediateOverflowError) GetPosition() Cursor {
	return err.Position
}

func (err *ImmediateOverflowError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Immediate exceeds allowed size for field imm\n\twant:0-%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type OperandCountError struct {
	Position Cursor
	Mnemonic string
	Required int
	Received int
}

func (err *OperandCountError) GetPosition() Cursor {
	return err.Position
}

func (err *OperandCountError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid number of operands for '%s'\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Mnemonic,
		err.Required,
		err.Received,
	)
}
