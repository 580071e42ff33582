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

// Header line expected by the simulator's raw memory image loader
const IMAGE_HEADER = "v2.0 raw"

const COMMENT_PREFIX = "#"

const (
	FORMAT_INVALID FormatType = iota
	FORMAT_R
	FORMAT_I
)

// Field widths, most significant field first
const (
	FIELD_OPCODE   = 4
	FIELD_REGISTER = 3
	FIELD_ZERO     = 1
	FIELD_SHAMT    = 4
	FIELD_SUBOP    = 1
	FIELD_UNSIGNED = 1
	FIELD_IMM8     = 8

	WORD_BITS = 16
)

const (
	INSTRUCTION_INVALID InstructionType = iota

	// R-type
	INSTRUCTION_ADD
	INSTRUCTION_MULT
	INSTRUCTION_LW
	INSTRUCTION_SW
	INSTRUCTION_HALT

	// I-type
	INSTRUCTION_ADDI
	INSTRUCTION_ADDUI
	INSTRUCTION_BZ
	INSTRUCTION_BP
	INSTRUCTION_PUT

	instructionCount
)
