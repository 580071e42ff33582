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

// R    |opcode  |rs   |rt   |0|shamt  |s|
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
//
// Only the low bit of subop is kept. shamt is always zero.
func PackR(opcode, rs, rt, subop uint16) Word {
	var scratch uint16 = 0

	scratch |= opcode & 0xF
	scratch <<= FIELD_REGISTER
	scratch |= rs & 0x7
	scratch <<= FIELD_REGISTER
	scratch |= rt & 0x7
	scratch <<= FIELD_ZERO
	scratch <<= FIELD_SHAMT
	scratch <<= FIELD_SUBOP
	scratch |= subop & 0x1

	return Word(scratch)
}

// I    |opcode  |rs   |u|imm8           |
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func PackI(opcode, rs uint16, unsigned bool, imm uint8) Word {
	var scratch uint16 = 0

	scratch |= opcode & 0xF
	scratch <<= FIELD_REGISTER
	scratch |= rs & 0x7
	scratch <<= FIELD_UNSIGNED

	if unsigned {
		scratch |= 0x1
	}

	scratch <<= FIELD_IMM8
	scratch |= uint16(imm)

	return Word(scratch)
}
