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

// Indexed by InstructionType. Read-only after package initialization.
var instructionSet = [instructionCount]InstructionSpec{
	// add  |0000    |rs   |rt   |0|0000   |0| Register addition
	INSTRUCTION_ADD: {
		Mnemonic: "add", Format: FORMAT_R,
		Opcode: 0b0000, Subop: 0, Operands: 2,
	},
	// mult |0010    |rs   |rt   |0|0000   |0| Register multiply
	INSTRUCTION_MULT: {
		Mnemonic: "mult", Format: FORMAT_R,
		Opcode: 0b0010, Subop: 0, Operands: 2,
	},
	// lw   |0110    |rs   |rt   |0|0000   |0| Load word
	INSTRUCTION_LW: {
		Mnemonic: "lw", Format: FORMAT_R,
		Opcode: 0b0110, Subop: 0, Operands: 2,
	},
	// sw   |0110    |rs   |rt   |0|0000   |1| Store word
	INSTRUCTION_SW: {
		Mnemonic: "sw", Format: FORMAT_R,
		Opcode: 0b0110, Subop: 1, Operands: 2,
	},
	// halt |0111    |000  |000  |0|0000   |0| Stop the machine
	INSTRUCTION_HALT: {
		Mnemonic: "halt", Format: FORMAT_R,
		Opcode: 0b0111, Subop: 0, Operands: 0,
	},
	// addi |0001    |rs   |0|imm8           | Immediate addition
	INSTRUCTION_ADDI: {
		Mnemonic: "addi", Format: FORMAT_I,
		Opcode: 0b0001, Operands: 2,
	},
	// addui|0001    |rs   |1|imm8           | Unsigned immediate addition
	INSTRUCTION_ADDUI: {
		Mnemonic: "addui", Format: FORMAT_I,
		Opcode: 0b0001, Operands: 2, Unsigned: true,
	},
	// bz   |1000    |rs   |0|imm8           | Branch if zero
	INSTRUCTION_BZ: {
		Mnemonic: "bz", Format: FORMAT_I,
		Opcode: 0b1000, Operands: 2,
	},
	// bp   |1010    |rs   |0|imm8           | Branch if positive
	INSTRUCTION_BP: {
		Mnemonic: "bp", Format: FORMAT_I,
		Opcode: 0b1010, Operands: 2,
	},
	// put  |1111    |rs   |0|00000000       | Output register
	INSTRUCTION_PUT: {
		Mnemonic: "put", Format: FORMAT_I,
		Opcode: 0b1111, Operands: 1,
	},
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
}

var registerSet = [1 << FIELD_REGISTER]string{
	"$r0", "$r1", "$r2", "$r3", "$r4", "$r5", "$r6", "$r7",
}

func init() {
	for i := range instructionSet {
		instructionSet[i].Type = InstructionType(i)
	}
}

func parseInstruction(ident string) InstructionType {
	switch ident {
	case "add":
		return INSTRUCTION_ADD
	case "mult":
		return INSTRUCTION_MULT
	case "lw":
		return INSTRUCTION_LW
	case "sw":
		return INSTRUCTION_SW
	case "halt":
		return INSTRUCTION_HALT
	case "addi":
		return INSTRUCTION_ADDI
	case "addui":
		return INSTRUCTION_ADDUI
	case "bz":
		return INSTRUCTION_BZ
	case "bp":
		return INSTRUCTION_BP
	case "put":
		return INSTRUCTION_PUT
	}

	return INSTRUCTION_INVALID
}

func parseRegister(ident string) (uint16, bool) {
	for code, name := range registerSet {
		if ident == name {
			return uint16(code), true
		}
	}

	return 0, false
}

// LookupInstruction resolves a mnemonic to its encoding specification.
func LookupInstruction(mnemonic string) (InstructionSpec, error) {
	if instruction := parseInstruction(mnemonic); instruction != INSTRUCTION_INVALID {
		return instructionSet[instruction], nil
	}

	return InstructionSpec{}, &UnknownInstructionError{Received: mnemonic}
}

// LookupRegister resolves a register token such as "$r3" to its 3-bit code.
func LookupRegister(token string) (uint16, error) {
	if code, ok := parseRegister(token); ok {
		return code, nil
	}

	return 0, &UnknownRegisterError{Received: token}
}

// Instructions returns every supported instruction in opcode table order.
func Instructions() []InstructionSpec {
	specs := make([]InstructionSpec, 0, len(instructionSet)-1)

	for _, spec := range instructionSet[INSTRUCTION_INVALID+1:] {
		specs = append(specs, spec)
	}

	return specs
}

// Registers returns the register names indexed by register code.
func Registers() []string {
	return append([]string(nil), registerSet[:]...)
}
