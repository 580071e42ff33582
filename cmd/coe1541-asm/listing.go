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

package main

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/garretthagen21/COE1541-Project-1/pkg/assembler"
	"github.com/garretthagen21/COE1541-Project-1/pkg/encoding"
)

func writeListing(w io.Writer, records []assembler.Record) {
	listing := table.NewWriter()
	listing.SetOutputMirror(w)
	listing.AppendHeader(table.Row{"Line", "Source", "Binary", "Hex"})

	for i := range records {
		listing.AppendRow(table.Row{
			records[i].Line,
			strings.TrimSpace(records[i].Source),
			records[i].Word.Binary(),
			records[i].Word.Hex(),
		})
	}

	listing.AppendFooter(table.Row{"", "Words", len(records), ""})
	listing.Render()
}

func writeInstructionSet(w io.Writer) {
	instructions := table.NewWriter()
	instructions.SetOutputMirror(w)
	instructions.SetTitle("Instructions")
	instructions.AppendHeader(table.Row{
		"Mnemonic", "Format", "Opcode", "Subop", "Operands", "Unsigned",
	})

	for _, spec := range assembler.Instructions() {
		subop := "-"
		unsigned := "-"

		switch spec.Format {
		case assembler.FORMAT_R:
			subop = encoding.FormatBinary(spec.Subop, assembler.FIELD_SUBOP)
		case assembler.FORMAT_I:
			unsigned = "0"

			if spec.Unsigned {
				unsigned = "1"
			}
		}

		instructions.AppendRow(table.Row{
			spec.Mnemonic,
			spec.Format,
			encoding.FormatBinary(spec.Opcode, assembler.FIELD_OPCODE),
			subop,
			spec.Operands,
			unsigned,
		})
	}

	instructions.Render()

	registers := table.NewWriter()
	registers.SetOutputMirror(w)
	registers.SetTitle("Registers")
	registers.AppendHeader(table.Row{"Register", "Code"})

	for code, name := range assembler.Registers() {
		registers.AppendRow(table.Row{
			name,
			encoding.FormatBinary(uint16(code), assembler.FIELD_REGISTER),
		})
	}

	registers.Render()
}
