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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/garretthagen21/COE1541-Project-1/pkg/assembler"
)

type diagnostics struct {
	Output io.Writer
	Prefix string
	Color  bool
}

func (d *diagnostics) bold(s string) string {
	if d.Color {
		return "\033[1m" + s + "\033[0m"
	}

	return s
}

func (d *diagnostics) red(s string) string {
	if d.Color {
		return "\033[31m" + s + "\033[0m"
	}

	return s
}

// Marks the token at cursor with "^~~". Tabs before the token are kept so the
// marker lines up with the echoed line in a terminal.
func underline(line string, cursor assembler.Cursor) string {
	var builder strings.Builder

	size := cursor.Size

	if size < 1 {
		size = 1
	}

	prefix := cursor.Column - 1

	if prefix < 0 {
		prefix = 0
	}

	var overflow int

	if prefix > len(line) {
		overflow = prefix - len(line)
		prefix = len(line)
	}

	for _, char := range line[:prefix] {
		if char == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}

	builder.WriteString(strings.Repeat(" ", overflow))
	builder.WriteString("^" + strings.Repeat("~", size-1))

	return builder.String()
}

// Reports err. When err carries a source position, line is echoed beneath
// the message with the offending token underlined.
func (d *diagnostics) report(err error, line string) {
	prefix := d.bold(d.Prefix + ":")

	var tokenErr assembler.TokenError

	if !errors.As(err, &tokenErr) {
		fmt.Fprintln(d.Output, prefix+" "+err.Error())
		return
	}

	fmt.Fprintf(
		d.Output,
		"%s%s\n%s\n%s\n",
		prefix,
		err,
		line,
		d.red(underline(line, tokenErr.GetPosition())),
	)
}

func (d *diagnostics) reportSource(err error, source []string) {
	var tokenErr assembler.TokenError
	var line string

	if errors.As(err, &tokenErr) {
		if n := tokenErr.GetPosition().Line; n >= 1 && n <= len(source) {
			line = source[n-1]
		}
	}

	d.report(err, line)
}
