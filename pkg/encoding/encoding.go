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

package encoding

import (
	"fmt"
	"strconv"
	"strings"
)

// Decodes a base-10 string in the formats: 123, +123, -123
func DecodeInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Renders the low bitcount bits of value, most significant bit first
func FormatBinary(value uint16, bitcount uint) string {
	if bitcount == 0 {
		return ""
	}

	if bitcount < 16 {
		value &= (uint16(1) << bitcount) - 1
	}

	s := strconv.FormatUint(uint64(value), 2)

	if pad := int(bitcount) - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}

	return s
}

// Renders a word as four upper-case hex digits
func FormatHex(value uint16) string {
	return fmt.Sprintf("%04X", value)
}

// Reports whether value fits in an unsigned field of bitcount bits
func FitsUnsigned(value int64, bitcount uint) bool {
	return value >= 0 && value < int64(1)<<bitcount
}
