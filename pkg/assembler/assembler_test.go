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
	"bytes"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garretthagen21/COE1541-Project-1/pkg/assembler"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

var _ = Describe("AssembleSource", func() {
	var (
		output *bytes.Buffer
	)

	BeforeEach(func() {
		output = new(bytes.Buffer)
	})

	It("should write only the header for comment-only input", func() {
		source := "# nothing to see\n\n   \n#add $r1, $r2\n"

		records, err := assembler.AssembleSource(
			strings.NewReader(source), output, nil,
		)

		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(BeEmpty())
		Expect(output.String()).To(Equal("v2.0 raw\n"))
	})

	It("should write the header for empty input", func() {
		_, err := assembler.AssembleSource(strings.NewReader(""), output, nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(output.String()).To(Equal("v2.0 raw\n"))
	})

	It("should emit one word per instruction in source order", func() {
		source := strings.Join([]string{
			"# sum two registers",
			"addi $r0, 5",
			"",
			"add $r1, $r2",
			"addui $r3, 255 # trailing comment",
			"put $r2",
			"halt",
		}, "\n")

		records, err := assembler.AssembleSource(
			strings.NewReader(source), output, nil,
		)

		Expect(err).ToNot(HaveOccurred())
		Expect(output.String()).To(Equal(
			"v2.0 raw\n1005\n0280\n17FF\nF400\n7000\n",
		))
		Expect(records).To(HaveLen(5))
		Expect(records[0].Line).To(Equal(2))
		Expect(records[1].Line).To(Equal(4))
		Expect(records[2].Source).To(Equal("addui $r3, 255 # trailing comment"))
		Expect(records[4].Word.Binary()).To(Equal("0111000000000000"))
	})

	It("should accept CRLF line endings", func() {
		_, err := assembler.AssembleSource(
			strings.NewReader("add $r1, $r2\r\nhalt\r\n"), output, nil,
		)

		Expect(err).ToNot(HaveOccurred())
		Expect(output.String()).To(Equal("v2.0 raw\n0280\n7000\n"))
	})

	It("should notify the observer for every encoded line", func() {
		var seen []string

		opts := &assembler.Options{
			Observer: func(record *assembler.Record) {
				seen = append(seen, record.Parsed.Mnemonic.Value+"="+record.Word.Hex())
			},
		}

		_, err := assembler.AssembleSource(
			strings.NewReader("lw $r1, $r2\nsw $r1, $r2\n"), output, opts,
		)

		Expect(err).ToNot(HaveOccurred())
		Expect(seen).To(Equal([]string{"lw=6280", "sw=6281"}))
	})

	It("should abort on the first bad line without writing", func() {
		source := "add $r1, $r2\n\naddi $r1, 300\nsub $r1, $r2\n"

		records, err := assembler.AssembleSource(
			strings.NewReader(source), output, nil,
		)

		Expect(records).To(BeNil())
		Expect(output.Len()).To(BeZero())

		var overflow *assembler.ImmediateOverflowError
		Expect(errors.As(err, &overflow)).To(BeTrue())
		Expect(overflow.Position).To(Equal(
			assembler.Cursor{Line: 3, Column: 11, Size: 3},
		))
		Expect(overflow.Error()).To(HavePrefix("03:11: "))
	})

	It("should report unknown instructions with their position", func() {
		_, err := assembler.AssembleSource(
			strings.NewReader("\n\n  jmp $r1\n"), output, nil,
		)

		var tokenErr assembler.TokenError
		Expect(errors.As(err, &tokenErr)).To(BeTrue())
		Expect(tokenErr.GetPosition()).To(Equal(
			assembler.Cursor{Line: 3, Column: 3, Size: 3},
		))
		Expect(err).To(MatchError(ContainSubstring("Unknown instruction 'jmp'")))
	})

	It("should wrap read failures", func() {
		_, err := assembler.AssembleSource(failingReader{}, output, nil)

		Expect(err).To(MatchError(io.ErrUnexpectedEOF))
		Expect(err.Error()).To(HavePrefix("reading source"))

		var tokenErr assembler.TokenError
		Expect(errors.As(err, &tokenErr)).To(BeFalse())
	})

	It("should wrap write failures", func() {
		_, err := assembler.AssembleSource(
			strings.NewReader("halt\n"), failingWriter{}, nil,
		)

		Expect(err).To(MatchError(io.ErrShortWrite))
	})
})

var _ = Describe("Word", func() {
	DescribeTable("renders fixed width binary and hex",
		func(word assembler.Word, binary, hex string) {
			Expect(word.Binary()).To(Equal(binary))
			Expect(word.Hex()).To(Equal(hex))
		},
		Entry("zero", assembler.Word(0), "0000000000000000", "0000"),
		Entry("add", assembler.Word(0x0280), "0000001010000000", "0280"),
		Entry("all ones", assembler.Word(0xFFFF), "1111111111111111", "FFFF"),
	)
})
