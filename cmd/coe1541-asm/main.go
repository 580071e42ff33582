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
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/xerrors"

	"github.com/garretthagen21/COE1541-Project-1/pkg/assembler"
)

const (
	COLOR_AUTO   = "auto"
	COLOR_ALWAYS = "always"
	COLOR_NEVER  = "never"
)

const STDIN_NAME = "-"

const OUTPUT_SUFFIX = "-compiled.txt"

// Returned by commands that already reported their own diagnostics
var errFailed = errors.New("assembly failed")

type options struct {
	out     string
	listing bool
	trace   bool
	color   string
}

func init() {
	flag.Set("logtostderr", "true")
}

func outputPath(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + OUTPUT_SUFFIX
}

func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case COLOR_ALWAYS:
		return true, nil
	case COLOR_NEVER:
		return false, nil
	case COLOR_AUTO:
		if file, ok := w.(*os.File); ok {
			return isTerminal(int(file.Fd())), nil
		}

		return false, nil
	}

	return false, fmt.Errorf(
		"invalid --color %q, want %s, %s, or %s",
		mode, COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER,
	)
}

func splitLines(source []byte) []string {
	lines := strings.Split(string(source), "\n")

	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}

func assemble(cmd *cobra.Command, opts *options, filename string) error {
	color, err := colorEnabled(opts.color, cmd.ErrOrStderr())

	if err != nil {
		return err
	}

	diag := &diagnostics{
		Output: cmd.ErrOrStderr(),
		Prefix: filepath.Base(filename),
		Color:  color,
	}

	var source []byte

	if filename == STDIN_NAME {
		diag.Prefix = "<stdin>"
		source, err = io.ReadAll(cmd.InOrStdin())
	} else {
		source, err = os.ReadFile(filename)
	}

	if err != nil {
		diag.report(xerrors.Errorf("reading %s: %w", filename, err), "")
		return errFailed
	}

	outfile := opts.out

	if outfile == "" && filename != STDIN_NAME {
		outfile = outputPath(filename)
	}

	if outfile == "" {
		glog.Infof("Compiling %s to <stdout>...", diag.Prefix)
	} else {
		glog.Infof("Compiling %s to %s...", diag.Prefix, outfile)
	}

	printer := pp.New()
	printer.SetColoringEnabled(color)

	observer := func(record *assembler.Record) {
		glog.V(1).Infof(
			"Instruction: %s\n\tBinary: %s\n\tHex: %s",
			strings.TrimSpace(record.Source),
			record.Word.Binary(),
			record.Word.Hex(),
		)

		if opts.trace {
			printer.Fprintln(cmd.ErrOrStderr(), record.Parsed)
		}
	}

	var image bytes.Buffer

	records, err := assembler.AssembleSource(
		bytes.NewReader(source), &image,
		&assembler.Options{Observer: observer},
	)

	if err != nil {
		diag.reportSource(err, splitLines(source))
		return errFailed
	}

	listing := cmd.OutOrStdout()

	if outfile == "" {
		listing = cmd.ErrOrStderr()
		_, err = cmd.OutOrStdout().Write(image.Bytes())
	} else {
		err = os.WriteFile(outfile, image.Bytes(), 0666)
	}

	if err != nil {
		diag.report(xerrors.Errorf("writing output file: %w", err), "")
		return errFailed
	}

	if opts.listing {
		writeListing(listing, records)
	}

	glog.Infof("Done, %d words", len(records))

	return nil
}

func encodeLines(cmd *cobra.Command, opts *options, lines []string) error {
	color, err := colorEnabled(opts.color, cmd.ErrOrStderr())

	if err != nil {
		return err
	}

	diag := &diagnostics{Output: cmd.ErrOrStderr(), Color: color}

	for i, line := range lines {
		hex, err := assembler.Encode(line)

		if err != nil {
			diag.Prefix = fmt.Sprintf("<arg %d>", i+1)
			diag.report(err, line)
			return errFailed
		}

		fmt.Fprintln(cmd.OutOrStdout(), hex)
	}

	return nil
}

func newRootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "coe1541-asm [flags] filename",
		Short: "Assembles COE1541 source into a raw hex memory image",
		Long: `coe1541-asm translates one instruction per line into 16-bit machine
words and writes them as a "v2.0 raw" image, one 4-digit hex word per line.
Blank lines and '#' comments are skipped. The output file name replaces the
input extension with "-compiled.txt" unless --out is given. Use "-" to read
from stdin and write the image to stdout.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return assemble(cmd, &opts, args[0])
		},
	}

	root.Flags().StringVarP(
		&opts.out, "out", "o", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	root.Flags().BoolVar(
		&opts.listing, "listing", false,
		"Prints a table of every assembled line after a successful run",
	)
	root.Flags().BoolVar(
		&opts.trace, "trace", false,
		"Dumps every tokenized instruction to stderr",
	)
	root.PersistentFlags().StringVar(
		&opts.color, "color", COLOR_AUTO,
		"Colors diagnostics: auto, always, or never",
	)
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(&cobra.Command{
		Use:   "isa",
		Short: "Prints the instruction and register tables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writeInstructionSet(cmd.OutOrStdout())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "encode line...",
		Short: "Encodes each argument as one instruction and prints its hex word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return encodeLines(cmd, &opts, args)
		},
	})

	return root
}

func coe1541Asm(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()

	if err == nil {
		return 0
	}

	if errors.Is(err, errFailed) {
		return 1
	}

	fmt.Fprintln(stderr, err)
	fmt.Fprint(stderr, cmd.UsageString())

	return 2
}

func main() {
	atexit.Register(glog.Flush)
	atexit.Exit(coe1541Asm(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
