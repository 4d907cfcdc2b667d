// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-hack/pkg/asm"
	"github.com/consensys/go-hack/pkg/hack"
	"github.com/consensys/go-hack/pkg/util"
	"github.com/consensys/go-hack/pkg/util/source"
	"github.com/consensys/go-hack/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Assemble a given source file, writing the machine code either to stdout or
// to the file given by "--output".
func runAssembleCmd(cmd *cobra.Command, filename string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	var (
		colour    = GetColourMode(cmd)
		output    = GetString(cmd, "output")
		assembler = asm.NewAssembler().WithStrictLabels(GetFlag(cmd, "strict"))
	)
	// Read source file
	stats := util.NewPerfStats()
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(2)
	}
	//
	stats.Log(fmt.Sprintf("reading %s (%d characters)", filename, len(srcfile.Contents())))
	// Assemble it, or print the error
	stats = util.NewPerfStats()
	code, aerr := assembler.Assemble(srcfile)
	if aerr != nil {
		printSyntaxError(os.Stderr, aerr.SyntaxError(), colour.Enabled(os.Stderr))
		atexit.Exit(4)
	}
	//
	stats.Log("assembling")
	// Write machine code
	stats = util.NewPerfStats()
	writer := openOutput(output)
	//
	if err := writeProgram(writer, code); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(2)
	}
	//
	stats.Log(fmt.Sprintf("writing %d words to %s", len(code), outputName(output)))
}

// Open the output file (or stdout) for writing.  Closing the file is deferred
// until exit.
func openOutput(filename string) *bufio.Writer {
	if filename == "" {
		return bufio.NewWriter(os.Stdout)
	}
	//
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(2)
	}
	//
	atexit.Register(func() {
		if err := file.Close(); err != nil {
			log.Errorf("closing %s: %s", filename, err)
		}
	})
	//
	return bufio.NewWriter(file)
}

func outputName(filename string) string {
	if filename == "" {
		return "stdout"
	}
	//
	return filename
}

// Write one line of sixteen binary digits for each instruction.
func writeProgram(writer *bufio.Writer, code []hack.Instruction) error {
	for _, insn := range code {
		if _, err := fmt.Fprintln(writer, hack.Encode(insn)); err != nil {
			return fmt.Errorf("writing machine code: %w", err)
		}
	}
	//
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writing machine code: %w", err)
	}
	//
	return nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(w io.Writer, err *source.SyntaxError, colour bool) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line).  Empty tokens are
	// still given one caret.
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(w, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(w)
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent, retaining tabs so the highlight lines up
	fmt.Fprint(w, indentOf(line.String(), lineOffset))
	// Print highlight
	highlight := strings.Repeat("^", length)
	//
	if colour {
		highlight = termio.NewAnsiEscape().Bold().FgColour(termio.TERM_RED).Wrap(highlight)
	}
	//
	fmt.Fprintln(w, highlight)
}

func indentOf(line string, width int) string {
	var (
		builder strings.Builder
		runes   = []rune(line)
	)
	//
	for i := 0; i < width && i < len(runes); i++ {
		if runes[i] == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	//
	return builder.String()
}
