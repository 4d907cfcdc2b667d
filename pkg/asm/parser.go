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
package asm

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/consensys/go-hack/pkg/hack"
	"github.com/consensys/go-hack/pkg/util/source"
	"github.com/consensys/go-hack/pkg/util/source/lex"
)

// PreInstruction is an instruction as it appears in the source file, before
// symbols have been resolved.  This is either a label declaration (*Label), an
// A-instruction whose operand may be symbolic (*Load), or a C-instruction
// (*Compute).
type PreInstruction interface {
	fmt.Stringer
}

// Label declares a name bound to the ROM address of the next executable
// instruction.  Labels occupy no space in the final program.
type Label struct {
	Name string
}

func (p *Label) String() string {
	return fmt.Sprintf("(%s)", p.Name)
}

// Load is an A-instruction whose operand is either a numeric constant or a
// symbol which has yet to be resolved.
type Load struct {
	// Symbol is the name being loaded, or empty for a constant.
	Symbol string
	// Constant is the value being loaded (when not symbolic).
	Constant uint16
}

// IsSymbolic checks whether this loads a symbol, rather than a constant.
func (p *Load) IsSymbolic() bool {
	return p.Symbol != ""
}

func (p *Load) String() string {
	if p.IsSymbolic() {
		return fmt.Sprintf("@%s", p.Symbol)
	}
	//
	return fmt.Sprintf("@%d", p.Constant)
}

// Compute is a C-instruction.  These contain no symbols, hence are identical
// before and after resolution.
type Compute struct {
	hack.CInstruction
}

// Symbols begin with a letter or one of "_.$:"
var symbolStart lex.Scanner[rune] = lex.Or(
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'),
	lex.Unit('_'),
	lex.Unit('.'),
	lex.Unit('$'),
	lex.Unit(':'))

// ... and may continue with digits as well.
var symbolRest lex.Scanner[rune] = lex.Many(lex.Or(symbolStart, lex.Within('0', '9')))

var symbol lex.Scanner[rune] = lex.And(symbolStart, symbolRest)

var constant lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// ============================================================================
// Parser
// ============================================================================

// Parser turns the statements of a Hack assembly file into pre-instructions.
// Every pre-instruction produced is recorded in the parser's source map, so
// that it can be traced back to the line it came from.
type Parser struct {
	srcfile *source.File
	// Source mapping
	srcmap *source.Map[PreInstruction]
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	srcmap := source.NewSourceMap[PreInstruction](srcfile)
	//
	return &Parser{srcfile, srcmap}
}

// SourceMap returns the mapping from each pre-instruction parsed so far back to
// its statement in the source file.
func (p *Parser) SourceMap() *source.Map[PreInstruction] {
	return p.srcmap
}

// Parse all statements in the source file, stopping at the first error.
func (p *Parser) Parse() ([]PreInstruction, *Error) {
	var code []PreInstruction
	//
	statements, err := Statements(p.srcfile)
	if err != nil {
		return nil, err
	}
	//
	for _, stmt := range statements {
		insn, err := p.ParseStatement(stmt)
		if err != nil {
			return nil, err
		}
		//
		code = append(code, insn)
	}
	//
	return code, nil
}

// ParseStatement parses a single (trimmed, non-empty) statement.  The forms
// are tried in order: label declaration, A-instruction, C-instruction.  Hence,
// anything which is not a complete label (e.g. "(LOOP") is parsed as a
// C-instruction.
func (p *Parser) ParseStatement(span source.Span) (PreInstruction, *Error) {
	var (
		insn PreInstruction
		err  *Error
		text = p.runes(span)
	)
	//
	switch {
	case len(text) >= 2 && text[0] == '(' && text[len(text)-1] == ')':
		insn, err = p.parseLabel(span)
	case len(text) >= 1 && text[0] == '@':
		insn, err = p.parseLoad(span)
	default:
		insn, err = p.parseCompute(span)
	}
	//
	if err != nil {
		return nil, err
	}
	// Record for diagnostics
	p.srcmap.Put(insn, span)
	//
	return insn, nil
}

func (p *Parser) parseLabel(span source.Span) (PreInstruction, *Error) {
	name, err := p.parseSymbol(span.Slice(1, span.Length()-1))
	if err != nil {
		return nil, err
	}
	//
	return &Label{name}, nil
}

func (p *Parser) parseLoad(span source.Span) (PreInstruction, *Error) {
	var (
		operand = span.Slice(1, span.Length())
		text    = p.runes(operand)
	)
	// Constants are entirely numeric
	if lex.Matches(constant, text) {
		value, err := strconv.ParseUint(string(text), 10, 64)
		//
		if err != nil || value > hack.MAX_ADDRESS {
			return nil, newError(INVALID_INSTRUCTION, p.srcfile, span)
		}
		//
		return &Load{"", uint16(value)}, nil
	}
	//
	name, err := p.parseSymbol(operand)
	if err != nil {
		return nil, err
	}
	//
	return &Load{name, 0}, nil
}

// Parse a C-instruction of the form "dest=comp;jump", where both "dest=" and
// ";jump" are optional.
func (p *Parser) parseCompute(span source.Span) (PreInstruction, *Error) {
	var (
		insn   = hack.CInstruction{Dest: hack.DEST_NULL, Jump: hack.JUMP_NULL}
		rest   = p.runes(span)
		offset = 0
		ok     bool
	)
	// Optional destination, up to the first '='
	if i := slices.Index(rest, '='); i >= 0 {
		if insn.Dest, ok = hack.ParseDestination(string(rest[:i])); !ok {
			return nil, newError(INVALID_DESTINATION, p.srcfile, span.Slice(0, i))
		}
		//
		rest, offset = rest[i+1:], i+1
	}
	// Optional jump, after the first ';'
	if i := slices.Index(rest, ';'); i >= 0 {
		if insn.Jump, ok = hack.ParseJump(string(rest[i+1:])); !ok {
			return nil, newError(INVALID_JUMP, p.srcfile, span.Slice(offset+i+1, offset+len(rest)))
		}
		//
		rest = rest[:i]
	}
	// Mandatory comparison
	if insn.Comp, ok = hack.ParseComparison(string(rest)); !ok {
		return nil, newError(INVALID_COMPARISON, p.srcfile, span.Slice(offset, offset+len(rest)))
	}
	//
	return &Compute{insn}, nil
}

func (p *Parser) parseSymbol(span source.Span) (string, *Error) {
	text := p.runes(span)
	//
	if !lex.Matches(symbol, text) {
		return "", newError(INVALID_SYMBOL, p.srcfile, span)
	}
	//
	return string(text), nil
}

func (p *Parser) runes(span source.Span) []rune {
	return p.srcfile.Contents()[span.Start():span.End()]
}
