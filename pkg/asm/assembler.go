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
	"github.com/consensys/go-hack/pkg/hack"
	"github.com/consensys/go-hack/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// VARIABLE_BASE is the RAM address of the first variable.
const VARIABLE_BASE uint16 = 16

// MAX_INSTRUCTIONS is the capacity of the instruction ROM.
const MAX_INSTRUCTIONS = hack.MAX_ADDRESS + 1

// Program is the result of the first pass: the pre-instructions of a source
// file (labels included), along with the symbol table holding the reserved
// symbols and every declared label.
type Program struct {
	// Code in source order.
	Code []PreInstruction
	// Symbols bound so far.
	Symbols *SymbolTable
	// Maps each pre-instruction back to its statement.
	SourceMap *source.Map[PreInstruction]
}

// Assembler translates Hack assembly into machine instructions.  It is
// configured by value, in builder style.
type Assembler struct {
	// Reject labels declared more than once.
	strict bool
}

// NewAssembler constructs an assembler with the default configuration, where
// duplicate labels are accepted (the last declaration wins).
func NewAssembler() Assembler {
	return Assembler{false}
}

// WithStrictLabels updates a given configuration to reject (or accept)
// duplicate label declarations.
func (a Assembler) WithStrictLabels(flag bool) Assembler {
	na := a
	na.strict = flag
	//
	return na
}

// Assemble a source file using the default configuration.
func Assemble(srcfile *source.File) ([]hack.Instruction, *Error) {
	return NewAssembler().Assemble(srcfile)
}

// Assemble a source file into a sequence of machine instructions, in source
// order.  The first error encountered aborts assembly.
func (a Assembler) Assemble(srcfile *source.File) ([]hack.Instruction, *Error) {
	program, err := a.FirstPass(srcfile)
	if err != nil {
		return nil, err
	}
	//
	code := a.SecondPass(program)
	//
	log.Debugf("assembled %s into %d words (%d symbols)", srcfile.Filename(), len(code), program.Symbols.Len())
	//
	return code, nil
}

// FirstPass parses every statement of a source file and binds each label to
// the ROM address of the next executable instruction.  Labels occupy no ROM.
// Syntax errors are reported before any error arising from binding labels.
func (a Assembler) FirstPass(srcfile *source.File) (Program, *Error) {
	var (
		parser  = NewParser(srcfile)
		symbols = NewSymbolTable()
		// Labels declared so far
		declared = make(map[string]bool)
		// ROM address of the next executable instruction
		pc uint
	)
	//
	code, err := parser.Parse()
	if err != nil {
		return Program{}, err
	}
	//
	program := Program{code, symbols, parser.SourceMap()}
	//
	for _, insn := range code {
		switch insn := insn.(type) {
		case *Label:
			if a.strict && declared[insn.Name] {
				stmt := program.SourceMap.Get(insn)
				return Program{}, newError(DUPLICATE_LABEL, srcfile, stmt.Slice(1, stmt.Length()-1))
			} else if pc > hack.MAX_ADDRESS {
				// Label would point past the end of ROM
				return Program{}, program.errorAt(INVALID_INSTRUCTION, insn)
			} else if log.IsLevelEnabled(log.DebugLevel) {
				logLabel(program, insn, pc)
			}
			//
			symbols.Bind(insn.Name, uint16(pc))
			declared[insn.Name] = true
		default:
			if pc == MAX_INSTRUCTIONS {
				// Program does not fit in ROM
				return Program{}, program.errorAt(INVALID_INSTRUCTION, insn)
			}
			//
			pc++
		}
	}
	//
	log.Debugf("first pass over %s found %d instructions and %d labels", srcfile.Filename(), pc, len(declared))
	//
	return program, checkVariableCapacity(program)
}

func logLabel(program Program, label *Label, pc uint) {
	line := program.SourceMap.Line(label)
	//
	if IsReserved(label.Name) {
		log.Debugf("line %d: label %s bound to ROM[%d] (overriding reserved symbol)", line, label.Name, pc)
	} else {
		log.Debugf("line %d: label %s bound to ROM[%d]", line, label.Name, pc)
	}
}

// SecondPass resolves every symbolic operand, allocating variables (from
// address 16) to those symbols which are neither reserved nor declared labels.
// Variables are allocated in order of first reference.  This pass cannot fail,
// and the program's symbol table is updated with the allocated variables.
func (a Assembler) SecondPass(program Program) []hack.Instruction {
	var (
		code []hack.Instruction
		// Next variable address
		cursor = VARIABLE_BASE
	)
	//
	for _, insn := range program.Code {
		switch insn := insn.(type) {
		case *Compute:
			code = append(code, insn.CInstruction)
		case *Load:
			address := insn.Constant
			//
			if insn.IsSymbolic() {
				var bound bool
				//
				if address, bound = program.Symbols.Lookup(insn.Symbol); !bound {
					if log.IsLevelEnabled(log.DebugLevel) {
						log.Debugf("line %d: variable %s allocated RAM[%d]", program.SourceMap.Line(insn), insn.Symbol, cursor)
					}
					//
					address = cursor
					program.Symbols.Bind(insn.Symbol, address)
					cursor++
				}
			}
			//
			code = append(code, hack.NewAInstruction(address))
		case *Label:
			// Labels were bound in the first pass
		}
	}
	//
	return code
}

// Check that the variables which the second pass will allocate all fit within
// the address space.  This requires at least 32753 distinct variables, and
// therefore only arises for programs close to the ROM capacity.
func checkVariableCapacity(program Program) *Error {
	var (
		seen   = make(map[string]bool)
		cursor = uint(VARIABLE_BASE)
	)
	//
	for _, insn := range program.Code {
		if load, ok := insn.(*Load); ok && load.IsSymbolic() && !program.Symbols.Has(load.Symbol) && !seen[load.Symbol] {
			if cursor > hack.MAX_ADDRESS {
				return program.errorAt(INVALID_SYMBOL, load)
			}
			//
			seen[load.Symbol] = true
			cursor++
		}
	}
	//
	return nil
}

// Construct an error covering the statement of a given pre-instruction.
func (p Program) errorAt(kind ErrorKind, insn PreInstruction) *Error {
	return newError(kind, p.SourceMap.Source(), p.SourceMap.Get(insn))
}
