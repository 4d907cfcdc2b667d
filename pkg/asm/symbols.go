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
)

// Symbol associates a name with an address.
type Symbol struct {
	Name    string
	Address uint16
}

// RESERVED_SYMBOLS are the names bound before any user input is processed.
// These cover the virtual registers, the VM segment pointers and the memory
// mapped I/O devices.
var RESERVED_SYMBOLS = reservedSymbols()

func reservedSymbols() []Symbol {
	var symbols = []Symbol{
		{"SP", 0},
		{"LCL", 1},
		{"ARG", 2},
		{"THIS", 3},
		{"THAT", 4},
	}
	// Virtual registers
	for i := uint16(0); i < 16; i++ {
		symbols = append(symbols, Symbol{fmt.Sprintf("R%d", i), i})
	}
	// I/O devices
	return append(symbols, Symbol{"SCREEN", 16384}, Symbol{"KBD", 24576})
}

// IsReserved checks whether a given name is one of the reserved symbols.
func IsReserved(name string) bool {
	return slices.ContainsFunc(RESERVED_SYMBOLS, func(s Symbol) bool { return s.Name == name })
}

// SymbolTable maps (case-sensitive) names to addresses.  A freshly constructed
// table contains exactly the reserved symbols.
type SymbolTable struct {
	symbols map[string]uint16
}

// NewSymbolTable constructs a symbol table preloaded with the reserved symbols.
func NewSymbolTable() *SymbolTable {
	table := &SymbolTable{make(map[string]uint16)}
	//
	for _, s := range RESERVED_SYMBOLS {
		table.Bind(s.Name, s.Address)
	}
	//
	return table
}

// Bind associates a given name with a given address, overwriting any existing
// binding for that name.
func (p *SymbolTable) Bind(name string, address uint16) {
	p.symbols[name] = address
}

// Lookup returns the address bound to a given name, if any.
func (p *SymbolTable) Lookup(name string) (uint16, bool) {
	address, ok := p.symbols[name]
	return address, ok
}

// Has checks whether a given name is bound.
func (p *SymbolTable) Has(name string) bool {
	_, ok := p.symbols[name]
	return ok
}

// Len returns the number of bound names.
func (p *SymbolTable) Len() uint {
	return uint(len(p.symbols))
}
