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
package hack

import "fmt"

// ADDRESS_BITS is the width of an address loaded by an A-instruction.
const ADDRESS_BITS = 15

// MAX_ADDRESS is the largest value which can be loaded by an A-instruction.
const MAX_ADDRESS = 1<<ADDRESS_BITS - 1

// WORD_BITS is the width of a single machine word.
const WORD_BITS = 16

// Instruction represents a fully resolved Hack instruction, which is either an
// A-instruction or a C-instruction.  Every instruction encodes to exactly one
// 16-bit machine word.
type Instruction interface {
	fmt.Stringer
	// Word returns the 16-bit machine encoding of this instruction.
	Word() uint16
}

// AInstruction loads a 15-bit constant into the A register.
type AInstruction struct {
	Address uint16
}

// NewAInstruction constructs an A-instruction for a given address, which must
// fit within 15 bits.
func NewAInstruction(address uint16) AInstruction {
	if address > MAX_ADDRESS {
		panic(fmt.Sprintf("address %d exceeds %d bits", address, ADDRESS_BITS))
	}
	//
	return AInstruction{address}
}

// Word implementation for the Instruction interface.  The most significant bit
// is always zero.
func (p AInstruction) Word() uint16 {
	return p.Address & MAX_ADDRESS
}

func (p AInstruction) String() string {
	return fmt.Sprintf("@%d", p.Address)
}

// CInstruction computes a value using the ALU, stores it in zero or more
// registers and, optionally, branches.
type CInstruction struct {
	Dest Destination
	Comp Comparison
	Jump Jump
}

// Word implementation for the Instruction interface.  The layout is "111"
// followed by the comparison (7 bits), destination (3 bits) and jump (3 bits).
func (p CInstruction) Word() uint16 {
	return 0b111<<13 | p.Comp.Code()<<6 | p.Dest.Code()<<3 | p.Jump.Code()
}

func (p CInstruction) String() string {
	text := p.Comp.String()
	//
	if p.Dest != DEST_NULL {
		text = fmt.Sprintf("%s=%s", p.Dest.String(), text)
	}
	//
	if p.Jump != JUMP_NULL {
		text = fmt.Sprintf("%s;%s", text, p.Jump.String())
	}
	//
	return text
}

// Encode renders an instruction as a string of sixteen binary digits, most
// significant bit first.
func Encode(insn Instruction) string {
	return fmt.Sprintf("%016b", insn.Word())
}
