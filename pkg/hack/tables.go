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

// Comparison identifies one of the 28 computations supported by the ALU.
type Comparison uint8

// Comparisons not involving M (the "a" bit is zero).
const (
	COMP_ZERO Comparison = iota
	COMP_ONE
	COMP_MINUS_ONE
	COMP_D
	COMP_A
	COMP_NOT_D
	COMP_NOT_A
	COMP_MINUS_D
	COMP_MINUS_A
	COMP_D_PLUS_ONE
	COMP_A_PLUS_ONE
	COMP_D_MINUS_ONE
	COMP_A_MINUS_ONE
	COMP_D_PLUS_A
	COMP_D_MINUS_A
	COMP_A_MINUS_D
	COMP_D_AND_A
	COMP_D_OR_A
	// Comparisons reading M (the "a" bit is one).
	COMP_M
	COMP_NOT_M
	COMP_MINUS_M
	COMP_M_PLUS_ONE
	COMP_M_MINUS_ONE
	COMP_D_PLUS_M
	COMP_D_MINUS_M
	COMP_M_MINUS_D
	COMP_D_AND_M
	COMP_D_OR_M
)

type tableEntry struct {
	mnemonic string
	code     uint16
}

// Indexed by Comparison.
var comparisons = [...]tableEntry{
	{"0", 0b0101010},
	{"1", 0b0111111},
	{"-1", 0b0111010},
	{"D", 0b0001100},
	{"A", 0b0110000},
	{"!D", 0b0001101},
	{"!A", 0b0110001},
	{"-D", 0b0001111},
	{"-A", 0b0110011},
	{"D+1", 0b0011111},
	{"A+1", 0b0110111},
	{"D-1", 0b0001110},
	{"A-1", 0b0110010},
	{"D+A", 0b0000010},
	{"D-A", 0b0010011},
	{"A-D", 0b0000111},
	{"D&A", 0b0000000},
	{"D|A", 0b0010101},
	{"M", 0b1110000},
	{"!M", 0b1110001},
	{"-M", 0b1110011},
	{"M+1", 0b1110111},
	{"M-1", 0b1110010},
	{"D+M", 0b1000010},
	{"D-M", 0b1010011},
	{"M-D", 0b1000111},
	{"D&M", 0b1000000},
	{"D|M", 0b1010101},
}

// NUM_COMPARISONS is the number of distinct comparisons.
const NUM_COMPARISONS = len(comparisons)

// ParseComparison looks up a comparison by its mnemonic.
func ParseComparison(mnemonic string) (Comparison, bool) {
	for i, c := range comparisons {
		if c.mnemonic == mnemonic {
			return Comparison(i), true
		}
	}
	//
	return 0, false
}

// Code returns the 7-bit encoding of this comparison, including the "a" bit.
func (c Comparison) Code() uint16 {
	return comparisons[c].code
}

// ReadsMemory indicates whether this comparison reads M (i.e. the "a" bit is
// set).
func (c Comparison) ReadsMemory() bool {
	return c >= COMP_M
}

func (c Comparison) String() string {
	return comparisons[c].mnemonic
}

// Destination is a set of target registers.  Its value coincides with its
// 3-bit encoding: A is the high bit, D the middle bit and M the low bit.
type Destination uint8

// DEST_NULL stores the result nowhere.
const DEST_NULL Destination = 0

// DEST_M stores the result in RAM[A].
const DEST_M Destination = 0b001

// DEST_D stores the result in D.
const DEST_D Destination = 0b010

// DEST_DM stores the result in D and RAM[A].
const DEST_DM Destination = DEST_D | DEST_M

// DEST_A stores the result in A.
const DEST_A Destination = 0b100

// DEST_AM stores the result in A and RAM[A].
const DEST_AM Destination = DEST_A | DEST_M

// DEST_AD stores the result in A and D.
const DEST_AD Destination = DEST_A | DEST_D

// DEST_ADM stores the result in all three registers.
const DEST_ADM Destination = DEST_A | DEST_D | DEST_M

// Canonical mnemonics indexed by Destination.
var destinations = [...]string{"null", "M", "D", "DM", "A", "AM", "AD", "ADM"}

// Commutative spellings which are accepted in addition to the canonical ones.
var destinationAliases = map[string]Destination{
	"MD": DEST_DM,
	"DA": DEST_AD,
}

// ParseDestination looks up a destination by its mnemonic.  Only the
// canonical forms and the aliases "MD" and "DA" are recognised.  The empty
// destination has no written form (i.e. "null" is not accepted).
func ParseDestination(mnemonic string) (Destination, bool) {
	for i := DEST_M; i <= DEST_ADM; i++ {
		if destinations[i] == mnemonic {
			return i, true
		}
	}
	//
	d, ok := destinationAliases[mnemonic]
	//
	return d, ok
}

// Code returns the 3-bit encoding of this destination.
func (d Destination) Code() uint16 {
	return uint16(d)
}

func (d Destination) String() string {
	return destinations[d]
}

// Jump identifies a branch condition, based on the result of the comparison.
type Jump uint8

// Jump conditions, whose values coincide with their 3-bit encodings.
const (
	JUMP_NULL Jump = iota
	JUMP_JGT
	JUMP_JEQ
	JUMP_JGE
	JUMP_JLT
	JUMP_JNE
	JUMP_JLE
	JUMP_JMP
)

var jumps = [...]string{"null", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

// ParseJump looks up a jump condition by its mnemonic.  As for destinations,
// "null" is not accepted.
func ParseJump(mnemonic string) (Jump, bool) {
	for i := JUMP_JGT; i <= JUMP_JMP; i++ {
		if jumps[i] == mnemonic {
			return i, true
		}
	}
	//
	return 0, false
}

// Code returns the 3-bit encoding of this jump.
func (j Jump) Code() uint16 {
	return uint16(j)
}

func (j Jump) String() string {
	return jumps[j]
}
