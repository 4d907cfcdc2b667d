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
package lex

import (
	"testing"

	"github.com/consensys/go-hack/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func TestLexer_Empty(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, source.NewSpan(0, 0)})
}

func TestLexer_Word(t *testing.T) {
	checkLexer(t, "D=M",
		0,
		Token{WORD, source.NewSpan(0, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_Spaces(t *testing.T) {
	checkLexer(t, "  @5 ",
		0,
		Token{SPACE, source.NewSpan(0, 2)},
		Token{WORD, source.NewSpan(2, 4)},
		Token{SPACE, source.NewSpan(4, 5)},
		Token{END_OF, source.NewSpan(5, 5)})
}

func TestLexer_Comment(t *testing.T) {
	checkLexer(t, "0;JMP// loop",
		0,
		Token{WORD, source.NewSpan(0, 5)},
		Token{COMMENT, source.NewSpan(5, 12)},
		Token{END_OF, source.NewSpan(12, 12)})
}

func TestLexer_SingleSlash(t *testing.T) {
	checkLexer(t, "A/D",
		0,
		Token{WORD, source.NewSpan(0, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_Unmatched(t *testing.T) {
	// no rule accepts a digit here
	lexer := NewLexer([]rune("1"), Rule(Unit('x'), WORD))
	assert.Empty(t, lexer.Collect())
	assert.Equal(t, uint(1), lexer.Remaining())
}

func TestScanner_Matches(t *testing.T) {
	digits := Many(Within('0', '9'))
	assert.True(t, Matches(digits, []rune("0123")))
	assert.False(t, Matches(digits, []rune("12a")))
	assert.False(t, Matches(digits, []rune("")))
}

func TestScanner_And(t *testing.T) {
	ident := And(Within('a', 'z'), Many(Or(Within('a', 'z'), Within('0', '9'))))
	assert.Equal(t, uint(4), ident([]rune("ab12-")))
	assert.Equal(t, uint(0), ident([]rune("1ab")))
}

func TestScanner_Until(t *testing.T) {
	assert.Equal(t, uint(3), Until('\n')([]rune("abc\ndef")))
	assert.Equal(t, uint(3), Until('\n')([]rune("abc")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const SPACE uint = 1
const COMMENT uint = 2
const WORD uint = 3

var space Scanner[rune] = Many(Or(Unit(' '), Unit('\t')))

var comment Scanner[rune] = And(String("//"), Until('\n'))

var word Scanner[rune] = Many(Except(Not(' ', '\t', '\n'), String("//")))

var rules = []LexRule[rune]{
	Rule(comment, COMMENT),
	Rule(space, SPACE),
	Rule(word, WORD),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	lexer := NewLexer(items, rules...)
	tokens := lexer.Collect()
	//
	assert.Equal(t, expected, tokens)
	assert.Equal(t, remainder, lexer.Remaining())
}
