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
	"unicode"

	"github.com/consensys/go-hack/pkg/util/source"
	"github.com/consensys/go-hack/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// NEWLINE signals "\n"
const NEWLINE uint = 1

// WHITESPACE signals any whitespace other than "\n" (e.g. spaces, tabs, "\r")
const WHITESPACE uint = 2

// COMMENT signals "// ... \n"
const COMMENT uint = 3

// TEXT signals a run of characters which is neither whitespace nor a comment
const TEXT uint = 4

// A single whitespace character within a line, as classified by
// unicode.IsSpace.
func space(items []rune) uint {
	if len(items) != 0 && items[0] != '\n' && unicode.IsSpace(items[0]) {
		return 1
	}
	//
	return 0
}

// Rule for describing whitespace (within a line)
var whitespace lex.Scanner[rune] = lex.Many(space)

// Any single character which is neither whitespace nor a newline.
var visible lex.Scanner[rune] = lex.Except(lex.Not('\n'), space)

// Comments start with '//' and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.And(lex.String("//"), lex.Until('\n'))

// Text stops at the first whitespace character or at the start of a comment.
var text lex.Scanner[rune] = lex.Many(lex.Except(visible, lex.String("//")))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('\n'), NEWLINE),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(text, TEXT),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of tokens, or an error if some part
// of the file could not be matched.
func Lex(srcfile *source.File) ([]lex.Token, *Error) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		span := source.NewSpan(int(start), int(end))
		//
		return nil, newError(INVALID_INSTRUCTION, srcfile, span)
	}
	//
	return tokens, nil
}

// Statements classifies the lines of a given source file, discarding blank
// lines and comments (including trailing comments).  What remains of each line
// is trimmed of surrounding whitespace and returned as a span.  Whitespace
// within a statement is retained, and left for the parser to reject.
func Statements(srcfile *source.File) ([]source.Span, *Error) {
	var (
		statements []source.Span
		// First and last text tokens on the current line
		first, last *lex.Token
	)
	//
	tokens, err := Lex(srcfile)
	if err != nil {
		return nil, err
	}
	//
	for i := range tokens {
		token := &tokens[i]
		//
		switch token.Kind {
		case TEXT:
			if first == nil {
				first = token
			}
			//
			last = token
		case NEWLINE, END_OF:
			if first != nil {
				statements = append(statements, source.NewSpan(first.Span.Start(), last.Span.End()))
			}
			//
			first, last = nil, nil
		}
	}
	//
	return statements, nil
}
