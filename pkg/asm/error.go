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

	"github.com/consensys/go-hack/pkg/util/source"
)

// ErrorKind classifies the errors which can arise when assembling a program.
type ErrorKind uint8

const (
	// INVALID_SYMBOL indicates a label or variable name which is malformed.
	INVALID_SYMBOL ErrorKind = iota
	// INVALID_COMPARISON indicates an unknown computation in a C-instruction.
	INVALID_COMPARISON
	// INVALID_DESTINATION indicates an unknown destination in a C-instruction.
	INVALID_DESTINATION
	// INVALID_JUMP indicates an unknown jump in a C-instruction.
	INVALID_JUMP
	// INVALID_INSTRUCTION indicates a constant which does not fit in 15 bits,
	// an instruction which does not fit in ROM, or text which cannot be lexed.
	INVALID_INSTRUCTION
	// DUPLICATE_LABEL indicates a label declared more than once (strict mode
	// only).
	DUPLICATE_LABEL
)

func (k ErrorKind) String() string {
	switch k {
	case INVALID_SYMBOL:
		return "invalid symbol"
	case INVALID_COMPARISON:
		return "invalid comparison"
	case INVALID_DESTINATION:
		return "invalid destination"
	case INVALID_JUMP:
		return "invalid jump"
	case INVALID_INSTRUCTION:
		return "invalid instruction"
	case DUPLICATE_LABEL:
		return "duplicate label"
	}
	//
	return "unknown error"
}

// Error is a structured assembly error.  It records what went wrong, the
// offending text and where that text is located in the source file.
type Error struct {
	// Kind of error
	Kind ErrorKind
	// Token is the offending text, exactly as written.
	Token string
	// Span of the offending text.
	span source.Span
	// Enclosing source file.
	srcfile *source.File
}

func newError(kind ErrorKind, srcfile *source.File, span source.Span) *Error {
	return &Error{kind, srcfile.Text(span), span, srcfile}
}

// Span returns the span of the offending text within the source file.
func (e *Error) Span() source.Span {
	return e.span
}

// Line returns the line number (counting from 1) on which the error arose.
func (e *Error) Line() int {
	line := e.srcfile.FindFirstEnclosingLine(e.span)
	return line.Number()
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s \"%s\"", e.Kind.String(), e.Token)
}

// SyntaxError converts this into a syntax error over the original source file,
// which can be used for highlighting.
func (e *Error) SyntaxError() *source.SyntaxError {
	return e.srcfile.SyntaxError(e.span, e.Error())
}
