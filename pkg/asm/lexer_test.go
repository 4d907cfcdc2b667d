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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Statements_Blank(t *testing.T) {
	checkStatements(t, "")
	checkStatements(t, "\n\n   \n\t\n")
}

func Test_Statements_Comments(t *testing.T) {
	checkStatements(t, "// header\n   // indented\n//")
}

func Test_Statements_Trim(t *testing.T) {
	checkStatements(t, "  @5\n\tD=A \n(LOOP)", "@5", "D=A", "(LOOP)")
}

func Test_Statements_InlineComment(t *testing.T) {
	checkStatements(t, "@5// five\nD=A   // copy\n0;JMP//", "@5", "D=A", "0;JMP")
}

func Test_Statements_CarriageReturn(t *testing.T) {
	checkStatements(t, "@5\r\nD=A // copy\r\n\r\n", "@5", "D=A")
}

func Test_Statements_UnicodeWhitespace(t *testing.T) {
	checkStatements(t, "\f@5\v\n\u00a0D=A\u2003// copy\n\u3000\n", "@5", "D=A")
}

func Test_Statements_InternalWhitespace(t *testing.T) {
	checkStatements(t, "  D = A  // spaced\n", "D = A")
}

func Test_Statements_Slash(t *testing.T) {
	checkStatements(t, "D/A\n/ /", "D/A", "/ /")
}

func checkStatements(t *testing.T, input string, expected ...string) {
	var (
		file  = srcfile(input)
		texts []string
	)
	//
	statements, err := Statements(file)
	require.Nil(t, err)
	//
	for _, stmt := range statements {
		texts = append(texts, file.Text(stmt))
	}
	//
	if len(expected) == 0 {
		assert.Empty(t, texts)
	} else {
		assert.Equal(t, expected, texts)
	}
}
