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

	"github.com/consensys/go-hack/pkg/hack"
	"github.com/consensys/go-hack/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_Label(t *testing.T) {
	checkParse(t, "(LOOP)", &Label{"LOOP"})
	checkParse(t, "(ponggame.0$if.end:1)", &Label{"ponggame.0$if.end:1"})
}

func Test_Parse_Constant(t *testing.T) {
	checkParse(t, "@0", &Load{"", 0})
	checkParse(t, "@007", &Load{"", 7})
	checkParse(t, "@32767", &Load{"", 32767})
}

func Test_Parse_Symbol(t *testing.T) {
	checkParse(t, "@i", &Load{"i", 0})
	checkParse(t, "@R15", &Load{"R15", 0})
	checkParse(t, "@_a.b$c:9", &Load{"_a.b$c:9", 0})
}

func Test_Parse_Compute(t *testing.T) {
	checkParse(t, "D", &Compute{hack.CInstruction{Dest: hack.DEST_NULL, Comp: hack.COMP_D, Jump: hack.JUMP_NULL}})
	checkParse(t, "D=A", &Compute{hack.CInstruction{Dest: hack.DEST_D, Comp: hack.COMP_A, Jump: hack.JUMP_NULL}})
	checkParse(t, "0;JMP", &Compute{hack.CInstruction{Dest: hack.DEST_NULL, Comp: hack.COMP_ZERO, Jump: hack.JUMP_JMP}})
	checkParse(t, "AM=M+1;JNE", &Compute{hack.CInstruction{Dest: hack.DEST_AM, Comp: hack.COMP_M_PLUS_ONE, Jump: hack.JUMP_JNE}})
}

func Test_Parse_DestinationAliases(t *testing.T) {
	checkParse(t, "MD=D", &Compute{hack.CInstruction{Dest: hack.DEST_DM, Comp: hack.COMP_D, Jump: hack.JUMP_NULL}})
	checkParse(t, "DM=D", &Compute{hack.CInstruction{Dest: hack.DEST_DM, Comp: hack.COMP_D, Jump: hack.JUMP_NULL}})
	checkParse(t, "DA=D", &Compute{hack.CInstruction{Dest: hack.DEST_AD, Comp: hack.COMP_D, Jump: hack.JUMP_NULL}})
	checkParse(t, "AD=D", &Compute{hack.CInstruction{Dest: hack.DEST_AD, Comp: hack.COMP_D, Jump: hack.JUMP_NULL}})
}

func Test_Parse_Errors(t *testing.T) {
	var tests = []struct {
		input string
		kind  ErrorKind
		token string
		start int
		end   int
	}{
		{"D=X", INVALID_COMPARISON, "X", 2, 3},
		{"D=A+D", INVALID_COMPARISON, "A+D", 2, 5},
		{"D=;JMP", INVALID_COMPARISON, "", 2, 2},
		{"X=D", INVALID_DESTINATION, "X", 0, 1},
		{"=D", INVALID_DESTINATION, "", 0, 0},
		{"null=D", INVALID_DESTINATION, "null", 0, 4},
		{"MA=D", INVALID_DESTINATION, "MA", 0, 2},
		{"D = A", INVALID_DESTINATION, "D ", 0, 2},
		{"D;JXX", INVALID_JUMP, "JXX", 2, 5},
		{"AM=M+1;JYY", INVALID_JUMP, "JYY", 7, 10},
		{"D;", INVALID_JUMP, "", 2, 2},
		{"@1abc", INVALID_SYMBOL, "1abc", 1, 5},
		{"@a-b", INVALID_SYMBOL, "a-b", 1, 4},
		{"@", INVALID_SYMBOL, "", 1, 1},
		{"(1abc)", INVALID_SYMBOL, "1abc", 1, 5},
		{"(123)", INVALID_SYMBOL, "123", 1, 4},
		{"()", INVALID_SYMBOL, "", 1, 1},
		{"@32768", INVALID_INSTRUCTION, "@32768", 0, 6},
		{"@99999999999999999999999", INVALID_INSTRUCTION, "@99999999999999999999999", 0, 24},
		{"(LOOP", INVALID_COMPARISON, "(LOOP", 0, 5},
		{")", INVALID_COMPARISON, ")", 0, 1},
		{")=D", INVALID_DESTINATION, ")", 0, 1},
		{"(x;JMP", INVALID_COMPARISON, "(x", 0, 2},
		{"(", INVALID_COMPARISON, "(", 0, 1},
	}
	//
	for _, test := range tests {
		_, err := parseOne(t, test.input)
		//
		require.NotNil(t, err, test.input)
		assert.Equal(t, test.kind, err.Kind, test.input)
		assert.Equal(t, test.token, err.Token, test.input)
		assert.Equal(t, source.NewSpan(test.start, test.end), err.Span(), test.input)
	}
}

func Test_Parse_SourceMap(t *testing.T) {
	var (
		file   = srcfile("// start\n@5\n\n  (LOOP)\n0;JMP")
		parser = NewParser(file)
	)
	//
	code, err := parser.Parse()
	require.Nil(t, err)
	require.Len(t, code, 3)
	//
	assert.Equal(t, 2, parser.SourceMap().Line(code[0]))
	assert.Equal(t, 4, parser.SourceMap().Line(code[1]))
	assert.Equal(t, 5, parser.SourceMap().Line(code[2]))
	assert.Equal(t, "(LOOP)", code[1].String())
	assert.Equal(t, "0;JMP", code[2].String())
}

func Test_PreInstruction_String(t *testing.T) {
	assert.Equal(t, "@7", (&Load{"", 7}).String())
	assert.Equal(t, "@LOOP", (&Load{"LOOP", 0}).String())
	assert.Equal(t, "(END)", (&Label{"END"}).String())
	assert.Equal(t, "DM=D", (&Compute{hack.CInstruction{Dest: hack.DEST_DM, Comp: hack.COMP_D}}).String())
}

func checkParse(t *testing.T, input string, expected PreInstruction) {
	insn, err := parseOne(t, input)
	//
	require.Nil(t, err, input)
	assert.Equal(t, expected, insn, input)
}

func parseOne(t *testing.T, input string) (PreInstruction, *Error) {
	file := srcfile(input)
	//
	statements, err := Statements(file)
	require.Nil(t, err)
	require.Len(t, statements, 1)
	//
	return NewParser(file).ParseStatement(statements[0])
}
