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
package cmd

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/consensys/go-hack/pkg/asm"
	"github.com/consensys/go-hack/pkg/hack"
	"github.com/consensys/go-hack/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WriteProgram(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = []hack.Instruction{
			hack.NewAInstruction(2),
			hack.CInstruction{Dest: hack.DEST_D, Comp: hack.COMP_A, Jump: hack.JUMP_NULL},
		}
	)
	//
	require.NoError(t, writeProgram(bufio.NewWriter(&buf), code))
	assert.Equal(t, "0000000000000010\n1110110000010000\n", buf.String())
}

func Test_WriteProgram_Empty(t *testing.T) {
	var buf bytes.Buffer
	//
	require.NoError(t, writeProgram(bufio.NewWriter(&buf), nil))
	assert.Equal(t, "", buf.String())
}

func Test_PrintSyntaxError(t *testing.T) {
	srcfile := source.NewSourceFile("prog.asm", []byte("@1\nD=Q\n"))
	_, err := asm.Assemble(srcfile)
	require.NotNil(t, err)
	//
	var buf bytes.Buffer
	//
	printSyntaxError(&buf, err.SyntaxError(), false)
	assert.Equal(t, "prog.asm:2:3-4 invalid comparison \"Q\"\n\nD=Q\n  ^\n", buf.String())
}

func Test_PrintSyntaxError_Tabs(t *testing.T) {
	srcfile := source.NewSourceFile("prog.asm", []byte("\t0;JAM\n"))
	_, err := asm.Assemble(srcfile)
	require.NotNil(t, err)
	//
	var buf bytes.Buffer
	//
	printSyntaxError(&buf, err.SyntaxError(), false)
	assert.Equal(t, "prog.asm:1:4-7 invalid jump \"JAM\"\n\n\t0;JAM\n\t  ^^^\n", buf.String())
}

func Test_PrintSyntaxError_Colour(t *testing.T) {
	srcfile := source.NewSourceFile("prog.asm", []byte("@x-y\n"))
	_, err := asm.Assemble(srcfile)
	require.NotNil(t, err)
	//
	var buf bytes.Buffer
	//
	printSyntaxError(&buf, err.SyntaxError(), true)
	assert.Contains(t, buf.String(), "\033[1;31m^^^\033[0m")
}

func Test_IndentOf(t *testing.T) {
	assert.Equal(t, "", indentOf("abc", 0))
	assert.Equal(t, "\t ", indentOf("\tx=1", 2))
	assert.Equal(t, "  ", indentOf("ab", 5))
}
