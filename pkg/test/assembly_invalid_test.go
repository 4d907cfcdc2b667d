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
package test

import (
	"testing"

	"github.com/consensys/go-hack/pkg/asm"
	"github.com/consensys/go-hack/pkg/test/util"
	"github.com/consensys/go-hack/pkg/util/source"
)

func Test_AsmInvalid_Comparison_01(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/comparison_01")
}

func Test_AsmInvalid_Comparison_02(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/comparison_02")
}

func Test_AsmInvalid_Destination_01(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/destination_01")
}

func Test_AsmInvalid_Destination_02(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/destination_02")
}

func Test_AsmInvalid_Destination_03(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/destination_03")
}

func Test_AsmInvalid_Jump_01(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/jump_01")
}

func Test_AsmInvalid_Jump_02(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/jump_02")
}

func Test_AsmInvalid_Jump_03(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/jump_03")
}

func Test_AsmInvalid_Symbol_01(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/symbol_01")
}

func Test_AsmInvalid_Symbol_02(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/symbol_02")
}

func Test_AsmInvalid_Symbol_03(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/symbol_03")
}

func Test_AsmInvalid_Symbol_04(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/symbol_04")
}

func Test_AsmInvalid_Symbol_05(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/symbol_05")
}

func Test_AsmInvalid_Instruction_01(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/instruction_01")
}

func Test_AsmInvalid_Label_01(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/label_01")
}

func Test_AsmInvalid_Label_02(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/label_02")
}

func Test_AsmInvalid_Label_03(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/label_03")
}

func Test_AsmInvalid_Label_04(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/label_04")
}

func Test_AsmInvalid_FirstError(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/first_error")
}

func Test_AsmInvalid_Lowercase(t *testing.T) {
	checkAsmInvalid(t, "hack/invalid/lowercase")
}

func Test_AsmInvalid_Strict_Duplicate_01(t *testing.T) {
	checkStrictInvalid(t, "hack/strict/duplicate_01")
}

func Test_AsmInvalid_Strict_Duplicate_02(t *testing.T) {
	checkStrictInvalid(t, "hack/strict/duplicate_02")
}

func checkAsmInvalid(t *testing.T, test string) {
	util.CheckInvalid(t, test, compileWith(asm.NewAssembler()))
}

func checkStrictInvalid(t *testing.T, test string) {
	util.CheckInvalid(t, test, compileWith(asm.NewAssembler().WithStrictLabels(true)))
}

func compileWith(assembler asm.Assembler) util.Compiler {
	return func(srcfile *source.File) []source.SyntaxError {
		if _, err := assembler.Assemble(srcfile); err != nil {
			return []source.SyntaxError{*err.SyntaxError()}
		}
		//
		return nil
	}
}
