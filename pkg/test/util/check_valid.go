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
package util

import (
	"fmt"
	"strings"
	"testing"

	"github.com/consensys/go-hack/pkg/hack"
	"github.com/consensys/go-hack/pkg/util/source"
)

// Assembler assembles a given source file into machine code, or returns the
// error which prevented this.
type Assembler func(*source.File) ([]hack.Instruction, error)

// CheckValid checks that a given test file assembles into exactly the machine
// code held in the corresponding ".hack" file.
func CheckValid(t *testing.T, test string, assembler Assembler) {
	var (
		asmFile  = fmt.Sprintf("%s/%s.asm", TestDir, test)
		hackFile = fmt.Sprintf("%s/%s.hack", TestDir, test)
	)
	// Enable testing each file in parallel
	t.Parallel()
	//
	code, err := assembler(readSourceFile(t, asmFile))
	if err != nil {
		t.Fatalf("Error %s should have assembled: %s", asmFile, err)
	}
	//
	expected := strings.Fields(string(readExpectedFile(t, hackFile)))
	//
	if len(code) != len(expected) {
		t.Errorf("Error %s produced %d words, expected %d", asmFile, len(code), len(expected))
	}
	//
	for i := 0; i < min(len(code), len(expected)); i++ {
		if actual := hack.Encode(code[i]); actual != expected[i] {
			t.Errorf("Error %s word %d (%s) is %s, expected %s", asmFile, i, code[i], actual, expected[i])
		}
	}
}
