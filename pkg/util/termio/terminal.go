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
package termio

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal determines whether a given file is attached to a terminal, in
// which case escape sequences can be used when writing to it.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColourMode determines when escape sequences are emitted.
type ColourMode uint8

const (
	// COLOUR_AUTO uses escapes only when writing to a terminal.
	COLOUR_AUTO ColourMode = iota
	// COLOUR_ALWAYS always uses escapes.
	COLOUR_ALWAYS
	// COLOUR_NEVER never uses escapes.
	COLOUR_NEVER
)

// ParseColourMode parses one of "auto", "always" or "never".
func ParseColourMode(mode string) (ColourMode, error) {
	switch mode {
	case "auto":
		return COLOUR_AUTO, nil
	case "always":
		return COLOUR_ALWAYS, nil
	case "never":
		return COLOUR_NEVER, nil
	}
	//
	return COLOUR_NEVER, fmt.Errorf("unknown colour mode \"%s\" (expected auto, always or never)", mode)
}

// Enabled determines whether escapes should be written to a given file under
// this mode.
func (m ColourMode) Enabled(f *os.File) bool {
	switch m {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	default:
		return IsTerminal(f)
	}
}
