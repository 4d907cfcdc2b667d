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
	"strconv"
	"strings"

	"github.com/consensys/go-hack/pkg/util/source"
)

// ERROR_ATTRIBUTE marks a line describing an error which assembling the file
// must report, such as "//error:2:3-4:invalid comparison "Q"".  Line and
// column numbers start from 1, and the column span is exclusive at the end.
const ERROR_ATTRIBUTE = "//error:"

// Extract the syntax error from a given line in the source file, or return
// false if it does not describe an error.
func extractSyntaxError(line source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	contents := strings.TrimRight(line.String(), "\r")
	//
	if !strings.HasPrefix(contents, ERROR_ATTRIBUTE) {
		return false, source.SyntaxError{}, nil
	}
	//
	lineno, start, end, msg, err := parseExpectedError(strings.TrimPrefix(contents, ERROR_ATTRIBUTE))
	if err != nil {
		return true, source.SyntaxError{}, fmt.Errorf("%s:%d: %w", srcfile.Filename(), line.Number(), err)
	}
	//
	span, err := determineFileSpan(lineno, start, end, srcfile.Lines())
	if err != nil {
		return true, source.SyntaxError{}, fmt.Errorf("%s:%d: %w", srcfile.Filename(), line.Number(), err)
	}
	//
	return true, *srcfile.SyntaxError(span, msg), nil
}

// Parse "LINE:START-END:MESSAGE".  The message may itself contain colons.
func parseExpectedError(contents string) (lineno, start, end int, msg string, err error) {
	var splits = strings.SplitN(contents, ":", 3)
	//
	if len(splits) < 3 {
		return 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \"%sX:Y-Z:msg\"",
			contents, ERROR_ATTRIBUTE)
	}
	// Parse line number
	if lineno, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, 0, "", fmt.Errorf("invalid line \"%s\" (%w)", splits[0], err)
	} else if lineno <= 0 {
		return 0, 0, 0, "", fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", splits[0])
	}
	// Parse column span
	if start, end, err = parseExpectedSpan(splits[1]); err != nil {
		return 0, 0, 0, "", err
	}
	//
	return lineno, start, end, splits[2], nil
}

func parseExpectedSpan(text string) (start, end int, err error) {
	var splits = strings.Split(text, "-")
	//
	if len(splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", text)
	}
	// Parse span start as integer
	if start, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%w)", text, err)
	} else if start <= 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", text)
	}
	// Parse span end as integer
	if end, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%w)", text, err)
	} else if end < start {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (ends before it starts)", text)
	}
	//
	return start, end, nil
}

// Determine the span within the whole file that a given line and column span
// corresponds to.  Empty spans are permitted at the very end of a line.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Columns are numbered from 1, spans from 0.
	start--
	end--
	//
	if start > line.Length() || end > line.Length() {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)",
			lineno, start+1, end+1)
	}
	//
	return source.NewSpan(line.Start()+start, line.Start()+end), nil
}
