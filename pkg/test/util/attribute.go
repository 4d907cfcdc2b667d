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
	"github.com/consensys/go-hack/pkg/util/source"
)

// Attribute recognises a single line at the start of a test file.  It reports
// whether the line matched and, if so, the item it describes.  A matching line
// which is malformed is reported as an error.
type Attribute[T any] func(line source.Line, srcfile *source.File) (bool, T, error)

// ExtractAttributes reads the block of attribute lines at the beginning of a
// test file.  Extraction stops at the first line which no attribute matches.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		items  []T
		errors []error
	)
	//
	for _, line := range srcfile.Lines() {
		if !extractAttribute(line, srcfile, &items, &errors, attributes) {
			break
		}
	}
	//
	return items, errors
}

func extractAttribute[T any](line source.Line, srcfile *source.File, items *[]T, errors *[]error,
	attributes []Attribute[T]) bool {
	//
	for _, attribute := range attributes {
		matched, item, err := attribute(line, srcfile)
		//
		if err != nil {
			*errors = append(*errors, err)
			return true
		} else if matched {
			*items = append(*items, item)
			return true
		}
	}
	//
	return false
}
