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
package source

import (
	"fmt"
)

// Span represents a contiguous slice of the original text.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.  This allows us to determine the enclosing line when
// reporting errors.
type Span struct {
	// The first character of this span in the original text.
	start int
	// One past the final character of this span in the original text.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original text.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original text.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p *Span) Length() int {
	return p.end - p.start
}

// Slice returns the sub-span beginning at offset "from" and ending at offset
// "to", where both offsets are relative to the start of this span.
func (p *Span) Slice(from int, to int) Span {
	if from < 0 || to > p.Length() {
		panic(fmt.Sprintf("invalid sub-span %d-%d of span %d-%d", from, to, p.start, p.end))
	}
	//
	return NewSpan(p.start+from, p.start+to)
}

// Map maps nodes produced by a parser back to the slices of their originating
// text.  This is important for error handling and diagnostics, where we wish
// to identify exactly where in the original source file a node arose.
type Map[T comparable] struct {
	// Maps a given node to a span in the original text.
	mapping map[T]Span
	// Enclosing source file
	srcfile *File
}

// NewSourceMap constructs an initially empty source map for a given file.
func NewSourceMap[T comparable](srcfile *File) *Map[T] {
	mapping := make(map[T]Span)
	return &Map[T]{mapping, srcfile}
}

// Source returns the underlying source file on which this map operates.
func (p *Map[T]) Source() *File {
	return p.srcfile
}

// Put registers a new node with a given span.  Note, if the node exists
// already, then it will panic.
func (p *Map[T]) Put(node T, span Span) {
	if _, ok := p.mapping[node]; ok {
		panic(fmt.Sprintf("source map key already exists: %v", any(node)))
	}
	// Assign it
	p.mapping[node] = span
}

// Get determines the span associated with a given node.  Note, if the node is
// not registered with this source map, then it will panic.
func (p *Map[T]) Get(node T) Span {
	if s, ok := p.mapping[node]; ok {
		return s
	}

	panic(fmt.Sprintf("invalid source map key: %v", any(node)))
}

// Line returns the line number on which a given node begins.
func (p *Map[T]) Line(node T) int {
	line := p.srcfile.FindFirstEnclosingLine(p.Get(node))
	return line.Number()
}
