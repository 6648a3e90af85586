// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ascii provides utility functions and types for Intcode programs that
// exchange text with the outside world, one ASCII code per cell.
package ascii

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// IsASCII reports whether v is an ASCII code.
func IsASCII(v vm.Cell) bool {
	return v >= 0 && v < 128
}

// Encode returns the input cells for the given line of text: one cell per byte
// of line, followed by a '\n'.
func Encode(line string) []vm.Cell {
	cells := make([]vm.Cell, 0, len(line)+1)
	for i := 0; i < len(line); i++ {
		cells = append(cells, vm.Cell(line[i]))
	}
	return append(cells, '\n')
}

// Decode returns the leading run of ASCII cells as text, and the remaining
// cells, starting with the first non-ASCII one.
func Decode(cells []vm.Cell) (text string, rest []vm.Cell) {
	n := 0
	for n < len(cells) && IsASCII(cells[n]) {
		n++
	}
	b := make([]byte, n)
	for i, c := range cells[:n] {
		b[i] = byte(c)
	}
	return string(b), cells[n:]
}

// Writer renders program output: ASCII cells are written as text, other
// values are written in decimal on a line of their own.
type Writer struct {
	w   io.Writer
	buf []byte
	bol bool
}

// NewWriter returns a new Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, bol: true}
}

// WriteCell writes a single output value.
func (w *Writer) WriteCell(v vm.Cell) error {
	b := w.buf[:0]
	if IsASCII(v) {
		b = append(b, byte(v))
		w.bol = v == '\n'
	} else {
		if !w.bol {
			b = append(b, '\n')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, '\n')
		w.bol = true
	}
	w.buf = b
	_, err := w.w.Write(b)
	return errors.Wrap(err, "ascii output")
}

// WriteCells renders cells to w.
func WriteCells(w io.Writer, cells []vm.Cell) error {
	aw := NewWriter(w)
	for _, v := range cells {
		if err := aw.WriteCell(v); err != nil {
			return err
		}
	}
	return nil
}
