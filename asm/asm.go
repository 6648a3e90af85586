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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

var opcodes = [...]struct {
	op    vm.Opcode
	names []string
}{
	{vm.OpAdd, []string{"add"}},
	{vm.OpMul, []string{"mul"}},
	{vm.OpIn, []string{"in"}},
	{vm.OpOut, []string{"out"}},
	{vm.OpJumpNZ, []string{"jt", "jnz"}},
	{vm.OpJumpZ, []string{"jf", "jz"}},
	{vm.OpLess, []string{"lt"}},
	{vm.OpEqual, []string{"eq"}},
	{vm.OpAdjustR, []string{"arb", "rb"}},
	{vm.OpHalt, []string{"hlt", "halt"}},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for _, o := range opcodes {
		for _, n := range o.names {
			opcodeIndex[n] = o.op
		}
	}
}

// ErrPos encapsulates an error message and its position in the source code.
type ErrPos struct {
	Pos scanner.Position
	Msg string
}

func (e ErrPos) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is a list of assembly errors. It is returned by Assemble and holds
// at most 10 entries.
type ErrAsm []ErrPos

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (prog []vm.Cell, err error) {
	return newParser().Parse(name, r)
}

func operand(w io.Writer, m vm.Mode, v vm.Cell) {
	switch m {
	case vm.Immediate:
		io.WriteString(w, "#")
	case vm.Relative:
		io.WriteString(w, "@")
	}
	io.WriteString(w, strconv.FormatInt(int64(v), 10))
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Words that do not decode to a valid instruction, that are not the canonical
// encoding of the instruction they decode to, or whose operands would extend
// past the end of mem, are written as a .dat directive so that the output can
// be assembled back to the same program.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)

	word := mem[pc]
	in, err := vm.Decode(word)
	if err != nil || in.Word() != word || pc+in.Len() > len(mem) {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, in.Op.String())
	pc++
	for p := 0; p < in.Op.Arity(); p++ {
		ew.Write([]byte{' '})
		operand(ew, in.Modes[p], mem[pc])
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
