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

package vm

import "strconv"

// Opcode selects the operation of an instruction. It is the value of the two
// lowest decimal digits of an instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd     Opcode = 1
	OpMul     Opcode = 2
	OpIn      Opcode = 3
	OpOut     Opcode = 4
	OpJumpNZ  Opcode = 5
	OpJumpZ   Opcode = 6
	OpLess    Opcode = 7
	OpEqual   Opcode = 8
	OpAdjustR Opcode = 9
	OpHalt    Opcode = 99
)

var opNames = map[Opcode]string{
	OpAdd:     "add",
	OpMul:     "mul",
	OpIn:      "in",
	OpOut:     "out",
	OpJumpNZ:  "jt",
	OpJumpZ:   "jf",
	OpLess:    "lt",
	OpEqual:   "eq",
	OpAdjustR: "arb",
	OpHalt:    "hlt",
}

// arity gives the number of parameters of each opcode. The last parameter of
// add, mul, in, lt and eq is a write target.
var arity = map[Opcode]int{
	OpAdd:     3,
	OpMul:     3,
	OpIn:      1,
	OpOut:     1,
	OpJumpNZ:  2,
	OpJumpZ:   2,
	OpLess:    3,
	OpEqual:   3,
	OpAdjustR: 1,
	OpHalt:    0,
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if n, ok := opNames[op]; ok {
		return n
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Arity returns the number of parameters taken by op, or -1 if op is not a
// valid opcode.
func (op Opcode) Arity() int {
	if n, ok := arity[op]; ok {
		return n
	}
	return -1
}

// Writes reports whether the last parameter of op is a write target.
func (op Opcode) Writes() bool {
	switch op {
	case OpAdd, OpMul, OpIn, OpLess, OpEqual:
		return true
	}
	return false
}

// Mode is a parameter addressing mode.
type Mode int8

// Parameter addressing modes.
const (
	Positional Mode = iota // the parameter is an address
	Immediate              // the parameter is a literal value
	Relative               // the parameter is an offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case Positional:
		return "positional"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// maxParams is the largest arity of any opcode.
const maxParams = 3

// Instruction is a decoded instruction word. Instructions are never cached:
// memory is writable by the running program, so the word at the instruction
// pointer is decoded anew on every step.
type Instruction struct {
	Op    Opcode
	Modes [maxParams]Mode
}

// Len returns the number of cells used by the instruction, including the
// opcode word.
func (in Instruction) Len() int {
	return 1 + in.Op.Arity()
}

// Word returns the canonical instruction word for in, the inverse of Decode.
func (in Instruction) Word() Cell {
	w := Cell(in.Op)
	f := Cell(100)
	for p := 0; p < in.Op.Arity(); p++ {
		w += Cell(in.Modes[p]) * f
		f *= 10
	}
	return w
}

// Decode decodes an instruction word.
//
// The two lowest decimal digits give the opcode, and the following digits,
// right to left, give the addressing mode of each parameter. Missing mode
// digits default to Positional. Digits beyond the opcode's arity are ignored.
// Negative words, unknown opcodes, unknown modes and Immediate write targets
// are rejected with a *DecodeError.
func Decode(word Cell) (Instruction, error) {
	var in Instruction
	if word < 0 {
		return in, &DecodeError{PC: -1, Word: word, Reason: "negative instruction word"}
	}
	in.Op = Opcode(word % 100)
	n := in.Op.Arity()
	if n < 0 {
		return in, &DecodeError{PC: -1, Word: word, Reason: "unknown opcode " + strconv.Itoa(int(in.Op))}
	}
	modes := word / 100
	for p := 0; p < n; p++ {
		m := Mode(modes % 10)
		modes /= 10
		if m > Relative {
			return in, &DecodeError{PC: -1, Word: word, Reason: "unknown addressing mode " + strconv.Itoa(int(m)) + " for parameter " + strconv.Itoa(p+1)}
		}
		in.Modes[p] = m
	}
	if in.Op.Writes() && in.Modes[n-1] == Immediate {
		return in, &DecodeError{PC: -1, Word: word, Reason: "immediate mode write target"}
	}
	return in, nil
}
