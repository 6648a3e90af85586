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

import (
	"fmt"
	"strconv"
)

// DecodeError is returned when an instruction word has an unknown opcode or
// addressing mode. PC is the address of the word; it is -1 when the error was
// returned by Decode itself.
type DecodeError struct {
	PC     int
	Word   Cell
	Reason string
}

func (e *DecodeError) Error() string {
	if e.PC < 0 {
		return fmt.Sprintf("cannot decode %d: %s", e.Word, e.Reason)
	}
	return fmt.Sprintf("cannot decode %d @pc=%d: %s", e.Word, e.PC, e.Reason)
}

// UnderflowError is returned when an address or jump target resolves to a
// negative value.
type UnderflowError struct {
	PC   int
	Addr Cell
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("address %d out of range @pc=%d", e.Addr, e.PC)
}

// LimitError is returned when an address is beyond the memory limit set with
// the MemLimit option.
type LimitError struct {
	PC    int
	Addr  Cell
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("address %d exceeds memory limit of %d cells @pc=%d", e.Addr, e.Limit, e.PC)
}

// StarvedInputError is returned by Run when the program is waiting for input
// and the input queue is empty. The VM is left suspended on the input
// instruction and can be resumed after more input has been queued.
type StarvedInputError struct {
	PC int
}

func (e *StarvedInputError) Error() string {
	return "program starved for input @pc=" + strconv.Itoa(e.PC)
}

// SyntaxError is returned by ParseStrict for malformed program text.
type SyntaxError struct {
	Index int // zero based token index
	Token string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid integer %q at position %d", e.Token, e.Index)
}
