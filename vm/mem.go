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

import "github.com/pkg/errors"

// grow makes sure that addr is a valid index in memory, extending it with
// zeros if needed. It is the only place where memory is resized.
func (i *Instance) grow(addr Cell) error {
	if err := i.check(addr); err != nil {
		return err
	}
	if n := int(addr) + 1; n > len(i.mem) {
		if n <= cap(i.mem) {
			i.mem = i.mem[:n]
		} else {
			// at least double capacity, but stay within the limit
			c := 2 * cap(i.mem)
			if c < n {
				c = n
			}
			if c > i.limit {
				c = i.limit
			}
			m := make([]Cell, n, c)
			copy(m, i.mem)
			i.mem = m
		}
	}
	return nil
}

// check returns an error if addr is negative or beyond the memory limit.
func (i *Instance) check(addr Cell) error {
	if addr < 0 {
		return &UnderflowError{PC: i.pc, Addr: addr}
	}
	if addr >= Cell(i.limit) {
		return &LimitError{PC: i.pc, Addr: addr, Limit: i.limit}
	}
	return nil
}

// load returns the value at addr, growing memory if needed.
func (i *Instance) load(addr Cell) (Cell, error) {
	if err := i.grow(addr); err != nil {
		return 0, err
	}
	return i.mem[addr], nil
}

// store writes v at addr, growing memory if needed.
func (i *Instance) store(addr, v Cell) error {
	if err := i.grow(addr); err != nil {
		return err
	}
	i.mem[addr] = v
	return nil
}

// peek returns the value at addr without growing memory. Out of range
// addresses read as zero.
func (i *Instance) peek(addr int) Cell {
	if addr < 0 || addr >= len(i.mem) {
		return 0
	}
	return i.mem[addr]
}

// param returns the raw word of parameter p (zero based) of the current
// instruction.
func (i *Instance) param(p int) (Cell, error) {
	return i.load(Cell(i.pc + 1 + p))
}

// read returns the value of parameter p according to mode m.
func (i *Instance) read(p int, m Mode) (Cell, error) {
	v, err := i.param(p)
	if err != nil {
		return 0, err
	}
	switch m {
	case Immediate:
		return v, nil
	case Relative:
		v += i.rb
	}
	return i.load(v)
}

// address resolves parameter p as a write target according to mode m.
func (i *Instance) address(p int, m Mode) (Cell, error) {
	v, err := i.param(p)
	if err != nil {
		return 0, err
	}
	if m == Relative {
		v += i.rb
	}
	// grow now so that a bad target fails before any input is consumed.
	if err = i.grow(v); err != nil {
		return 0, err
	}
	return v, nil
}

// resolve returns the address designated by parameter p in mode m, or its
// value in Immediate mode. Memory is left untouched: parameter words past the
// end of memory read as zero.
func (i *Instance) resolve(p int, m Mode) (Cell, error) {
	a := Cell(i.pc + 1 + p)
	if err := i.check(a); err != nil {
		return 0, err
	}
	v := i.peek(int(a))
	switch m {
	case Immediate:
		return v, nil
	case Relative:
		v += i.rb
	}
	return v, i.check(v)
}

// value returns the value of a parameter resolved with resolve.
func (i *Instance) value(v Cell, m Mode) Cell {
	if m == Immediate {
		return v
	}
	v, _ = i.load(v)
	return v
}

// OverwriteMemory sets the memory cell at addr to v, growing memory if
// needed. Addressing modes do not apply: addr is a raw memory index. This is
// typically used to patch a program before running it.
func (i *Instance) OverwriteMemory(addr int, v Cell) error {
	return errors.Wrap(i.store(Cell(addr), v), "OverwriteMemory")
}
