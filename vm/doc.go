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

// Package vm implements an Intcode virtual machine.
//
// Intcode programs are sequences of integers that are loaded as the initial
// VM memory. Instructions are variable width: the two lowest decimal digits of
// an instruction word select the opcode, the following digits select the
// addressing mode of each parameter (positional, immediate or relative to the
// relative base). Memory is unbounded in principle: reading or writing past the
// end of memory extends it with zeros, up to the limit set with the MemLimit
// option.
//
// The VM is meant to be driven interactively rather than run to completion in
// one shot. Step executes a single instruction, AwaitOutput runs the program
// until it outputs a value, needs input, halts or crashes, and Run is a
// convenience wrapper for batch use. A program waiting for input is simply
// suspended: queue more input with ReadInput and keep going.
//
// Several independent machines can be driven from the same goroutine (for
// instance a chain of amplifiers feeding each other) by cloning a template
// instance with Clone, or from different goroutines since instances share no
// state.
//
// Crashes (invalid instruction words, negative or out of limit addresses) are
// permanent: the VM reports Crashed on every subsequent step, and Err returns
// the cause.
package vm
