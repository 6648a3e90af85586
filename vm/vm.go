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
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// DefaultMemLimit is the default maximum memory size in cells.
const DefaultMemLimit = 16 << 20

var log = commonlog.GetLogger("intcode.vm")

// Instance represents an Intcode VM instance.
//
// An Instance is not safe for concurrent use. Independent instances share no
// state and can be run from different goroutines.
type Instance struct {
	mem      []Cell
	pc       int
	rb       Cell
	input    []Cell
	out      Cell
	hasOut   bool
	err      error
	limit    int
	insCount int64
	log      commonlog.Logger
}

// Option interface
type Option func(*Instance) error

// Input queues the given values as program input.
func Input(v ...Cell) Option {
	return func(i *Instance) error { i.ReadInput(v...); return nil }
}

// MemLimit sets the maximum memory size in cells. Accessing an address at or
// beyond the limit crashes the VM with a *LimitError. The default is
// DefaultMemLimit. The limit cannot be lower than the size of the loaded
// program.
func MemLimit(cells int) Option {
	return func(i *Instance) error {
		if cells < len(i.mem) {
			return errors.Errorf("memory limit %d lower than program size %d", cells, len(i.mem))
		}
		i.limit = cells
		return nil
	}
}

// Logger sets the logger used for diagnostics by Run.
func Logger(l commonlog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The program is copied, so the same program slice can be used to create
// multiple instances. Options will be set by calling SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem:   append([]Cell(nil), program...),
		limit: DefaultMemLimit,
		log:   log,
	}
	if len(i.mem) > i.limit {
		i.limit = len(i.mem)
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Clone returns a deep copy of the VM: memory, instruction pointer, relative
// base, pending input and crash state. The copy shares nothing with i.
func (i *Instance) Clone() *Instance {
	c := *i
	c.mem = append([]Cell(nil), i.mem...)
	c.input = append([]Cell(nil), i.input...)
	return &c
}

// PC returns the instruction pointer.
func (i *Instance) PC() int {
	return i.pc
}

// RelativeBase returns the current relative base.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// Mem returns the VM memory. Note that value changes will be reflected in the
// instance's memory, but the slice may be reallocated by the next step that
// grows memory.
func (i *Instance) Mem() []Cell {
	return i.mem
}

// Pending returns the number of queued input values.
func (i *Instance) Pending() int {
	return len(i.input)
}

// LastOutput returns the last value output by the program, if any.
func (i *Instance) LastOutput() (Cell, bool) {
	return i.out, i.hasOut
}

// Err returns the error that crashed the VM, or nil.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the VM memory to w as comma separated program text, terminated
// by a newline. The output can be read back with Parse.
func (i *Instance) Dump(w io.Writer) error {
	var b []byte
	for n, v := range i.mem {
		if n > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	b = append(b, '\n')
	_, err := w.Write(b)
	return errors.Wrap(err, "dump failed")
}
