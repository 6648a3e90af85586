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
	"io"

	"github.com/pkg/errors"
)

// ReadInput appends values to the input queue. Values are consumed by input
// instructions in the order they were queued, regardless of how many calls
// to ReadInput contributed them.
func (i *Instance) ReadInput(v ...Cell) {
	i.input = append(i.input, v...)
}

// ReadString appends the bytes of s to the input queue, one cell per byte.
func (i *Instance) ReadString(s string) {
	for n := 0; n < len(s); n++ {
		i.input = append(i.input, Cell(s[n]))
	}
}

// AwaitOutput steps the VM until it outputs a value, needs input, halts or
// crashes, and returns the corresponding state. It never returns Running.
//
// Calling AwaitOutput on a VM suspended on an input instruction with an empty
// input queue returns AwaitingInput without side effects.
func (i *Instance) AwaitOutput() State {
	for {
		if st := i.Step(); st.Status != Running {
			return st
		}
	}
}

// Run queues inputs then runs the program until it halts, calling onOutput
// (if not nil) for every output value. It returns the last value output by
// the program, with ok set to false if the program never output anything.
//
// If the program crashes, the returned error wraps the cause. If the program
// waits for input after the queue has been drained, Run returns a
// *StarvedInputError; the VM stays suspended and can be resumed.
func (i *Instance) Run(inputs []Cell, onOutput func(v Cell)) (last Cell, ok bool, err error) {
	i.ReadInput(inputs...)
	for {
		st := i.AwaitOutput()
		switch st.Status {
		case Output, OutputAwaitingInput:
			if onOutput != nil {
				onOutput(st.Value)
			}
		case AwaitingInput:
			err = &StarvedInputError{PC: i.pc}
			i.log.Warningf("%v", err)
			last, ok = i.LastOutput()
			return last, ok, err
		case Crashed:
			err = errors.Wrapf(i.err, "program crashed after %d instructions", i.insCount)
			i.log.Errorf("%v", err)
			last, ok = i.LastOutput()
			return last, ok, err
		default:
			last, ok = i.LastOutput()
			return last, ok, nil
		}
	}
}

// IsTerminated reports whether the instruction at the instruction pointer is
// a halt instruction. It does not modify the VM.
func (i *Instance) IsTerminated() bool {
	in, err := Decode(i.peek(i.pc))
	return err == nil && in.Op == OpHalt
}

// PrintOutput returns an output function for Run that prints every output
// value on its own line, prefixed with "Output: ".
func PrintOutput(w io.Writer) func(v Cell) {
	return func(v Cell) {
		fmt.Fprintf(w, "Output: %d\n", v)
	}
}
