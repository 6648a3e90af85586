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

// Status is the kind of machine state returned by Step and AwaitOutput.
type Status int

// Machine states.
const (
	// Running means that an instruction was executed and the program can
	// continue. AwaitOutput never returns it.
	Running Status = iota
	// Output means that the program output State.Value.
	Output
	// OutputAwaitingInput means that the program output State.Value and
	// that the next instruction is an input instruction.
	OutputAwaitingInput
	// AwaitingInput means that the program is suspended on an input
	// instruction with an empty input queue.
	AwaitingInput
	// Done means that the program has halted.
	Done
	// Crashed means that the program failed. See Instance.Err.
	Crashed
)

var statusNames = [...]string{
	Running:             "Running",
	Output:              "Output",
	OutputAwaitingInput: "OutputAwaitingInput",
	AwaitingInput:       "AwaitingInput",
	Done:                "Done",
	Crashed:             "Crashed",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// State is a machine state. Value is only meaningful for the Output and
// OutputAwaitingInput statuses.
type State struct {
	Status Status
	Value  Cell
}

// HasOutput reports whether the state carries an output value.
func (s State) HasOutput() bool {
	return s.Status == Output || s.Status == OutputAwaitingInput
}

// Halted reports whether the state is terminal (Done or Crashed).
func (s State) Halted() bool {
	return s.Status == Done || s.Status == Crashed
}

func (s State) String() string {
	if s.HasOutput() {
		return s.Status.String() + "(" + strconv.FormatInt(int64(s.Value), 10) + ")"
	}
	return s.Status.String()
}
