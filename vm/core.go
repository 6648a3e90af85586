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

// Step performs exactly one decode-execute cycle and returns the resulting
// machine state. It never blocks; the caller decides whether to call it again.
//
// An Input instruction with an empty input queue is not executed and Step
// returns AwaitingInput. Step can be called again after queuing input with
// ReadInput.
//
// Once a step has failed, the VM is crashed for good: Step keeps returning
// Crashed without further side effects and Err returns the cause.
//
// Note that the instruction pointer is not incremented in a single place,
// rather each opcode deals with it as needed.
func (i *Instance) Step() State {
	if i.err != nil {
		return State{Status: Crashed}
	}
	st, err := i.exec()
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.PC = i.pc
		}
		i.err = err
		return State{Status: Crashed}
	}
	return st
}

func (i *Instance) exec() (State, error) {
	word, err := i.load(Cell(i.pc))
	if err != nil {
		return State{}, err
	}
	in, err := Decode(word)
	if err != nil {
		return State{}, err
	}

	switch in.Op {
	case OpAdd, OpMul, OpLess, OpEqual:
		// all operands are resolved before memory is touched
		var ops [3]Cell
		for p := range ops {
			if ops[p], err = i.resolve(p, in.Modes[p]); err != nil {
				return State{}, err
			}
		}
		a, b := i.value(ops[0], in.Modes[0]), i.value(ops[1], in.Modes[1])
		var v Cell
		switch in.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLess:
			if a < b {
				v = 1
			}
		case OpEqual:
			if a == b {
				v = 1
			}
		}
		if err = i.store(ops[2], v); err != nil {
			return State{}, err
		}
		i.pc += 4
	case OpIn:
		if len(i.input) == 0 {
			return State{Status: AwaitingInput}, nil
		}
		dst, err := i.address(0, in.Modes[0])
		if err != nil {
			return State{}, err
		}
		i.mem[dst] = i.input[0]
		i.input = i.input[1:]
		i.pc += 2
	case OpOut:
		v, err := i.read(0, in.Modes[0])
		if err != nil {
			return State{}, err
		}
		i.pc += 2
		i.out, i.hasOut = v, true
		i.insCount++
		if next, err := Decode(i.peek(i.pc)); err == nil && next.Op == OpIn {
			return State{Status: OutputAwaitingInput, Value: v}, nil
		}
		return State{Status: Output, Value: v}, nil
	case OpJumpNZ, OpJumpZ:
		c, err := i.read(0, in.Modes[0])
		if err != nil {
			return State{}, err
		}
		if (c != 0) == (in.Op == OpJumpNZ) {
			dst, err := i.read(1, in.Modes[1])
			if err != nil {
				return State{}, err
			}
			if dst < 0 {
				return State{}, &UnderflowError{PC: i.pc, Addr: dst}
			}
			if dst >= Cell(i.limit) {
				return State{}, &LimitError{PC: i.pc, Addr: dst, Limit: i.limit}
			}
			i.pc = int(dst)
		} else {
			i.pc += 3
		}
	case OpAdjustR:
		v, err := i.read(0, in.Modes[0])
		if err != nil {
			return State{}, err
		}
		i.rb += v
		i.pc += 2
	case OpHalt:
		return State{Status: Done}, nil
	}
	i.insCount++
	return State{Status: Running}, nil
}
