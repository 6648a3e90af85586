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

// Package amp drives chains of Intcode amplifiers: identical programs, each
// configured with a phase setting, where the output of one amplifier is the
// input of the next one.
package amp

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.amp")

// Chain computes the output signal of an amplifier chain running prog, with
// one amplifier per phase setting, given the input signal of the first
// amplifier. Series and Feedback are Chain functions.
//
// Implementations must not modify prog: Best calls them concurrently with the
// same program.
type Chain func(prog *vm.Instance, phases []vm.Cell, signal vm.Cell) (vm.Cell, error)

var errNoAmp = errors.New("no amplifiers")

// Series runs amplifiers one after the other. Each amplifier is a clone of
// prog run to completion with the inputs [phase, signal], and its last output
// is the input signal of the next amplifier. It returns the last output of the
// last amplifier.
func Series(prog *vm.Instance, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, errNoAmp
	}
	for n, ph := range phases {
		a := prog.Clone()
		out, ok, err := a.Run([]vm.Cell{ph, signal}, nil)
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", n)
		}
		if !ok {
			return 0, errors.Errorf("amplifier %d: no output", n)
		}
		signal = out
	}
	return signal, nil
}

// Feedback runs amplifiers in a feedback loop: the output of the last
// amplifier is fed back to the first one.
//
// Each amplifier is a clone of prog that receives its phase setting as first
// input. Amplifiers then run in turn: each one is given the current signal
// and runs until it outputs the next signal. The loop ends as soon as an
// amplifier halts, and Feedback returns the last signal output. An amplifier
// that crashes or waits for more input than it has been given is an error.
func Feedback(prog *vm.Instance, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, errNoAmp
	}
	amps := make([]*vm.Instance, len(phases))
	for n, ph := range phases {
		amps[n] = prog.Clone()
		amps[n].ReadInput(ph)
	}
	for {
		for n, a := range amps {
			a.ReadInput(signal)
			st := a.AwaitOutput()
			switch st.Status {
			case vm.Output, vm.OutputAwaitingInput:
				signal = st.Value
			case vm.Done:
				return signal, nil
			case vm.AwaitingInput:
				return 0, errors.Wrapf(&vm.StarvedInputError{PC: a.PC()}, "amplifier %d", n)
			default:
				return 0, errors.Wrapf(a.Err(), "amplifier %d", n)
			}
		}
	}
}
