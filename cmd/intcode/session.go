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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// session drives a VM interactively: output is printed as it comes and input
// is read from in whenever the program asks for it.
type session struct {
	i     *vm.Instance
	in    *bufio.Reader
	out   *bufio.Writer
	trace io.Writer // nil to disable tracing
	ascii *ascii.Writer
	raw   bool // read single keystrokes in ASCII mode
}

func newSession(i *vm.Instance, in io.Reader, out io.Writer, asciiMode bool) *session {
	s := &session{
		i:   i,
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
	if asciiMode {
		s.ascii = ascii.NewWriter(s.out)
	}
	return s
}

func (s *session) step() vm.State {
	if s.trace == nil {
		return s.i.AwaitOutput()
	}
	for {
		if mem, pc := s.i.Mem(), s.i.PC(); pc < len(mem) {
			fmt.Fprintf(s.trace, "% 10d\t", pc)
			asm.Disassemble(mem, pc, s.trace)
			io.WriteString(s.trace, "\n")
		}
		if st := s.i.Step(); st.Status != vm.Running {
			return st
		}
	}
}

// run runs the program until it halts. It returns a *vm.StarvedInputError if
// the program needs more input after in has reached EOF.
func (s *session) run() (err error) {
	defer func() {
		if ferr := s.out.Flush(); err == nil {
			err = errors.Wrap(ferr, "output")
		}
	}()
	for {
		st := s.step()
		switch st.Status {
		case vm.Output, vm.OutputAwaitingInput:
			if err := s.write(st.Value); err != nil {
				return err
			}
		case vm.AwaitingInput:
			if err := s.out.Flush(); err != nil {
				return errors.Wrap(err, "output")
			}
			if err := s.read(); err != nil {
				if err == io.EOF {
					return &vm.StarvedInputError{PC: s.i.PC()}
				}
				return err
			}
		case vm.Done:
			return nil
		case vm.Crashed:
			return errors.Wrapf(s.i.Err(), "program crashed after %d instructions", s.i.InstructionCount())
		}
	}
}

func (s *session) write(v vm.Cell) error {
	if s.ascii != nil {
		return s.ascii.WriteCell(v)
	}
	_, err := fmt.Fprintln(s.out, v)
	return errors.Wrap(err, "output")
}

// read queues input for the program. It returns io.EOF if no input could be
// read.
func (s *session) read() error {
	if s.ascii != nil && s.raw {
		return s.readKey()
	}
	for {
		line, err := s.in.ReadString('\n')
		if line == "" && err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if s.ascii != nil {
			s.i.ReadInput(ascii.Encode(line)...)
			return nil
		}
		v, perr := vm.ParseStrict(line)
		if perr != nil {
			log.Warningf("invalid input: %v", perr)
			continue
		}
		if len(v) > 0 {
			s.i.ReadInput(v...)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readKey reads a single keystroke in raw tty mode and echoes it.
func (s *session) readKey() error {
	b, err := s.in.ReadByte()
	if err != nil {
		return err
	}
	switch b {
	case 4: // CTRL-D
		return io.EOF
	case '\r':
		b = '\n'
	}
	s.i.ReadInput(vm.Cell(b))
	s.out.WriteByte(b)
	return errors.Wrap(s.out.Flush(), "output")
}
