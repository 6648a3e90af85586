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
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode.cmd")

func loadProgram(cfg *config) ([]vm.Cell, error) {
	if !cfg.Asm {
		return vm.Load(cfg.Program, !cfg.Lenient)
	}
	f, err := os.Open(cfg.Program)
	if err != nil {
		return nil, errors.Wrap(err, "loadProgram")
	}
	defer f.Close()
	return asm.Assemble(filepath.Base(cfg.Program), f)
}

func newVM(cfg *config) (*vm.Instance, error) {
	prog, err := loadProgram(cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d cells from %s", len(prog), cfg.Program)
	opts := []vm.Option{vm.Input(cfg.Input...)}
	if cfg.MemLimit > len(prog) {
		opts = append(opts, vm.MemLimit(cfg.MemLimit))
	}
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Patch {
		if err = i.OverwriteMemory(p.Addr, p.Value); err != nil {
			return nil, err
		}
		log.Debugf("patched [%d] = %d", p.Addr, p.Value)
	}
	return i, nil
}

func atExit(i *vm.Instance, debug bool, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		mem, pc := i.Mem(), i.PC()
		if pc < len(mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, instructions: %v\n", pc, mem[pc], i.RelativeBase(), i.InstructionCount())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, RB: %v, instructions: %v\n", pc, i.RelativeBase(), i.InstructionCount())
		}
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance
	var cfg *config

	defer func() {
		if err == nil && cfg.Dump {
			err = i.Dump(os.Stdout)
		}
		atExit(i, cfg != nil && cfg.Debug, err)
	}()

	cfg, err = parseArgs(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Cause(err) == flag.ErrHelp {
			os.Exit(0)
		}
		return
	}

	verbosity := 0
	if cfg.Debug {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	i, err = newVM(cfg)
	if err != nil {
		return
	}

	s := newSession(i, os.Stdin, os.Stdout, cfg.ASCII)
	if cfg.Trace {
		s.trace = os.Stderr
	}
	if cfg.ASCII && !cfg.NoRaw && isatty.IsTerminal(os.Stdin.Fd()) {
		tearDown, rerr := setRawIO()
		if rerr != nil {
			log.Warningf("%v", rerr)
		} else {
			defer tearDown()
			s.raw = true
		}
	}
	err = s.run()
}
