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
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// patch is a memory cell to overwrite before running the program.
type patch struct {
	Addr  int     `toml:"addr"`
	Value vm.Cell `toml:"value"`
}

// config holds the command line settings. It can be loaded from a TOML file
// with the same keys as the flag names.
type config struct {
	Program  string    `toml:"prog"`
	Asm      bool      `toml:"asm"`
	Input    []vm.Cell `toml:"in"`
	Patch    []patch   `toml:"patch"`
	ASCII    bool      `toml:"ascii"`
	NoRaw    bool      `toml:"noraw"`
	Lenient  bool      `toml:"lenient"`
	MemLimit int       `toml:"memlimit"`
	Trace    bool      `toml:"trace"`
	Dump     bool      `toml:"dump"`
	Debug    bool      `toml:"debug"`
}

// loadConfig loads settings from the TOML file fileName into cfg. Unknown
// keys are an error.
func loadConfig(fileName string, cfg *config) error {
	md, err := toml.DecodeFile(fileName, cfg)
	if err != nil {
		return errors.Wrapf(err, "config file %s", fileName)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for n, k := range u {
			keys[n] = k.String()
		}
		return errors.Errorf("config file %s: unknown keys %s", fileName, strings.Join(keys, ", "))
	}
	return nil
}

type cellList []vm.Cell

func (l *cellList) String() string { return "" }
func (l *cellList) Set(s string) error {
	v, err := vm.ParseStrict(s)
	if err != nil {
		return err
	}
	*l = append(*l, v...)
	return nil
}
func (l *cellList) Get() interface{} { return *l }

type patchList []patch

func (l *patchList) String() string { return "" }
func (l *patchList) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("expected addr=value, got %q", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return errors.Wrap(err, "bad address")
	}
	val, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return errors.Wrap(err, "bad value")
	}
	*l = append(*l, patch{addr, vm.Cell(val)})
	return nil
}
func (l *patchList) Get() interface{} { return *l }

// parseArgs parses the command line arguments. Settings from the file given
// with -config are overridden by flags explicitly set on the command line,
// and a program file given as argument overrides -prog.
func parseArgs(name string, args []string, output io.Writer) (*config, error) {
	var (
		fl         config
		in         cellList
		patches    patchList
		configFile string
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		io.WriteString(output, "Usage: "+name+" [flags] [program-file]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&fl.Program, "prog", "", "load program from file `filename`")
	fs.BoolVar(&fl.Asm, "asm", false, "the program file is assembly source")
	fs.Var(&in, "in", "queue comma separated `values` as input (can be specified multiple times)")
	fs.Var(&patches, "patch", "set memory cell `addr=value` before running (can be specified multiple times)")
	fs.BoolVar(&fl.ASCII, "ascii", false, "ASCII input and output")
	fs.BoolVar(&fl.NoRaw, "noraw", false, "disable raw terminal IO in ASCII mode")
	fs.BoolVar(&fl.Lenient, "lenient", false, "silently drop malformed values from the program file")
	fs.IntVar(&fl.MemLimit, "memlimit", vm.DefaultMemLimit, "memory limit in `cells`")
	fs.BoolVar(&fl.Trace, "trace", false, "disassemble each instruction to stderr before executing it")
	fs.BoolVar(&fl.Dump, "dump", false, "dump memory upon exit")
	fs.BoolVar(&fl.Debug, "debug", false, "enable debug diagnostics")
	fs.StringVar(&configFile, "config", "", "load settings from TOML file `filename`")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{MemLimit: vm.DefaultMemLimit}
	if configFile != "" {
		if err := loadConfig(configFile, cfg); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prog":
			cfg.Program = fl.Program
		case "asm":
			cfg.Asm = fl.Asm
		case "in":
			cfg.Input = in
		case "patch":
			cfg.Patch = patches
		case "ascii":
			cfg.ASCII = fl.ASCII
		case "noraw":
			cfg.NoRaw = fl.NoRaw
		case "lenient":
			cfg.Lenient = fl.Lenient
		case "memlimit":
			cfg.MemLimit = fl.MemLimit
		case "trace":
			cfg.Trace = fl.Trace
		case "dump":
			cfg.Dump = fl.Dump
		case "debug":
			cfg.Debug = fl.Debug
		}
	})
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Program = fs.Arg(0)
	default:
		return nil, errors.Errorf("too many arguments: %v", fs.Args())
	}
	if cfg.Program == "" {
		fs.Usage()
		return nil, errors.New("no program file")
	}
	return cfg, nil
}
