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

// The intcode command line tool runs Intcode programs interactively. It is a
// showcase for the package github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode [flags] [program-file]
//
//	-ascii
//		  ASCII input and output
//	-asm
//		  the program file is assembly source
//	-config filename
//		  load settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump memory upon exit
//	-in values
//		  queue comma separated values as input (can be specified multiple times)
//	-lenient
//		  silently drop malformed values from the program file
//	-memlimit cells
//		  memory limit in cells (default 16777216)
//	-noraw
//		  disable raw terminal IO in ASCII mode
//	-patch addr=value
//		  set memory cell addr=value before running (can be specified multiple times)
//	-prog filename
//		  load program from file filename
//	-trace
//		  disassemble each instruction to stderr before executing it
//
// Program output is printed one value per line. When the program waits for
// input, a line is read from stdin and parsed as comma separated values. If
// stdin is closed while the program is waiting for input, intcode exits with
// an error.
//
// -ascii: output values in the ASCII range are printed as characters, others
// are printed as numbers on a line of their own. Input lines are sent as
// ASCII codes terminated by a '\n'. If stdin is a terminal, it is switched to
// raw mode and keystrokes are sent to the program as they are typed; press
// CTRL-D to close the input. Use -noraw to disable this behavior.
//
// -asm: the program file is assembled with the package
// github.com/db47h/intcode/asm instead of being parsed as comma separated
// values.
//
// -in: these values are queued as input before the program starts. They are
// consumed before anything is read from stdin.
//
// -patch: overwrite a memory cell after loading the program, for example
// -patch 0=2. Addressing modes do not apply.
//
// -lenient: by default, a program file containing anything else than comma
// separated integers is rejected.
//
// -debug: will print a full stacktrace should the VM crash, and enable debug
// logging.
//
// -config: settings can be loaded from a TOML file where keys have the same
// names as the flags, for example:
//
//	prog = "day9.ic"
//	in = [2]
//	memlimit = 65536
//
//	[[patch]]
//	addr = 0
//	value = 2
//
// Flags set on the command line take precedence over the configuration file.
package main
