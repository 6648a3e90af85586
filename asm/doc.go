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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	aliases	operands	description
//	------	---	-------	--------	-----------------------------------------------------
//	1	add		a b c		c = a + b
//	2	mul		a b c		c = a * b
//	3	in		c		c = next input value
//	4	out		a		output a
//	5	jt	jnz	a b		jump to b if a != 0
//	6	jf	jz	a b		jump to b if a == 0
//	7	lt		a b c		c = 1 if a < b, else 0
//	8	eq		a b c		c = 1 if a == b, else 0
//	9	arb	rb	a		add a to the relative base
//	99	hlt	halt			halt
//
// Operands:
//
//	N	positional: the value at address N
//	#N	immediate: the value N
//	@N	relative: the value at address relative base + N
//
// The last operand of add, mul, in, lt and eq is a write target and cannot be
// immediate. N can be a decimal, octal (0 prefix) or hexadecimal (0x prefix)
// integer, a char literal like 'a' or '\n', a constant or a label name. A
// label name evaluates to the label's address. Words are separated by
// whitespace, so char literals cannot hold whitespace: write a space as 32 or
// 0x20.
//
// Comments:
//
// Comments are placed between parentheses, and the parentheses must be
// separated from other words by whitespace:
//
//	( this is a comment )
//
// Labels:
//
//	:name
//
// defines a label at the current compilation address.
//
// Directives:
//
//	.org N		set the compilation address to N
//	.dat N		write N at the current address
//	.equ NAME N	define a constant
//
// Any operand-like word found where an instruction is expected is compiled as
// raw data, so .dat is only required for clarity.
//
// Example:
//
//	( output 10 down to 1 )
//		.equ START 10
//		add #START #0 count
//	:loop
//		out count
//		add count #-1 count
//		jt count #loop
//		hlt
//	:count	0
package asm
