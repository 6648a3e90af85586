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

package asm_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// check some errors. Besides the messages, make sure that they point at the
// offending token.
func TestAssemble_errors(t *testing.T) {
	code := `
	add 1 2 #3
	jt 0 nowhere
	.zoo
	.org -2
	:4x
	'\q'
	out`
	expected := []struct {
		msg string
		tok string
	}{
		{"Immediate mode write target for add", "#3"},
		{"Unknown directive: .zoo", ".zoo"},
		{".org: negative address -2", "-2"},
		{"Invalid label name: :4x", ":4x"},
		{`Invalid char literal '\q'`, `'\q'`},
		{"Unexpected end of file, out needs 1 operands, got 0", ""},
		{"Undefined label nowhere", "nowhere"},
	}
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	errs, ok := err.(asm.ErrAsm)
	if !ok {
		t.Fatalf("Expected asm.ErrAsm, got %T: %v", err, err)
	}
	if len(errs) != len(expected) {
		t.Fatalf("Expected %d errors, got %d:\n%v", len(expected), len(errs), err)
	}
	for n, e := range errs {
		x := expected[n]
		if e.Msg != x.msg {
			t.Errorf("Error %d: expected %q, got %q", n, x.msg, e.Msg)
		}
		if x.tok == "" {
			continue
		}
		if e.Pos.Filename != "test_errors" {
			t.Errorf("Error %d: bad file name %q", n, e.Pos.Filename)
		}
		if o := e.Pos.Offset; !strings.HasPrefix(code[o:], x.tok) {
			t.Errorf("Error \"%s\" points to %q", e.Msg, code[o:o+len(x.tok)])
		}
	}
}

func TestAssemble_redefinition(t *testing.T) {
	code := `
	.equ foo 1
:foo
:bar
:bar
`
	_, err := asm.Assemble("redef", strings.NewReader(code))
	errs, ok := err.(asm.ErrAsm)
	if !ok || len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %v", err)
	}
	if !strings.HasPrefix(errs[0].Msg, "Label redefinition: foo, previously defined as a constant") {
		t.Errorf("Unexpected error %q", errs[0].Msg)
	}
	if !strings.HasPrefix(errs[1].Msg, "Label redefinition: bar, previous definition here: redef:4:1") {
		t.Errorf("Unexpected error %q", errs[1].Msg)
	}
}

func TestAssemble_orgLimit(t *testing.T) {
	data := []struct {
		code string
		msg  string
		tok  string
	}{
		{".org 9223372036854775807 hlt", ".org: address 9223372036854775807 exceeds 16777216 cells", "9223372036854775807"},
		{".org 2000000000 hlt", ".org: address 2000000000 exceeds 16777216 cells", "2000000000"},
		{".equ TOP 0x1000000 .org TOP", ".org: address TOP exceeds 16777216 cells", "TOP"},
	}
	for _, d := range data {
		_, err := asm.Assemble("org", strings.NewReader(d.code))
		errs, ok := err.(asm.ErrAsm)
		if !ok || len(errs) != 1 {
			t.Errorf("%s: expected 1 error, got %v", d.code, err)
			continue
		}
		if errs[0].Msg != d.msg {
			t.Errorf("%s: expected %q, got %q", d.code, d.msg, errs[0].Msg)
		}
		if o := errs[0].Pos.Offset; !strings.HasPrefix(d.code[o:], d.tok) {
			t.Errorf("%s: error points to %q", d.code, d.code[o:])
		}
	}
}

func TestAssemble_sizeLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates the maximum program size")
	}
	code := ".org 16777215 99 jt #1 #end :end"
	_, err := asm.Assemble("size", strings.NewReader(code))
	errs, ok := err.(asm.ErrAsm)
	if !ok || len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", err)
	}
	for _, e := range errs {
		if !strings.HasPrefix(e.Msg, "Program too large, address ") {
			t.Errorf("unexpected error %q", e.Msg)
		}
	}
}

func TestAssemble_spaceLiteral(t *testing.T) {
	_, err := asm.Assemble("space", strings.NewReader(".dat ' '"))
	errs, ok := err.(asm.ErrAsm)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", err)
	}
	for _, e := range errs {
		if e.Msg != "Invalid operand '" {
			t.Errorf("unexpected error %q", e.Msg)
		}
	}
	prog, err := asm.Assemble("space", strings.NewReader(".dat 32 .dat 0x20 out #' '"))
	if err == nil {
		t.Fatalf("expected error, got %v", prog)
	}
	prog, err = asm.Assemble("space", strings.NewReader(".dat 32 .dat 0x20"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(prog, []vm.Cell{32, 32}) {
		t.Errorf("expected [32 32], got %v", prog)
	}
}

func TestAssemble(t *testing.T) {
	data := []struct {
		name string
		code string
		prog []vm.Cell
	}{
		{"empty", "( nothing )", nil},
		{"modes", "add 1 #2 @3 mul @4 5 6", []vm.Cell{21001, 1, 2, 3, 202, 4, 5, 6}},
		{"aliases", "jnz #1 #0 jz 0 @1 rb #-3 halt", []vm.Cell{1105, 1, 0, 2006, 0, 1, 109, -3, 99}},
		{"forward", "jt #1 #end 1 2 :end hlt", []vm.Cell{1105, 1, 5, 1, 2, 99}},
		{"backward", ":top in @0 out @0 jt #1 #top", []vm.Cell{203, 0, 204, 0, 1105, 1, 0}},
		{"org", ".org 3 hlt", []vm.Cell{0, 0, 0, 99}},
		{"org back", "1 2 3 4 .org 1 42", []vm.Cell{1, 42, 3, 4}},
		{"dat", ".dat 'a' .dat '\\n' .dat 0x10 .dat 010", []vm.Cell{97, 10, 16, 8}},
		{"equ", ".equ X 7 .equ Y X out #Y .dat X", []vm.Cell{104, 7, 7}},
		{"label data", ":a a b :b", []vm.Cell{0, 2}},
		{"comment", "out ( not here ) #1 ( nor there )", []vm.Cell{104, 1}},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			prog, err := asm.Assemble(d.name, strings.NewReader(d.code))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(prog, d.prog) {
				t.Errorf("Expected %v, got %v", d.prog, prog)
			}
		})
	}
}

// disassemble prog into source code that can be fed back to Assemble.
func disassemble(t *testing.T, prog []vm.Cell) string {
	t.Helper()
	var b strings.Builder
	for pc := 0; pc < len(prog); {
		var err error
		pc, err = asm.Disassemble(prog, pc, &b)
		if err != nil {
			t.Fatal(err)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestDisassemble_roundTrip(t *testing.T) {
	progs := []string{
		"109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99",
		"3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5",
		"1102,34915192,34915192,7,4,7,99,0",
		"104,1125899906842624,99",
		// non canonical words, bad opcodes and immediate write targets
		"10001,0,0,0,11101,1,1,0,-1,42,100099,11104,5,1",
	}
	for _, src := range progs {
		prog := vm.Parse(src)
		code := disassemble(t, prog)
		got, err := asm.Assemble("roundtrip", strings.NewReader(code))
		if err != nil {
			t.Fatalf("%s:\n%v", code, err)
		}
		if !reflect.DeepEqual(got, prog) {
			t.Errorf("Round trip failed for %s:\n%s\ngot %v", src, code, got)
		}
	}
}

func TestDisassemble_truncated(t *testing.T) {
	var b strings.Builder
	next, err := asm.Disassemble([]vm.Cell{1, 0, 0}, 0, &b)
	if err != nil {
		t.Fatal(err)
	}
	if next != 1 || b.String() != ".dat 1" {
		t.Errorf("Expected .dat 1 / 1, got %s / %d", b.String(), next)
	}
}

// assembled code must run.
func TestAssemble_run(t *testing.T) {
	prog, err := asm.Assemble("countdown", strings.NewReader(countdown))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(prog)
	if err != nil {
		t.Fatal(err)
	}
	var out []vm.Cell
	_, _, err = i.Run(nil, func(v vm.Cell) { out = append(out, v) })
	if err != nil {
		t.Fatal(err)
	}
	exp := []vm.Cell{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	if !reflect.DeepEqual(out, exp) {
		t.Errorf("Expected %v, got %v", exp, out)
	}
}
