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

package ascii_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
)

func TestEncode(t *testing.T) {
	c := ascii.Encode("NOT A J")
	exp := "[78 79 84 32 65 32 74 10]"
	if s := fmt.Sprint(c); s != exp {
		t.Fatalf("Expected %s, got %s", exp, s)
	}
	if s := fmt.Sprint(ascii.Encode("")); s != "[10]" {
		t.Fatalf("Expected [10], got %s", s)
	}
}

func TestDecode(t *testing.T) {
	data := []struct {
		cells []vm.Cell
		text  string
		rest  string
	}{
		{nil, "", "[]"},
		{[]vm.Cell{'#', '.', '\n'}, "#.\n", "[]"},
		{[]vm.Cell{'o', 'k', '\n', 19348359, '\n'}, "ok\n", "[19348359 10]"},
		{[]vm.Cell{-1, 'a'}, "", "[-1 97]"},
		{[]vm.Cell{127, 128}, "\x7f", "[128]"},
	}
	for _, d := range data {
		text, rest := ascii.Decode(d.cells)
		if text != d.text || fmt.Sprint(rest) != d.rest {
			t.Errorf("Decode(%v): expected %q, %s, got %q, %v", d.cells, d.text, d.rest, text, rest)
		}
	}
}

func TestWriter(t *testing.T) {
	var b strings.Builder
	cells := append(ascii.Encode("Hi"), 'x', 1234, 'y', '\n', 5678, -1)
	if err := ascii.WriteCells(&b, cells); err != nil {
		t.Fatal(err)
	}
	exp := "Hi\nx\n1234\ny\n5678\n-1\n"
	if s := b.String(); s != exp {
		t.Fatalf("Expected %q, got %q", exp, s)
	}
}

// run an echo program that upper cases its input until it reads a '.', then
// outputs the number of characters read times 1000.
func TestEcho(t *testing.T) {
	prog, err := asm.Assemble("echo", strings.NewReader(`
	:loop
		in c
		eq c #'.' t
		jt t #done
		add n #1 n
		lt c #'a' t
		jt t #out
		lt c #'{' t
		jf t #out
		add c #-32 c
	:out
		out c
		jt #1 #loop
	:done
		mul n #1000 n
		out n
		hlt
	:c 0 :t 0 :n 0`))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(prog, vm.Input(ascii.Encode("hello, world!.")...))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	w := ascii.NewWriter(&b)
	_, _, err = i.Run(nil, func(v vm.Cell) {
		if err := w.WriteCell(v); err != nil {
			t.Fatal(err)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	exp := "HELLO, WORLD!\n13000\n"
	if s := b.String(); s != exp {
		t.Fatalf("Expected %q, got %q", exp, s)
	}
}
