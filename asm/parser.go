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

package asm

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// instruction being assembled
type pendingIns struct {
	pos     scanner.Position
	address int
	ins     vm.Instruction
	n       int // operands parsed so far
}

type parser struct {
	i      []vm.Cell
	pc     int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	ins    *pendingIns
	errs   ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	if p.pc >= vm.DefaultMemLimit {
		p.error(p.s.Position, "Program too large, address "+strconv.Itoa(p.pc)+" exceeds "+strconv.Itoa(vm.DefaultMemLimit)+" cells")
		p.pc++
		return
	}
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, p.pc-len(p.i)+1)...)
	}
	p.i[p.pc] = v
	p.pc++
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errs = append(p.errs, ErrPos{Pos: pos, Msg: msg})
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

// value parses an integer, char literal, constant or label and writes it at
// the current address.
func (p *parser) value(s string) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		p.write(vm.Cell(n))
		return
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error(p.s.Position, "Invalid char literal "+s)
			p.write(0)
			return
		}
		p.write(vm.Cell(r))
		return
	}
	if c, ok := p.consts[s]; ok {
		p.write(vm.Cell(c.address))
		return
	}
	if !isName(s) {
		p.error(p.s.Position, "Invalid operand "+s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

// constant parses an integer, char literal or constant used as a directive
// argument. Labels are not allowed.
func (p *parser) constant(s string) (int, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return int(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		if r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\''); err == nil && tail == "" {
			return int(r), true
		}
	}
	if c, ok := p.consts[s]; ok {
		return c.address, true
	}
	p.error(p.s.Position, "Expected integer or constant, got "+s)
	return 0, false
}

func isName(s string) bool {
	if s == "" || strings.ContainsAny(s[:1], "#@:.'-0123456789") {
		return false
	}
	return true
}

// operand parses an instruction operand with an optional mode prefix.
func (p *parser) operand(s string) {
	ins := p.ins
	m := vm.Positional
	switch s[0] {
	case '#':
		m = vm.Immediate
		s = s[1:]
	case '@':
		m = vm.Relative
		s = s[1:]
	}
	if s == "" {
		p.error(p.s.Position, "Missing operand value")
	}
	if m == vm.Immediate && ins.n == ins.ins.Op.Arity()-1 && ins.ins.Op.Writes() {
		p.error(p.s.Position, "Immediate mode write target for "+ins.ins.Op.String())
	}
	ins.ins.Modes[ins.n] = m
	if s != "" {
		p.value(s)
	} else {
		p.write(0)
	}
	ins.n++
	if ins.n == ins.ins.Op.Arity() {
		p.endInstruction()
	}
}

func (p *parser) endInstruction() {
	if p.ins.address < len(p.i) {
		p.i[p.ins.address] = p.ins.ins.Word()
	}
	p.ins = nil
}

func (p *parser) checkPending(what string) {
	if p.ins != nil {
		p.error(p.s.Position, "Unexpected "+what+", "+p.ins.ins.Op.String()+" needs "+
			strconv.Itoa(p.ins.ins.Op.Arity())+" operands, got "+strconv.Itoa(p.ins.n))
		p.endInstruction()
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error(p.s.Position, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()

		// skip comments
		if s == "(" {
			for tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")") {
				tok = p.s.Scan()
			}
			continue
		}

		if p.ins != nil {
			switch s[0] {
			case ':', '.':
			default:
				if _, ok := opcodeIndex[s]; !ok {
					p.operand(s)
					continue
				}
			}
			p.checkPending(s)
		}

		switch {
		case s[0] == ':':
			n := s[1:]
			if !isName(n) {
				p.error(p.s.Position, "Invalid label name: "+s)
				continue
			}
			if cst, ok := p.consts[n]; ok {
				p.error(p.s.Position, "Label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
				continue
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.error(p.s.Position, "Label redefinition: "+n+", previous definition here: "+l.pos.String())
					continue
				}
				l.address = p.pc
				l.pos = p.s.Position
			} else {
				p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
			}
		case s[0] == '.':
			p.directive(s)
		default:
			if op, ok := opcodeIndex[s]; ok {
				p.ins = &pendingIns{pos: p.s.Position, address: p.pc, ins: vm.Instruction{Op: op}}
				p.write(vm.Cell(op))
				if op.Arity() == 0 {
					p.endInstruction()
				}
				continue
			}
			// raw data
			p.value(s)
		}
	}
	p.checkPending("end of file")

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			if u.address >= len(p.i) {
				continue
			}
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.i, nil
}

func (p *parser) directive(s string) {
	arg := func() (string, bool) {
		if p.s.Scan() != scanner.Ident {
			p.error(p.s.Position, s+": missing argument")
			return "", false
		}
		return p.s.TokenText(), true
	}
	switch s {
	case ".org":
		a, ok := arg()
		if !ok {
			return
		}
		if v, ok := p.constant(a); ok {
			if v < 0 {
				p.error(p.s.Position, ".org: negative address "+a)
				return
			}
			if v >= vm.DefaultMemLimit {
				p.error(p.s.Position, ".org: address "+a+" exceeds "+strconv.Itoa(vm.DefaultMemLimit)+" cells")
				return
			}
			p.pc = v
		}
	case ".dat":
		if a, ok := arg(); ok {
			p.value(a)
		}
	case ".equ":
		n, ok := arg()
		if !ok {
			return
		}
		if !isName(n) {
			p.error(p.s.Position, ".equ: invalid constant name "+n)
			return
		}
		if l, ok := p.labels[n]; ok {
			p.error(p.s.Position, ".equ: redefinition of "+n+", previously defined/used as a label here: "+l.pos.String())
			return
		}
		pos := p.s.Position
		a, ok := arg()
		if !ok {
			return
		}
		if v, ok := p.constant(a); ok {
			p.consts[n] = labelSite{pos, v}
		}
	default:
		p.error(p.s.Position, "Unknown directive: "+s)
	}
}
