// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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
	"fmt"
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const (
	maxErrors = 10
	maxOrg    = 1 << 20 // highest address reachable with .org
	maxArgs   = 16      // argument count limit of .opcode instructions
)

func isIdentRune(ch rune, i int) bool {
	return ch > ' ' && !unicode.IsSpace(ch)
}

func isNumber(s string) bool {
	return s[0] == '-' || s[0] == '+' || (s[0] >= '0' && s[0] <= '9')
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type constant struct {
	pos   scanner.Position
	value vm.Cell
}

type parser struct {
	i      []vm.Cell
	pc     int
	end    int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]constant
	ops    map[string]mnemonic
	errs   ErrAsm
}

func newParser() *parser {
	p := &parser{
		labels: make(map[string]*label),
		consts: make(map[string]constant),
		ops:    make(map[string]mnemonic, len(mnemonics)),
	}
	for _, m := range mnemonics {
		p.ops[m.name] = m
	}
	return p
}

func (p *parser) errorf(pos scanner.Position, format string, args ...interface{}) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, fmt.Sprintf(format, args...)})
	}
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

// scan returns the next token, skipping comments. It returns false at EOF.
func (p *parser) scan() (string, bool) {
	for {
		tok := p.s.Scan()
		switch tok {
		case scanner.EOF:
			return "", false
		case scanner.Ident:
		default:
			p.errorf(p.s.Position, "unexpected character %s", strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s != "(" {
			return s, true
		}
		start := p.s.Position
		for {
			tok = p.s.Scan()
			if tok == scanner.EOF {
				p.errorf(start, "unterminated comment")
				return "", false
			}
			if p.s.TokenText() == ")" {
				break
			}
		}
	}
}

// value parses an integer literal or named constant.
func (p *parser) value(s string) (vm.Cell, bool) {
	if isNumber(s) {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			p.errorf(p.s.Position, "invalid integer %s", s)
			return 0, false
		}
		return vm.Cell(n), true
	}
	if c, ok := p.consts[s]; ok {
		return c.value, true
	}
	return 0, false
}

// directiveValue scans the argument of a directive, which must be an integer
// or named constant.
func (p *parser) directiveValue(directive string) (vm.Cell, bool) {
	s, ok := p.scan()
	if !ok {
		p.errorf(p.s.Position, "%s: missing argument", directive)
		return 0, false
	}
	v, ok := p.value(s)
	if !ok && !isNumber(s) {
		p.errorf(p.s.Position, "%s: expected integer or constant, got %s", directive, s)
	}
	return v, ok
}

// operand compiles an integer, constant or label reference.
func (p *parser) operand(s string) {
	if v, ok := p.value(s); ok {
		p.write(v)
		return
	}
	if isNumber(s) {
		// error already reported
		p.write(0)
		return
	}
	lbl := p.labels[s]
	if lbl == nil {
		lbl = &label{labelSite{p.s.Position, -1}, nil}
		p.labels[s] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
	p.write(0)
}

// argument compiles argument n of instruction m. It returns false at EOF.
func (p *parser) argument(m mnemonic, n int) bool {
	s, ok := p.scan()
	if !ok {
		p.errorf(p.s.Position, "%s: missing argument %d", m.name, n+1)
		return false
	}
	switch {
	case s[0] == ':':
		p.errorf(p.s.Position, "unexpected label definition as argument: %s", s)
	case s[0] == '.':
		p.errorf(p.s.Position, "unexpected directive as argument: %s", s)
	default:
		if _, ok := p.ops[s]; ok {
			p.errorf(p.s.Position, "unexpected instruction as argument: %s", s)
			return true
		}
		p.operand(s)
	}
	return true
}

func (p *parser) defineLabel(name string) {
	pos := p.s.Position
	if len(name) == 0 {
		p.errorf(pos, "empty label name")
		return
	}
	if c, ok := p.consts[name]; ok {
		p.errorf(pos, "label redefinition: %s, previously defined as a constant here: %s", name, c.pos)
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.errorf(pos, "label redefinition: %s, previous definition here: %s", name, l.pos)
			return
		}
		l.labelSite = labelSite{pos, p.pc}
		return
	}
	p.labels[name] = &label{labelSite{pos, p.pc}, nil}
}

func (p *parser) directive(s string) {
	switch s {
	case ".org":
		if v, ok := p.directiveValue(s); ok {
			if v > maxOrg {
				p.errorf(p.s.Position, ".org: address %d out of range (max %d)", v, maxOrg)
				return
			}
			p.pc = int(v)
		}
	case ".dat":
		v, ok := p.scan()
		if !ok {
			p.errorf(p.s.Position, ".dat: missing argument")
			return
		}
		p.operand(v)
	case ".equ":
		name, ok := p.scan()
		if !ok {
			p.errorf(p.s.Position, ".equ: missing identifier")
			return
		}
		pos := p.s.Position
		if isNumber(name) || name[0] == ':' || name[0] == '.' {
			p.errorf(pos, ".equ: invalid identifier %s", name)
			return
		}
		if l, ok := p.labels[name]; ok {
			p.errorf(pos, ".equ: redefinition of %s, previously defined/used as a label here: %s", name, l.pos)
			return
		}
		if v, ok := p.directiveValue(s); ok {
			p.consts[name] = constant{pos, v}
		}
	case ".opcode":
		name, ok := p.scan()
		if !ok {
			p.errorf(p.s.Position, ".opcode: missing identifier")
			return
		}
		op, ok := p.directiveValue(s)
		if !ok {
			return
		}
		argc, ok := p.directiveValue(s)
		if !ok {
			return
		}
		if argc > maxArgs {
			p.errorf(p.s.Position, ".opcode: too many arguments for %s: %d (max %d)", name, argc, maxArgs)
			return
		}
		p.ops[name] = mnemonic{name, op, int(argc)}
	default:
		p.errorf(p.s.Position, "unknown directive: %s", s)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.errorf(pos, "%s", msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for s, ok := p.scan(); ok && len(p.errs) < maxErrors; s, ok = p.scan() {
		switch s[0] {
		case ':':
			p.defineLabel(s[1:])
		case '.':
			p.directive(s)
		default:
			m, ok := p.ops[s]
			if !ok {
				p.operand(s)
				break
			}
			p.write(m.op)
			for n := 0; n < m.argc; n++ {
				if !p.argument(m, n) {
					break
				}
			}
		}
	}

	// resolve labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.errorf(l.uses[0].pos, "undefined label %s", n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		p.errs.sort()
		return nil, p.errs
	}
	return p.i[:p.end], nil
}
