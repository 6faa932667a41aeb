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
	"sort"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

type mnemonic struct {
	name string
	op   vm.Cell
	argc int
}

var mnemonics = [...]mnemonic{
	{"add", vm.OpAdd, 3},
	{"mul", vm.OpMul, 3},
	{"halt", vm.OpHalt, 0},
}

var opcodeIndex = make(map[vm.Cell]mnemonic)

func init() {
	for _, m := range mnemonics {
		opcodeIndex[m.op] = m
	}
}

// Mnemonic returns the assembler mnemonic of a built-in opcode.
func Mnemonic(op vm.Cell) (string, bool) {
	m, ok := opcodeIndex[op]
	return m.name, ok
}

// Error is a single assembly error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm lists the errors found while assembling a source file, in order of
// appearance.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for n := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[n].Error())
	}
	return b.String()
}

func (e ErrAsm) sort() {
	sort.SliceStable(e, func(i, j int) bool { return e[i].Pos.Offset < e[j].Pos.Offset })
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) ([]vm.Cell, error) {
	return newParser().Parse(name, r)
}

// Disassemble writes a disassembly of the instruction at position pc in mem to
// the specified io.Writer and returns the position of the next instruction and
// any write error.
//
// Cells that are not a known opcode, or an opcode whose arguments run past the
// end of mem, are written as a .dat directive.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)
	op := mem[pc]
	m, ok := opcodeIndex[op]
	if !ok || pc+m.argc >= len(mem) {
		io.WriteString(ew, ".dat ")
		ew.WriteUint(uint64(op))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, m.name)
	for n := 1; n <= m.argc; n++ {
		ew.Write([]byte{' '})
		ew.WriteUint(uint64(mem[pc+n]))
	}
	return pc + 1 + m.argc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
