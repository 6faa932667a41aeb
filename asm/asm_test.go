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

package asm_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"pgregory.net/rand"
)

type C = []vm.Cell

func TestAssemble(t *testing.T) {
	data := []struct {
		name string
		code string
		want C
	}{
		{"add_mul", "add a b 3 mul 3 c 0 halt :a 30 :b 40 :c 50", C{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"raw", "1 0 0 0 99", C{1, 0, 0, 0, 99}},
		{"dat", ".dat 2 .dat 4 .dat 4 .dat end halt :end .dat 0", C{2, 4, 4, 5, 99, 0}},
		{"equ", ".equ RESULT 0 add RESULT RESULT RESULT halt", C{1, 0, 0, 0, 99}},
		{"org", "halt .org 4 0x2a", C{99, 0, 0, 0, 42}},
		{"comment", "( sum ) add 0 0 0 ( store in 0 ) halt", C{1, 0, 0, 0, 99}},
		{"opcode", ".opcode jmp 5 1 :top jmp top", C{5, 0}},
		{"forward_backward", ":start add start end end :end halt", C{1, 0, 4, 4, 99}},
		{"empty", "( nothing )", nil},
	}
	for _, d := range data {
		got, err := asm.Assemble(d.name, strings.NewReader(d.code))
		if err != nil {
			t.Errorf("%s: %v", d.name, err)
			continue
		}
		if !slices.Equal(got, d.want) {
			t.Errorf("%s: %v != %v", d.name, got, d.want)
		}
	}
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	add 0 0 undef
	:dup :dup
	-1
	.equ dup 3
	.org foo
	.bogus
	add 0 halt 1
`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	if err == nil {
		t.Fatal("Expected errors")
	}
	errs, ok := err.(asm.ErrAsm)
	if !ok {
		t.Fatalf("Bad error type %T", err)
	}
	want := []string{"undef", ":dup", "-1", "dup", "foo", ".bogus", "halt"}
	if len(errs) != len(want) {
		t.Fatalf("Expected %d errors, got %d:\n%v", len(want), len(errs), err)
	}
	for n, e := range errs {
		o := e.Pos.Offset
		if !strings.HasPrefix(code[o:], want[n]) {
			t.Errorf("Error %q points to %q, expected %q", e.Msg, code[o:o+len(want[n])], want[n])
		}
	}
}

func TestAssemble_directiveLimits(t *testing.T) {
	data := []struct {
		name string
		code string
		err  string
		n    int
	}{
		{"org_wrap", ".org 18446744073709551615 99", "out of range", 1},
		{"org_large", ".org 0x100001 99", "out of range", 1},
		{"opcode_argc", ".opcode big 5 1099511627776 halt", "too many arguments", 1},
		{"truncated_args", ".opcode jmp 5 3 jmp 1", "missing argument 2", 1},
	}
	for _, d := range data {
		_, err := asm.Assemble(d.name, strings.NewReader(d.code))
		errs, ok := err.(asm.ErrAsm)
		if !ok {
			t.Errorf("%s: bad error %v", d.name, err)
			continue
		}
		if len(errs) != d.n || !strings.Contains(errs[0].Msg, d.err) {
			t.Errorf("%s: expected %d error(s) containing %q, got:\n%v", d.name, d.n, d.err, err)
		}
	}

	got, err := asm.Assemble("org_max", strings.NewReader(".org 0x100000 99"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(got) != 1<<20+1 || got[1<<20] != 99 {
		t.Errorf("bad .org placement: len %d", len(got))
	}
}

func TestAssemble_unterminatedComment(t *testing.T) {
	_, err := asm.Assemble("comment", strings.NewReader("halt ( oops"))
	if err == nil || !strings.Contains(err.Error(), "unterminated comment") {
		t.Errorf("Bad error %v", err)
	}
}

func TestDisassemble(t *testing.T) {
	data := []struct {
		mem  C
		pc   int
		want string
		next int
	}{
		{C{1, 9, 10, 3}, 0, "add 9 10 3", 4},
		{C{2, 3, 11, 0}, 0, "mul 3 11 0", 4},
		{C{99}, 0, "halt", 1},
		{C{1, 9, 10}, 0, ".dat 1", 1},
		{C{0, 42}, 1, ".dat 42", 2},
	}
	for _, d := range data {
		var b bytes.Buffer
		next, err := asm.Disassemble(d.mem, d.pc, &b)
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != d.want || next != d.next {
			t.Errorf("%v@%d: %q, %d != %q, %d", d.mem, d.pc, b.String(), next, d.want, d.next)
		}
	}
}

// a disassembly, minus addresses, must assemble to the original program.
func TestDisassemble_roundTrip(t *testing.T) {
	rnd := rand.New(0)
	ops := C{vm.OpAdd, vm.OpMul, vm.OpHalt, 0, 7}
	for n := 0; n < 100; n++ {
		prog := make(C, 1+rnd.Intn(40))
		for k := range prog {
			if rnd.Intn(2) == 0 {
				prog[k] = ops[rnd.Intn(len(ops))]
			} else {
				prog[k] = vm.Cell(rnd.Uint64())
			}
		}
		var b bytes.Buffer
		for pc := 0; pc < len(prog); {
			pc, _ = asm.Disassemble(prog, pc, &b)
			b.WriteByte('\n')
		}
		got, err := asm.Assemble("round_trip", &b)
		if err != nil {
			t.Fatalf("%v: %v", prog, err)
		}
		if !slices.Equal(got, prog) {
			t.Fatalf("%v != %v", got, prog)
		}
	}
}
