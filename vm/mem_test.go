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

package vm_test

import (
	"slices"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"pgregory.net/rand"
)

func randomProgram(rnd *rand.Rand) C {
	prog := make(C, 1+rnd.Intn(64))
	for k := range prog {
		prog[k] = vm.Cell(rnd.Uint64n(1 << 16))
	}
	return prog
}

func TestMemory_ReadPrimary(t *testing.T) {
	rnd := rand.New(0)
	for n := 0; n < 100; n++ {
		prog := randomProgram(rnd)
		i, err := vm.New(slices.Clone(prog))
		if err != nil {
			t.Fatal(err)
		}
		for a, want := range prog {
			got, err := i.Read(vm.Cell(a))
			if err != nil {
				t.Fatalf("Read(%d): %+v", a, err)
			}
			if got != want {
				t.Fatalf("Read(%d) = %d, want %d", a, got, want)
			}
		}
	}
}

func TestMemory_OutOfBounds(t *testing.T) {
	rnd := rand.New(1)
	for n := 0; n < 100; n++ {
		prog := randomProgram(rnd)
		m := vm.NewMemory(prog)
		a := vm.Cell(len(prog)) + vm.Cell(rnd.Uint64n(1<<20))
		if _, err := m.Read(a); errors.Cause(err) != vm.ErrOutOfBounds {
			t.Fatalf("Read(%d) past %d cells: expected ErrOutOfBounds, got %v", a, len(prog), err)
		}
	}
	var empty vm.Memory
	if _, err := empty.Read(0); errors.Cause(err) != vm.ErrOutOfBounds {
		t.Errorf("Read(0) on empty memory: expected ErrOutOfBounds, got %v", err)
	}
}

func TestMemory_OverflowRoundTrip(t *testing.T) {
	rnd := rand.New(2)
	for n := 0; n < 100; n++ {
		prog := randomProgram(rnd)
		m := vm.NewMemory(slices.Clone(prog))
		a := vm.Cell(len(prog)) + vm.Cell(rnd.Uint64n(1<<40))
		v := vm.Cell(rnd.Uint64())
		m.Write(a, v)
		got, err := m.Read(a)
		if err != nil {
			t.Fatalf("Read(%d): %+v", a, err)
		}
		if got != v {
			t.Fatalf("Read(%d) = %d, want %d", a, got, v)
		}
		if m.Len() != len(prog) || !slices.Equal(m.Primary(), prog) {
			t.Fatalf("overflow write to %d changed the primary region", a)
		}
	}
}

func TestMemory_WriteZero(t *testing.T) {
	m := vm.NewMemory(C{1, 2, 3})
	m.Write(100, 0)
	if v, err := m.Read(100); err != nil || v != 0 {
		t.Errorf("Read(100) = %d, %v", v, err)
	}
	if _, err := m.Read(99); errors.Cause(err) != vm.ErrOutOfBounds {
		t.Errorf("Read(99): expected ErrOutOfBounds, got %v", err)
	}
}

func TestMemory_Load(t *testing.T) {
	m := vm.NewMemory(C{1, 2, 3})
	m.Write(10, 7)
	m.Write(5, 8)
	if o := m.Overflow(); !slices.Equal(o, []vm.Cell{5, 10}) {
		t.Fatalf("Bad overflow addresses %v", o)
	}
	m.Load(C{4, 5, 6, 7, 8, 9})
	if o := m.Overflow(); len(o) != 0 {
		t.Errorf("Overflow not cleared: %v", o)
	}
	if v, _ := m.Read(5); v != 9 {
		t.Errorf("Read(5) = %d, want 9", v)
	}
	if _, err := m.Read(10); errors.Cause(err) != vm.ErrOutOfBounds {
		t.Errorf("Read(10): expected ErrOutOfBounds, got %v", err)
	}
}

func TestStep_haltProperty(t *testing.T) {
	rnd := rand.New(3)
	for n := 0; n < 100; n++ {
		prog := randomProgram(rnd)
		prog[0] = vm.OpHalt
		i := setup(t, prog)
		if st := i.Step(); st != vm.Finished {
			t.Fatalf("%v: Bad state %v", prog, st)
		}
		if !slices.Equal(i.Memory().Primary(), prog) {
			t.Fatalf("%v: memory changed to %v", prog, i.Memory().Primary())
		}
	}
}
