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

package vm

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Cell is the raw type stored in a memory location. Cells double as addresses.
type Cell uint64

// Memory is the address space of an Instance. Addresses below Len are backed by
// a dense slice holding the loaded program. Addresses past it live in a sparse
// map that is only allocated on the first such write.
type Memory struct {
	primary  []Cell
	overflow map[Cell]Cell
}

// NewMemory returns a Memory with program as its primary region. The slice is
// used as is, not copied.
func NewMemory(program []Cell) *Memory {
	return &Memory{primary: program}
}

// Load replaces the primary region with program and drops every overflow cell.
func (m *Memory) Load(program []Cell) {
	m.primary = program
	m.overflow = nil
}

// Len returns the size of the primary region.
func (m *Memory) Len() int {
	return len(m.primary)
}

// Read returns the value at addr. It fails with ErrOutOfBounds if addr is past
// the primary region and was never written.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < Cell(len(m.primary)) {
		return m.primary[addr], nil
	}
	if v, ok := m.overflow[addr]; ok {
		return v, nil
	}
	return 0, errors.Wrapf(ErrOutOfBounds, "read %d", addr)
}

// Write stores v at addr.
func (m *Memory) Write(addr, v Cell) {
	if addr < Cell(len(m.primary)) {
		m.primary[addr] = v
		return
	}
	if m.overflow == nil {
		m.overflow = make(map[Cell]Cell)
	}
	m.overflow[addr] = v
}

// Primary returns the primary region. Changes to the returned slice are
// reflected in memory.
func (m *Memory) Primary() []Cell {
	return m.primary
}

// Overflow returns the addresses of all overflow cells in ascending order.
func (m *Memory) Overflow() []Cell {
	addrs := maps.Keys(m.overflow)
	slices.Sort(addrs)
	return addrs
}
