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
	"math/bits"

	"github.com/pkg/errors"
)

//go:generate mockgen -source opcodes.go -destination handler_mock.go -package vm

// Built-in opcodes.
const (
	OpAdd  Cell = 1
	OpMul  Cell = 2
	OpHalt Cell = 99
)

// Handler is the behavior bound to an opcode. Exec is called with the address
// of the opcode being executed, which is also the current PC. It must read its
// own operands, write its result and advance the PC or change the run state.
//
// Handlers should report failures with Instance.Fail rather than panic.
type Handler interface {
	Exec(i *Instance, addr Cell)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(i *Instance, addr Cell)

// Exec calls f(i, addr).
func (f HandlerFunc) Exec(i *Instance, addr Cell) { f(i, addr) }

// BinaryOp combines two operands. It returns an error if the result cannot be
// represented.
type BinaryOp func(x, y Cell) (Cell, error)

// Binary is a handler for four cell instructions: opcode, src1, src2, dst. The
// values at addresses src1 and src2 are combined with Op and the result is
// stored at address dst. The PC is then advanced by 4.
type Binary struct {
	Name string
	Op   BinaryOp
}

// Exec implements Handler.
func (b Binary) Exec(i *Instance, addr Cell) {
	var args [3]Cell
	for n := range args {
		v, err := i.Read(addr + Cell(n) + 1)
		if err != nil {
			i.Fail(errors.Wrapf(err, "%s at %d: operand %d", b.Name, addr, n+1))
			return
		}
		args[n] = v
	}
	x, err := i.Read(args[0])
	if err != nil {
		i.Fail(errors.Wrapf(err, "%s at %d: first value", b.Name, addr))
		return
	}
	y, err := i.Read(args[1])
	if err != nil {
		i.Fail(errors.Wrapf(err, "%s at %d: second value", b.Name, addr))
		return
	}
	r, err := b.Op(x, y)
	if err != nil {
		i.Fail(errors.Wrapf(err, "%s at %d", b.Name, addr))
		return
	}
	i.Write(args[2], r)
	i.Advance(4)
}

type halt struct{}

func (halt) Exec(i *Instance, _ Cell) { i.SetState(Finished) }

// Built-in handlers.
var (
	Add  Handler = Binary{"add", add}
	Mul  Handler = Binary{"mul", mul}
	Halt Handler = halt{}
)

func add(x, y Cell) (Cell, error) {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	if carry != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", x, y)
	}
	return Cell(s), nil
}

func mul(x, y Cell) (Cell, error) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", x, y)
	}
	return Cell(lo), nil
}

// Level selects a preset bundle of handlers for the Preset option.
type Level int

// Preset levels.
const (
	LevelHalt       Level = iota // halt only
	LevelArithmetic              // halt, add and mul
)

var presets = map[Level]map[Cell]Handler{
	LevelHalt: {
		OpHalt: Halt,
	},
	LevelArithmetic: {
		OpHalt: Halt,
		OpAdd:  Add,
		OpMul:  Mul,
	},
}
