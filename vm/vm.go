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
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// RunState is the execution status of an Instance.
type RunState int

// Run states. Error and Finished are terminal.
const (
	Runnable RunState = iota
	Error
	Finished
)

func (s RunState) String() string {
	switch s {
	case Runnable:
		return "runnable"
	case Error:
		return "error"
	case Finished:
		return "finished"
	}
	return "RunState(" + strconv.Itoa(int(s)) + ")"
}

// Instance represents an Intcode computer.
type Instance struct {
	PC       Cell // Instruction Pointer
	mem      Memory
	ops      map[Cell]Handler
	state    RunState
	err      error
	insCount int64
}

// Option configures an Instance. Options are applied in order by New and
// SetOptions.
type Option func(*Instance) error

// Bind binds handler h to opcode op. See Register.
func Bind(op Cell, h Handler) Option {
	return func(i *Instance) error {
		if h == nil {
			return errors.Errorf("nil handler for opcode %d", op)
		}
		i.Register(op, h)
		return nil
	}
}

// Preset binds every handler of the given preset level.
func Preset(l Level) Option {
	return func(i *Instance) error {
		hs, ok := presets[l]
		if !ok {
			return errors.Errorf("unknown preset level %d", l)
		}
		for op, h := range hs {
			i.Register(op, h)
		}
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode computer with program loaded in memory. The opcode
// table is empty unless handlers are bound with the Bind or Preset options.
//
// The program slice becomes the primary memory region and will be modified
// in place during execution.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: Memory{primary: program},
		ops: make(map[Cell]Handler),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Load replaces the memory contents with program. The overflow region is
// cleared, and the PC, run state, error and instruction count are reset.
// Registered handlers are kept.
func (i *Instance) Load(program []Cell) {
	i.mem.Load(program)
	i.PC = 0
	i.state = Runnable
	i.err = nil
	i.insCount = 0
}

// Register binds handler h to opcode op, replacing any previous binding.
func (i *Instance) Register(op Cell, h Handler) {
	i.ops[op] = h
}

// Handler returns the handler bound to opcode op.
func (i *Instance) Handler(op Cell) (Handler, bool) {
	h, ok := i.ops[op]
	return h, ok
}

// Opcodes returns all registered opcodes in ascending order.
func (i *Instance) Opcodes() []Cell {
	ops := maps.Keys(i.ops)
	slices.Sort(ops)
	return ops
}

// Memory returns the instance memory.
func (i *Instance) Memory() *Memory {
	return &i.mem
}

// Read returns the value at address addr. See Memory.Read.
func (i *Instance) Read(addr Cell) (Cell, error) {
	return i.mem.Read(addr)
}

// Write stores v at address addr.
func (i *Instance) Write(addr, v Cell) {
	i.mem.Write(addr, v)
}

// Advance moves the PC forward by delta cells. The new PC is not checked: if it
// lands outside valid memory, the next fetch fails and the instance moves to the
// Error state.
func (i *Instance) Advance(delta Cell) {
	i.PC += delta
}

// State returns the current run state.
func (i *Instance) State() RunState {
	return i.state
}

// SetState sets the run state. Halt handlers use it to stop execution.
func (i *Instance) SetState(s RunState) {
	i.state = s
}

// Fail moves the instance to the Error state and records err as the cause.
func (i *Instance) Fail(err error) {
	i.state = Error
	i.err = err
}

// Err returns the error that caused the Error state, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed since the
// program was loaded.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
