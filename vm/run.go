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
	"context"

	"github.com/pkg/errors"
)

// number of steps between two context checks in RunContext.
const ctxCheckInterval = 1024

// Step executes a single instruction and returns the resulting run state. Once
// the instance is in a terminal state, Step does nothing and returns that state.
//
// If the opcode at PC cannot be read or has no handler, the instance moves to
// the Error state. A handler that panics also leaves the instance in the Error
// state.
func (i *Instance) Step() RunState {
	if i.state != Runnable {
		return i.state
	}
	op, err := i.mem.Read(i.PC)
	if err != nil {
		i.Fail(errors.Wrap(err, "fetch"))
		return i.state
	}
	h, ok := i.ops[op]
	if !ok {
		i.Fail(errors.Wrapf(ErrUnregisteredOpcode, "opcode %d at %d", op, i.PC))
		return i.state
	}
	i.exec(h, op)
	i.insCount++
	return i.state
}

func (i *Instance) exec(h Handler, op Cell) {
	pc := i.PC
	defer func() {
		if e := recover(); e != nil {
			i.Fail(errors.Errorf("opcode %d at %d: %v", op, pc, e))
		}
	}()
	h.Exec(i, pc)
}

// Run steps the instance until it reaches a terminal state and returns it.
// There is no step limit: a program that never halts will run forever.
func (i *Instance) Run() RunState {
	for i.Step() == Runnable {
	}
	return i.state
}

// RunN executes at most max instructions. If the instance is still runnable
// afterwards, it returns Runnable and ErrStepLimit.
func (i *Instance) RunN(max int64) (RunState, error) {
	for n := int64(0); n < max; n++ {
		if i.Step() != Runnable {
			return i.state, nil
		}
	}
	if i.state == Runnable {
		return i.state, errors.Wrapf(ErrStepLimit, "%d steps", max)
	}
	return i.state, nil
}

// RunContext is like Run, but stops early when ctx is done. In that case, it
// returns Runnable and the context error. The instance can be resumed later.
func (i *Instance) RunContext(ctx context.Context) (RunState, error) {
	if i.state != Runnable {
		return i.state, nil
	}
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return i.state, err
			}
		}
		if i.Step() != Runnable {
			return i.state, nil
		}
	}
}
