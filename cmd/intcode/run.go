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

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/vm"
	"github.com/dsnet/golib/unitconv"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"github.com/urfave/cli/v2"
)

// execFlags are the flags shared by the run and resume commands.
var execFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "preset",
		Usage: "opcode preset: halt or arithmetic",
	},
	&cli.Int64Flag{
		Name:  "max-steps",
		Usage: "abort after the given number of instructions",
	},
	&cli.Uint64Flag{
		Name:  "result",
		Usage: "address of the result cell",
	},
	&cli.BoolFlag{
		Name:  "dump",
		Usage: "dump memory upon exit",
	},
	&cli.BoolFlag{
		Name:  "stats",
		Usage: "print execution statistics",
	},
	&cli.BoolFlag{
		Name:  "trace",
		Usage: "log every instruction before its execution",
	},
	&cli.StringFlag{
		Name:  "save",
		Usage: "save the final instance state to `FILE`",
	},
}

var runCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run an Intcode program",
	ArgsUsage: "<program>",
	Flags: append([]cli.Flag{
		&cli.Uint64Flag{
			Name:  "noun",
			Usage: "value of cell 1",
		},
		&cli.Uint64Flag{
			Name:  "verb",
			Usage: "value of cell 2",
		},
		&cli.StringSliceFlag{
			Name:  "set",
			Usage: "set a memory cell, as `ADDR=VALUE`",
		},
	}, execFlags...),
}

var resumeCmd = cli.Command{
	Action:    doResume,
	Name:      "resume",
	Usage:     "Resume execution from a saved instance state",
	ArgsUsage: "<state>",
	Flags:     execFlags,
}

func parsePatch(s string) (addr, value vm.Cell, err error) {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, errors.Errorf("invalid patch %q: expected ADDR=VALUE", s)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(a), 0, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid patch address %q", a)
	}
	m, err := strconv.ParseUint(strings.TrimSpace(v), 0, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid patch value %q", v)
	}
	return vm.Cell(n), vm.Cell(m), nil
}

// runConfig returns the configuration overridden by command line flags.
func runConfig(ctx *cli.Context) (config.Config, vm.Level, error) {
	c := *cfg
	if ctx.IsSet("preset") {
		c.Preset = ctx.String("preset")
	}
	if ctx.IsSet("max-steps") {
		c.MaxSteps = ctx.Int64("max-steps")
	}
	if ctx.IsSet("result") {
		c.Result = vm.Cell(ctx.Uint64("result"))
	}
	level, err := c.Level()
	return c, level, err
}

func doRun(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return errors.New("run: expected exactly one program file")
	}
	fileName := ctx.Args().First()

	c, level, err := runConfig(ctx)
	if err != nil {
		return err
	}
	prog, err := vm.Load(fileName)
	if err != nil {
		return err
	}
	i, err := vm.New(prog, vm.Preset(level))
	if err != nil {
		return err
	}

	c.Apply(i)
	if ctx.IsSet("noun") {
		i.Write(1, vm.Cell(ctx.Uint64("noun")))
	}
	if ctx.IsSet("verb") {
		i.Write(2, vm.Cell(ctx.Uint64("verb")))
	}
	for _, s := range ctx.StringSlice("set") {
		addr, v, err := parsePatch(s)
		if err != nil {
			return err
		}
		i.Write(addr, v)
	}

	log.Infof("loaded %s: %d cells, opcodes %v", fileName, i.Memory().Len(), i.Opcodes())
	return runInstance(ctx, &c, i)
}

func doResume(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return errors.New("resume: expected exactly one state file")
	}
	fileName := ctx.Args().First()

	c, level, err := runConfig(ctx)
	if err != nil {
		return err
	}
	s, err := vm.LoadSnapshot(fileName)
	if err != nil {
		return err
	}
	i, err := vm.New(nil, vm.Preset(level))
	if err != nil {
		return err
	}
	if err = i.Restore(s); err != nil {
		return err
	}

	log.Infof("resuming %s: pc %d, %d instructions executed, state %v", fileName, i.PC, i.InstructionCount(), i.State())
	return runInstance(ctx, &c, i)
}

// runInstance executes i and reports the outcome according to the command
// line flags.
func runInstance(ctx *cli.Context, c *config.Config, i *vm.Instance) error {
	trace := ctx.Bool("trace")
	if trace && verbose < debugVerbosity {
		commonlog.Configure(debugVerbosity, nil)
	}

	start := time.Now()
	n := i.InstructionCount()
	st, runErr := execute(i, c.MaxSteps, trace)
	elapsed := time.Since(start)

	w := ctx.App.Writer
	if ctx.Bool("stats") {
		count := i.InstructionCount() - n
		rate := float64(count)
		if s := elapsed.Seconds(); s > 0 {
			rate /= s
		}
		fmt.Fprintf(ctx.App.ErrWriter, "Executed %d instructions in %.3fs. Perf: %sIPS\n",
			count, elapsed.Seconds(), unitconv.FormatPrefix(rate, unitconv.SI, 2))
	}
	if ctx.Bool("dump") {
		if err := dumpVM(i, w); err != nil {
			return err
		}
	}
	if fileName := ctx.String("save"); fileName != "" {
		if err := vm.SaveSnapshot(fileName, i.Snapshot()); err != nil {
			return err
		}
		if errors.Cause(runErr) == vm.ErrStepLimit {
			fmt.Fprintf(w, "Computer paused at %d\n", i.PC)
			return nil
		}
	}
	if runErr != nil {
		return runErr
	}

	if st != vm.Finished {
		fmt.Fprintln(w, "Computer threw error")
		if debug {
			log.Errorf("%+v", i.Err())
		} else {
			log.Errorf("%v", i.Err())
		}
		return cli.Exit("", 1)
	}
	v, err := i.Read(c.Result)
	if err != nil {
		return errors.Wrap(err, "could not get result cell")
	}
	fmt.Fprintf(w, "Computer finished with: %d\n", v)
	return nil
}

// execute runs i until it reaches a terminal state or executes maxSteps
// instructions if maxSteps > 0. If trace is true, each instruction is logged
// before its execution.
func execute(i *vm.Instance, maxSteps int64, trace bool) (vm.RunState, error) {
	if !trace {
		if maxSteps > 0 {
			return i.RunN(maxSteps)
		}
		return i.Run(), nil
	}
	var b strings.Builder
	for n := int64(0); maxSteps <= 0 || n < maxSteps; n++ {
		b.Reset()
		if mem := i.Memory().Primary(); i.PC < vm.Cell(len(mem)) {
			asm.Disassemble(mem, int(i.PC), &b)
		} else {
			b.WriteString("???")
		}
		log.Debugf("% 10d\t%s", i.PC, b.String())
		if i.Step() != vm.Runnable {
			return i.State(), nil
		}
	}
	return i.State(), errors.Wrapf(vm.ErrStepLimit, "%d steps", maxSteps)
}
