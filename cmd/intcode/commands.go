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
	"bufio"
	"fmt"
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var disasmCmd = cli.Command{
	Action:    doDisasm,
	Name:      "disasm",
	Usage:     "Disassemble an Intcode program",
	ArgsUsage: "<program>",
}

var asmCmd = cli.Command{
	Action:    doAsm,
	Name:      "asm",
	Usage:     "Assemble a source file into an Intcode program",
	ArgsUsage: "<source>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the program to `FILE` instead of stdout",
		},
	},
}

var opcodesCmd = cli.Command{
	Action: doOpcodes,
	Name:   "opcodes",
	Usage:  "List the opcodes of a preset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "preset",
			Usage: "opcode preset: halt or arithmetic",
		},
	},
}

func singleArg(ctx *cli.Context) (string, error) {
	if ctx.Args().Len() != 1 {
		return "", errors.Errorf("%s: expected exactly one file argument", ctx.Command.Name)
	}
	return ctx.Args().First(), nil
}

func doDisasm(ctx *cli.Context) error {
	fileName, err := singleArg(ctx)
	if err != nil {
		return err
	}
	prog, err := vm.Load(fileName)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(ctx.App.Writer)
	if err = asm.DisassembleAll(prog, 0, w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write failed")
}

func doAsm(ctx *cli.Context) error {
	fileName, err := singleArg(ctx)
	if err != nil {
		return err
	}
	f, err := os.Open(fileName)
	if err != nil {
		return errors.Wrap(err, "asm")
	}
	defer f.Close()
	prog, err := asm.Assemble(fileName, bufio.NewReader(f))
	if err != nil {
		return err
	}
	log.Infof("assembled %s: %d cells", fileName, len(prog))
	if out := ctx.String("output"); out != "" {
		return vm.Save(out, prog)
	}
	return vm.Encode(ctx.App.Writer, prog)
}

func doOpcodes(ctx *cli.Context) error {
	c := config.Config{Preset: cfg.Preset}
	if ctx.IsSet("preset") {
		c.Preset = ctx.String("preset")
	}
	level, err := c.Level()
	if err != nil {
		return err
	}
	i, err := vm.New(nil, vm.Preset(level))
	if err != nil {
		return err
	}
	for _, op := range i.Opcodes() {
		name, ok := asm.Mnemonic(op)
		if !ok {
			name = "?"
		}
		fmt.Fprintf(ctx.App.Writer, "%d\t%s\n", op, name)
	}
	return nil
}
