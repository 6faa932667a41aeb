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
	"os"

	"github.com/db47h/intcode/internal/config"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/urfave/cli/v2"
)

var log = commonlog.GetLogger("intcode")

// verbosity at which commonlog enables debug messages.
const debugVerbosity = 2

var (
	cfg     = config.Default()
	verbose int
	debug   bool
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "intcode",
		Usage:     "Intcode computer",
		Copyright: "(c) 2019 Denis Bernard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.IntFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "log verbosity",
				Destination: &verbose,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "print full stack traces on errors",
				Destination: &debug,
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			&runCmd,
			&resumeCmd,
			&disasmCmd,
			&asmCmd,
			&opcodesCmd,
		},
	}
}

// setup loads the configuration and configures logging.
func setup(ctx *cli.Context) error {
	var err error
	if path := ctx.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}
	if !ctx.IsSet("verbose") {
		verbose = cfg.Verbosity
	}
	commonlog.Configure(verbose, nil)
	return nil
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func main() {
	atExit(newApp().Run(os.Args))
}
