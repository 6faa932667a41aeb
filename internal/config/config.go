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

// Package config handles intcode.toml run configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// FileName is the name of the configuration file looked up by FindAndLoad.
const FileName = "intcode.toml"

// Config is the run configuration of the intcode command.
type Config struct {
	// Preset names the opcode bundle: "halt" or "arithmetic".
	Preset string `toml:"preset"`
	// MaxSteps bounds execution. Zero or less means no bound.
	MaxSteps int64 `toml:"max-steps"`
	// Result is the address of the cell printed after a successful run.
	Result vm.Cell `toml:"result"`
	// Verbosity of the log output.
	Verbosity int `toml:"verbosity"`
	// Patches are applied to memory, in order, before running.
	Patches []Patch `toml:"patch"`
}

// Patch sets a memory cell.
type Patch struct {
	Addr  vm.Cell `toml:"addr"`
	Value vm.Cell `toml:"value"`
}

var levels = map[string]vm.Level{
	"halt":       vm.LevelHalt,
	"arithmetic": vm.LevelArithmetic,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Preset: "arithmetic",
	}
}

// Load parses the configuration file at path. Unset values keep their
// defaults.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("%s: unknown key %q", path, keys[0].String())
	}
	if _, err := c.Level(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find an intcode.toml file and loads
// it. It returns the default configuration if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", startDir)
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Level returns the vm preset level named by c.Preset.
func (c *Config) Level() (vm.Level, error) {
	l, ok := levels[strings.ToLower(c.Preset)]
	if !ok {
		return 0, errors.Errorf("unknown preset %q", c.Preset)
	}
	return l, nil
}

// Apply writes all patches to the memory of i.
func (c *Config) Apply(i *vm.Instance) {
	for _, p := range c.Patches {
		i.Write(p.Addr, p.Value)
	}
}
