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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/vm"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
preset = "Arithmetic"
max-steps = 1000
result = 3

[[patch]]
addr = 1
value = 12

[[patch]]
addr = 2
value = 2
`)
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if c.MaxSteps != 1000 || c.Result != 3 || len(c.Patches) != 2 {
		t.Fatalf("Bad config %+v", c)
	}
	if l, err := c.Level(); err != nil || l != vm.LevelArithmetic {
		t.Errorf("Bad level %v, %v", l, err)
	}

	i, err := vm.New([]vm.Cell{1, 0, 0, 3, 99})
	if err != nil {
		t.Fatal(err)
	}
	c.Apply(i)
	for _, p := range c.Patches {
		if v, _ := i.Read(p.Addr); v != p.Value {
			t.Errorf("Cell %d = %d, want %d", p.Addr, v, p.Value)
		}
	}
}

func TestLoad_errors(t *testing.T) {
	for _, content := range []string{
		`preset = "bogus"`,
		`unknown = 1`,
		`max-steps = "many"`,
	} {
		path := writeConfig(t, t.TempDir(), content)
		if _, err := config.Load(path); err == nil {
			t.Errorf("%q: expected error", content)
		}
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "preset = \"halt\"\n")
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	c, err := config.FindAndLoad(sub)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if l, _ := c.Level(); l != vm.LevelHalt {
		t.Errorf("Bad level %v", l)
	}
}
