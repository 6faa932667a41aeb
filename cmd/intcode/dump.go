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
	"io"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// dumpVM dumps the instance state and memory to the specified io.Writer: a
// status line, the primary memory in program format, then one addr=value line
// per overflow cell.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	mem := i.Memory()
	io.WriteString(ew, "pc=")
	ew.WriteUint(uint64(i.PC))
	io.WriteString(ew, " state=")
	io.WriteString(ew, i.State().String())
	ew.Write([]byte{'\n'})
	if ew.Err != nil {
		return ew.Err
	}
	if err := vm.Encode(ew, mem.Primary()); err != nil {
		return err
	}
	for _, addr := range mem.Overflow() {
		v, _ := mem.Read(addr)
		ew.WriteUint(uint64(addr))
		ew.Write([]byte{'='})
		ew.WriteUint(uint64(v))
		ew.Write([]byte{'\n'})
	}
	return ew.Err
}
