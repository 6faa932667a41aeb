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
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// Snapshot is a serializable copy of the state of an Instance. Handlers are
// not part of a snapshot: the instance restoring it must have its own opcode
// table.
type Snapshot struct {
	PC       Cell          `cbor:"1,keyasint"`
	State    RunState      `cbor:"2,keyasint"`
	Primary  []Cell        `cbor:"3,keyasint"`
	Overflow map[Cell]Cell `cbor:"4,keyasint,omitempty"`
	Count    int64         `cbor:"5,keyasint,omitempty"`
	Err      string        `cbor:"6,keyasint,omitempty"` // message of the failure cause
}

var snapEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "vm: cbor encoding mode"))
	}
	snapEncMode = em
}

// Snapshot returns a copy of the current state of the instance.
func (i *Instance) Snapshot() *Snapshot {
	s := &Snapshot{
		PC:      i.PC,
		State:   i.state,
		Primary: append([]Cell(nil), i.mem.primary...),
		Count:   i.insCount,
	}
	if len(i.mem.overflow) > 0 {
		s.Overflow = make(map[Cell]Cell, len(i.mem.overflow))
		for a, v := range i.mem.overflow {
			s.Overflow[a] = v
		}
	}
	if i.err != nil {
		s.Err = i.err.Error()
	}
	return s
}

// Restore replaces the state of the instance with a copy of s. Registered
// handlers are kept.
func (i *Instance) Restore(s *Snapshot) error {
	switch s.State {
	case Runnable, Error, Finished:
	default:
		return errors.Errorf("invalid snapshot state %d", int(s.State))
	}
	i.mem.Load(append([]Cell(nil), s.Primary...))
	for a, v := range s.Overflow {
		i.mem.Write(a, v)
	}
	i.PC = s.PC
	i.state = s.State
	i.insCount = s.Count
	i.err = nil
	if s.Err != "" {
		i.err = errors.New(s.Err)
	}
	return nil
}

// MarshalSnapshot encodes s in canonical CBOR.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return snapEncMode.Marshal(s)
}

// UnmarshalSnapshot decodes a CBOR encoded snapshot.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "unmarshal snapshot")
	}
	return &s, nil
}

// SaveSnapshot writes s to the named file.
func SaveSnapshot(fileName string, s *Snapshot) error {
	data, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(fileName, data, 0666), "save snapshot")
}

// LoadSnapshot reads a snapshot from the named file.
func LoadSnapshot(fileName string) (*Snapshot, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	return UnmarshalSnapshot(data)
}
