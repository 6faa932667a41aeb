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
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Parse reads a program in its text form: non-negative integers separated by
// commas. Whitespace around values is ignored, as is a trailing comma.
func Parse(r io.Reader) ([]Cell, error) {
	s := bufio.NewScanner(r)
	s.Split(scanCells)
	var prog []Cell
	for s.Scan() {
		tok := bytes.TrimSpace(s.Bytes())
		if len(tok) == 0 {
			return nil, errors.Errorf("cell %d: empty value", len(prog))
		}
		v, err := strconv.ParseUint(string(tok), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", len(prog))
		}
		prog = append(prog, Cell(v))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return prog, nil
}

// scanCells is a bufio.SplitFunc that splits on commas. The token after a
// trailing comma is dropped if it contains only whitespace.
func scanCells(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}
	if !atEOF {
		return 0, nil, nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return len(data), nil, nil
	}
	return len(data), data, nil
}

// Load loads a program from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	prog, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return prog, nil
}

// Encode writes cells to w in the text form read by Parse, followed by a
// newline.
func Encode(w io.Writer, cells []Cell) error {
	bw := bufio.NewWriter(w)
	var b []byte
	for n, c := range cells {
		b = b[:0]
		if n > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendUint(b, uint64(c), 10)
		if _, err := bw.Write(b); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write failed")
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

// Save saves cells to file fileName in text form. The file is removed if
// writing fails.
func Save(fileName string, cells []Cell) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return Encode(f, cells)
}
