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

// Package vm implements an Intcode computer.
//
// An Intcode program is a flat array of integers where code and data share a
// single address space. The computer fetches the opcode at the instruction
// pointer, looks up the Handler bound to it and hands over control. Handlers
// read their own operands, write their result, and advance the instruction
// pointer or change the run state as needed. Only three opcodes are built in
// (add, mul and halt); new opcodes are added with Bind or Register.
//
// Memory is split in two: the primary region is the program as loaded, and a
// sparse overflow region holds any address written past its end. Reading an
// overflow address that was never written is an error, not a zero.
//
// Data dependent failures (bad address, unknown opcode, arithmetic overflow)
// never panic. They move the Instance to the Error state, where the cause can be
// retrieved with Err. An Instance is not safe for concurrent use.
//
// Run does not bound execution: a program that never halts will loop forever.
// Use RunN or RunContext when a bound is required.
package vm
