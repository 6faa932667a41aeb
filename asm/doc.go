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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	args	description
//	------	----	----	--------------------------------------------------------
//	1	add	a b d	store the sum of the values at addresses a and b at address d
//	2	mul	a b d	store the product of the values at addresses a and b at address d
//	99	halt		stop execution
//
// Arguments are addresses, not values: "add 9 10 3" adds the contents of cells 9
// and 10.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not )
//
// Literals, labels and constants:
//
// Input is split at white space into tokens. A token starting with a digit or
// sign must be an unsigned integer as accepted by strconv.ParseUint with base 0
// (i.e. 42, 0x2a, 0o52, 0b101010). Where an instruction is expected, integers
// and constants are compiled as raw data cells. Any other identifier that is
// not a mnemonic is a label reference and compiles as the label address.
//
// Labels are defined by prefixing them with a colon and can be used before
// their definition:
//
//	add x y x	( x = x + y )
//	halt
//	:x 30
//	:y 12
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer or a named constant.
//
//	.org <value>
//
// places the next cell at the specified address, at most 1<<20. Skipped cells
// are zero.
//
//	.dat <value>
//
// compiles the given integer, constant or label address as is. This is what
// Disassemble emits for cells that do not decode to an instruction.
//
//	.opcode <name> <value> <argc>
//
// defines a new mnemonic for opcode value, taking up to 16 arguments. It is
// meant to be used along with custom vm handlers.
package asm
