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

// The intcode command line tool runs, assembles and disassembles Intcode
// programs with the package github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode [global options] command [command options] <file>
//
// Global options:
//
//	--config value, -c value	configuration file (default: intcode.toml in the
//					current directory or any of its parents)
//	--verbose value, -v value	log verbosity
//	--debug				print full stack traces on errors
//
// Commands:
//
//	run	run a program
//	resume	resume a saved run
//	disasm	disassemble a program
//	asm	assemble a source file
//	opcodes	list the opcodes of a preset
//
// run: loads a comma separated program, applies memory patches and runs it to
// completion. On success, the value of the result cell (cell 0 by default) is
// printed as "Computer finished with: <value>". Otherwise "Computer threw error"
// is printed and the exit status is 1.
//
//	--noun value, --verb value	set cell 1 and cell 2 respectively
//	--set addr=value		set any cell (can be specified multiple times)
//	--preset value			opcode preset: halt or arithmetic
//	--max-steps value		abort after this many instructions
//	--result value			address of the result cell
//	--dump				dump memory upon exit
//	--stats				print execution statistics
//	--trace				log every instruction before its execution
//	--save file			save the final instance state to file
//
// When --save is given and the run stops at --max-steps, "Computer paused at
// <pc>" is printed instead of an error. The saved state can be continued with:
//
//	intcode resume [--max-steps n] [--save file] <file>
//
// resume accepts the same options as run, except --noun, --verb and --set.
//
// Patches are applied in order: configuration file, --noun/--verb, --set.
// No cell is patched by default. Gravity assist programs expect the "1202
// program alarm" state, noun 12 and verb 2, which is obtained with:
//
//	intcode run --noun 12 --verb 2 <file>
//
// or with the two patches of the sample configuration below.
//
// The configuration file can set defaults for most run options:
//
//	preset = "arithmetic"
//	max-steps = 1000000
//	result = 0
//	verbosity = 1
//
//	[[patch]]
//	addr = 1
//	value = 12
//
//	[[patch]]
//	addr = 2
//	value = 2
package main
