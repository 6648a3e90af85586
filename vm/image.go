// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses program text: comma separated base 10 integers. Whitespace
// around values is ignored.
//
// Parse is permissive: tokens that are not valid integers are silently
// dropped, so the resulting program may be shorter than the number of
// tokens. Use ParseStrict to reject malformed program text.
func Parse(text string) []Cell {
	var prog []Cell
	for _, tok := range strings.Split(text, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			continue
		}
		prog = append(prog, Cell(v))
	}
	return prog
}

// ParseStrict works like Parse but returns a *SyntaxError for the first token
// that is not a valid integer. Empty program text yields an empty program.
func ParseStrict(text string) ([]Cell, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	toks := strings.Split(text, ",")
	prog := make([]Cell, 0, len(toks))
	for n, tok := range toks {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Index: n, Token: tok}
		}
		prog = append(prog, Cell(v))
	}
	return prog, nil
}

// Load loads a program from file fileName. If strict is true, the program
// text is parsed with ParseStrict, otherwise with Parse.
func Load(fileName string, strict bool) ([]Cell, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	if !strict {
		return Parse(string(b)), nil
	}
	prog, err := ParseStrict(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return prog, nil
}
