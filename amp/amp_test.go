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

package amp_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type C []vm.Cell

func load(t *testing.T, code string) *vm.Instance {
	t.Helper()
	i, err := vm.New(vm.Parse(code))
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func assertEqual(t *testing.T, name, expected, got string) {
	t.Helper()
	if expected != got {
		t.Errorf("%s: expected %s, got %s", name, expected, got)
	}
}

var seriesTests = []struct {
	code   string
	signal vm.Cell
	order  C
}{
	{"3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0", 43210, C{4, 3, 2, 1, 0}},
	{"3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0", 54321, C{0, 1, 2, 3, 4}},
	{"3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0", 65210, C{1, 0, 4, 3, 2}},
}

var feedbackTests = []struct {
	code   string
	signal vm.Cell
	order  C
}{
	{"3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5", 139629729, C{9, 8, 7, 6, 5}},
	{"3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10", 18216, C{9, 7, 8, 5, 6}},
}

func TestSeries(t *testing.T) {
	for _, d := range seriesTests {
		prog := load(t, d.code)
		v, err := amp.Series(prog, d.order, 0)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		assertEqual(t, "signal", fmt.Sprint(d.signal), fmt.Sprint(v))
		// prog must be left untouched
		assertEqual(t, "pc", "0", fmt.Sprint(prog.PC()))
	}
	v, err := amp.Series(load(t, seriesTests[0].code), C{1, 0, 4, 3, 2}, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "signal", "10432", fmt.Sprint(v))
}

func TestFeedback(t *testing.T) {
	for _, d := range feedbackTests {
		prog := load(t, d.code)
		v, err := amp.Feedback(prog, d.order, 0)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		assertEqual(t, "signal", fmt.Sprint(d.signal), fmt.Sprint(v))
		assertEqual(t, "pending", "0", fmt.Sprint(prog.Pending()))
	}
}

func TestBest(t *testing.T) {
	for _, d := range seriesTests {
		v, order, err := amp.Best(load(t, d.code), C{0, 1, 2, 3, 4}, amp.Series)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		assertEqual(t, "signal", fmt.Sprint(d.signal), fmt.Sprint(v))
		assertEqual(t, "order", fmt.Sprint(d.order), fmt.Sprint(order))
	}
	for _, d := range feedbackTests {
		v, order, err := amp.Best(load(t, d.code), C{5, 6, 7, 8, 9}, amp.Feedback)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		assertEqual(t, "signal", fmt.Sprint(d.signal), fmt.Sprint(v))
		assertEqual(t, "order", fmt.Sprint(d.order), fmt.Sprint(order))
	}
}

func TestBest_ties(t *testing.T) {
	// outputs the signal plus one, whatever the phase
	prog := load(t, "3,11,3,11,1001,11,1,11,4,11,99,0")
	v, order, err := amp.Best(prog, C{3, 1, 2}, amp.Series)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "signal", "3", fmt.Sprint(v))
	assertEqual(t, "order", "[1 2 3]", fmt.Sprint(order))
}

func TestErrors(t *testing.T) {
	crash := load(t, "3,0,42")
	noOutput := load(t, "3,0,3,0,99")
	starve := load(t, "3,0,3,0,3,0,4,0,99")

	if _, err := amp.Series(crash, C{0, 1}, 0); err == nil || !strings.HasPrefix(err.Error(), "amplifier 0: program crashed") {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := amp.Series(noOutput, C{0, 1}, 0); err == nil || err.Error() != "amplifier 0: no output" {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := amp.Series(crash, nil, 0); err == nil {
		t.Error("expected error for empty chain")
	}
	if _, err := amp.Feedback(crash, nil, 0); err == nil {
		t.Error("expected error for empty chain")
	}
	_, err := amp.Feedback(starve, C{5, 6}, 0)
	if _, ok := errors.Cause(err).(*vm.StarvedInputError); !ok {
		t.Errorf("unexpected error %v", err)
	}
	_, err = amp.Feedback(crash, C{5, 6}, 0)
	if _, ok := errors.Cause(err).(*vm.DecodeError); !ok {
		t.Errorf("unexpected error %v", err)
	}
	_, _, err = amp.Best(crash, C{0, 1, 2}, amp.Series)
	if err == nil || !strings.HasPrefix(err.Error(), "phases [") {
		t.Errorf("unexpected error %v", err)
	}
	if _, _, err = amp.Best(crash, nil, amp.Series); err == nil {
		t.Error("expected error for empty phase set")
	}
}

func TestPermutations(t *testing.T) {
	var got []string
	amp.Permutations(C{0, 1, 2}, func(p []vm.Cell) bool {
		got = append(got, fmt.Sprint(p))
		return true
	})
	assertEqual(t, "perms", "[0 1 2] [1 0 2] [2 0 1] [0 2 1] [1 2 0] [2 1 0]", strings.Join(got, " "))

	seen := make(map[string]bool)
	set := C{5, 6, 7, 8, 9}
	amp.Permutations(set, func(p []vm.Cell) bool {
		seen[fmt.Sprint(p)] = true
		return true
	})
	assertEqual(t, "count", "120", fmt.Sprint(len(seen)))
	assertEqual(t, "set", "[5 6 7 8 9]", fmt.Sprint(set))

	n := 0
	amp.Permutations(set, func(p []vm.Cell) bool {
		n++
		return n < 10
	})
	assertEqual(t, "early stop", "10", fmt.Sprint(n))

	n = 0
	amp.Permutations(nil, func(p []vm.Cell) bool { n++; return true })
	assertEqual(t, "empty", "0", fmt.Sprint(n))
	amp.Permutations(C{42}, func(p []vm.Cell) bool { n++; return true })
	assertEqual(t, "single", "1", fmt.Sprint(n))
}
