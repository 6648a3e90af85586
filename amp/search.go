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

package amp

import (
	"context"
	"runtime"
	"sync"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Permutations calls f with every permutation of set, in the order given by
// Heap's algorithm, starting with set itself. It stops early if f returns
// false. An empty set has no permutations.
//
// The slice passed to f is reused between calls: f must copy it if it needs
// to keep it. set is not modified.
func Permutations(set []vm.Cell, f func(p []vm.Cell) bool) {
	n := len(set)
	if n == 0 {
		return
	}
	p := append([]vm.Cell(nil), set...)
	if !f(p) {
		return
	}
	c := make([]int, n)
	for i := 1; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[c[i]], p[i] = p[i], p[c[i]]
			}
			if !f(p) {
				return
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
}

// less reports whether a sorts before b lexicographically.
func less(a, b []vm.Cell) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Best finds the permutation of phases that yields the highest output signal
// of chain, with an input signal of 0. It returns the best signal and the
// corresponding phase order. If several orders give the same signal, the
// lexicographically smallest order is returned.
//
// Permutations are evaluated concurrently, at most GOMAXPROCS at a time. The
// search stops at the first error.
func Best(prog *vm.Instance, phases []vm.Cell, chain Chain) (best vm.Cell, order []vm.Cell, err error) {
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	Permutations(phases, func(p []vm.Cell) bool {
		if ctx.Err() != nil {
			return false
		}
		p = append([]vm.Cell(nil), p...)
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			v, err := chain(prog, p, 0)
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			mu.Lock()
			defer mu.Unlock()
			if order == nil || v > best || (v == best && less(p, order)) {
				best, order = v, p
				log.Debugf("signal %d for phases %v", v, p)
			}
			return nil
		})
		return true
	})

	if err = g.Wait(); err != nil {
		return 0, nil, err
	}
	if order == nil {
		return 0, nil, errNoAmp
	}
	return best, order, nil
}
