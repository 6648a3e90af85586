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

package ici_test

import (
	"io"
	"testing"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

type failWriter int

func (w *failWriter) Write(p []byte) (int, error) {
	if *w == 0 {
		return 0, io.ErrShortWrite
	}
	*w--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	fw := failWriter(1)
	ew := ici.NewErrWriter(&fw)
	if ici.NewErrWriter(ew) != ew {
		t.Fatal("ErrWriter wrapped twice")
	}
	if _, err := io.WriteString(ew, "ok"); err != nil {
		t.Fatal(err)
	}
	io.WriteString(ew, "fail")
	fw = 1
	n, err := ew.Write([]byte("again"))
	if n != 0 || errors.Cause(err) != io.ErrShortWrite || errors.Cause(ew.Err) != io.ErrShortWrite {
		t.Errorf("expected sticky io.ErrShortWrite, got %d, %v", n, err)
	}
}
