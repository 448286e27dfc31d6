// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Typewriter prepends "[typewriter] " to the input, like PrefixTag,
// but also echoes that prefix and then the input to Out, one byte at a
// time with Delay after each byte and a final newline, before
// returning — a side effect dropped by the
// spec's distillation but present in
// original_source/plugins/typewriter.c, which both returns the
// prefixed string for the pipeline to forward/print and independently
// prints the typewriter effect to stdout.
//
// A nil Out falls back to os.Stdout; a zero Delay means no pause
// between bytes. NewTypewriter constructs an instance with os.Stdout
// and a 100ms delay. Tests that want a fast, deterministic run should
// set Delay to 0 and Out to a buffer.
type Typewriter struct {
	Out   io.Writer
	Delay time.Duration
}

// NewTypewriter returns a Typewriter configured like the original
// plugin: stdout output, 100ms per-byte delay.
func NewTypewriter() Typewriter {
	return Typewriter{Out: os.Stdout, Delay: 100 * time.Millisecond}
}

func (Typewriter) Name() string { return "typewriter" }

func (t Typewriter) Transform(s string) (string, bool) {
	out := t.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprint(out, "[typewriter] ")
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(out, "%c", s[i])
		if t.Delay > 0 {
			time.Sleep(t.Delay)
		}
	}
	fmt.Fprintln(out)

	return "[typewriter] " + s, true
}
