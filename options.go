// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"io"
	"os"

	"code.hybscloud.com/strpipe/internal/plog"
)

// Builder assembles a Pipeline with a fluent API, one stage at a time,
// in the order stages will run.
//
// Example:
//
//	b := pipeline.NewBuilder(20)
//	b.AddStage("uppercaser", transform.Uppercase{})
//	b.AddStage("rotator", transform.Rotate{})
//	b.AddStage("logger", transform.PrefixTag{Tag: "logger"})
//	p, err := b.Build()
type Builder struct {
	capacity int
	stages   []stageSpec
	stdout   io.Writer
	stderr   io.Writer
}

type stageSpec struct {
	name      string
	transform Transform
}

// NewBuilder creates a Builder whose stages will each use a queue of
// the given capacity. Transformed-line output defaults to os.Stdout;
// all diagnostic output (INFO and ERROR alike) defaults to os.Stderr;
// override with Stdout/Stderr.
func NewBuilder(capacity int) *Builder {
	return &Builder{capacity: capacity}
}

// AddStage appends a named stage with the given transform to the
// pipeline under construction.
func (b *Builder) AddStage(name string, t Transform) *Builder {
	b.stages = append(b.stages, stageSpec{name: name, transform: t})
	return b
}

// Stdout overrides the writer transformed lines are printed to by the
// terminal stage. Defaults to os.Stdout.
func (b *Builder) Stdout(w io.Writer) *Builder {
	b.stdout = w
	return b
}

// Stderr overrides the writer both INFO and ERROR diagnostic lines are
// printed to, keeping stdout reserved for transformed output and the
// shutdown notice. Defaults to os.Stderr.
func (b *Builder) Stderr(w io.Writer) *Builder {
	b.stderr = w
	return b
}

// Build constructs every stage in order, attaches stage i's downstream
// to stage i+1's PlaceWork, and returns the assembled Pipeline.
//
// On any stage's Init failure, Build runs Fini (in reverse order) on
// every stage whose Init already succeeded, then reports the error —
// no partially constructed stage is left with a live worker goroutine.
func (b *Builder) Build() (*Pipeline, error) {
	if len(b.stages) == 0 {
		return nil, newErr(KindArgument, "", "pipeline requires at least one stage")
	}

	stdout := b.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := b.stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := plog.New(stderr, stderr)

	stages := make([]*Stage, 0, len(b.stages))
	for _, spec := range b.stages {
		st := NewStage(logger)
		if err := st.Init(spec.name, spec.transform, b.capacity); err != nil {
			for i := len(stages) - 1; i >= 0; i-- {
				_ = stages[i].Fini()
			}
			return nil, err
		}
		stages = append(stages, st)
	}

	for i := 0; i < len(stages)-1; i++ {
		stages[i].Attach(stages[i+1].PlaceWork)
	}
	stages[len(stages)-1].Attach(nil)
	stages[len(stages)-1].SetOutput(stdout)

	return &Pipeline{stages: stages, stdout: stdout, stderr: stderr}, nil
}
