// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	pipeline "code.hybscloud.com/strpipe"
	"code.hybscloud.com/strpipe/transform"
)

func TestPipelineUppercaserRotatorLogger(t *testing.T) {
	registry := transform.NewRegistry()
	uc, _ := registry.Lookup("uppercaser")
	rt, _ := registry.Lookup("rotator")
	lg, _ := registry.Lookup("logger")

	var stdout, stderr bytes.Buffer
	b := pipeline.NewBuilder(20).Stdout(&stdout).Stderr(&stderr)
	b.AddStage("uppercaser", uc)
	b.AddStage("rotator", rt)
	b.AddStage("logger", lg)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := strings.NewReader("hello\n" + pipeline.Sentinel + "\n")
	if err := p.Run(in); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// "hello" -> upper "HELLO" -> rotate "OHELL" -> tag "[logger] OHELL"
	if !strings.Contains(stdout.String(), "[logger] OHELL") {
		t.Fatalf("want transformed line in stdout, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Pipeline shutdown complete") {
		t.Fatalf("want shutdown notice in stdout, got %q", stdout.String())
	}
}

func TestPipelineFlipper(t *testing.T) {
	registry := transform.NewRegistry()
	fl, _ := registry.Lookup("flipper")

	var stdout, stderr bytes.Buffer
	b := pipeline.NewBuilder(20).Stdout(&stdout).Stderr(&stderr)
	b.AddStage("flipper", fl)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := strings.NewReader("abc\ndef\n" + pipeline.Sentinel + "\n")
	if err := p.Run(in); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(stdout.String(), "cba") || !strings.Contains(stdout.String(), "fed") {
		t.Fatalf("want both reversed lines in stdout, got %q", stdout.String())
	}
}

func TestPipelineExpander(t *testing.T) {
	registry := transform.NewRegistry()
	ex, _ := registry.Lookup("expander")

	var stdout, stderr bytes.Buffer
	b := pipeline.NewBuilder(20).Stdout(&stdout).Stderr(&stderr)
	b.AddStage("expander", ex)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := strings.NewReader("hi\n" + pipeline.Sentinel + "\n")
	if err := p.Run(in); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(stdout.String(), "h i") {
		t.Fatalf("want expanded line in stdout, got %q", stdout.String())
	}
}

// TestPipelineTwoIndependentStagesOfSameTransform wires the same
// registered transform name into two stages in one pipeline, which the
// original C implementation could only do by duplicating the compiled
// plugin file on disk.
func TestPipelineTwoIndependentStagesOfSameTransform(t *testing.T) {
	registry := transform.NewRegistry()
	uc1, _ := registry.Lookup("uppercaser")
	uc2, _ := registry.Lookup("uppercaser")

	var stdout, stderr bytes.Buffer
	b := pipeline.NewBuilder(20).Stdout(&stdout).Stderr(&stderr)
	b.AddStage("uppercaser-1", uc1)
	b.AddStage("uppercaser-2", uc2)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := strings.NewReader("mixed\n" + pipeline.Sentinel + "\n")
	if err := p.Run(in); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(stdout.String(), "MIXED") {
		t.Fatalf("want uppercased line in stdout, got %q", stdout.String())
	}
}

func TestPipelineLoggerTenThousandLines(t *testing.T) {
	registry := transform.NewRegistry()
	lg, _ := registry.Lookup("logger")

	var stdout, stderr bytes.Buffer
	b := pipeline.NewBuilder(64).Stdout(&stdout).Stderr(&stderr)
	b.AddStage("logger", lg)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	const n = 10000
	var in bytes.Buffer
	for i := 0; i < n; i++ {
		fmt.Fprintf(&in, "line-%d\n", i)
	}
	in.WriteString(pipeline.Sentinel + "\n")

	if err := p.Run(&in); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := stdout.String()
	count := strings.Count(out, "[logger] line-")
	if count != n {
		t.Fatalf("want %d tagged lines, got %d", n, count)
	}
}

// TestPipelineCapacityOneMaximumBackpressure exercises the tightest
// possible backpressure: a queue depth of one between two stages that
// both add a prefix, over a thousand lines.
func TestPipelineCapacityOneMaximumBackpressure(t *testing.T) {
	registry := transform.NewRegistry()
	lg1, _ := registry.Lookup("logger")
	lg2, _ := registry.Lookup("logger")

	var stdout, stderr bytes.Buffer
	b := pipeline.NewBuilder(1).Stdout(&stdout).Stderr(&stderr)
	b.AddStage("logger-1", lg1)
	b.AddStage("logger-2", lg2)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	const n = 1000
	var in bytes.Buffer
	for i := 0; i < n; i++ {
		fmt.Fprintf(&in, "row-%d\n", i)
	}
	in.WriteString(pipeline.Sentinel + "\n")

	if err := p.Run(&in); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := stdout.String()
	count := strings.Count(out, "[logger] [logger] row-")
	if count != n {
		t.Fatalf("want %d doubly-tagged lines, got %d", n, count)
	}
}

func TestPipelineSynthesizesSentinelWhenInputEndsWithoutOne(t *testing.T) {
	registry := transform.NewRegistry()
	uc, _ := registry.Lookup("uppercaser")

	var stdout, stderr bytes.Buffer
	b := pipeline.NewBuilder(8).Stdout(&stdout).Stderr(&stderr)
	b.AddStage("uppercaser", uc)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	in := strings.NewReader("no sentinel here\n")
	if err := p.Run(in); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(stdout.String(), "Pipeline shutdown complete") {
		t.Fatal("want Run to shut down cleanly even without an explicit sentinel")
	}
}

func TestBuilderRequiresAtLeastOneStage(t *testing.T) {
	_, err := pipeline.NewBuilder(10).Build()
	if !pipeline.IsArgument(err) {
		t.Fatalf("want KindArgument for an empty pipeline, got %v", err)
	}
}
