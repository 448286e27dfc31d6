// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bufio"
	"fmt"
	"io"
)

// maxScanToken is generous headroom over the spec's documented
// 1023-byte line bound. Unlike the original C implementation's fixed
// fgets(line, 1024, stdin) buffer, a longer line is never silently
// truncated — it is still accepted, up to this limit.
const maxScanToken = 64 * 1024

// Pipeline is an ordered, immutable chain of Stages, assembled by
// Builder.Build.
type Pipeline struct {
	stages []*Stage
	stdout io.Writer
	stderr io.Writer
}

// Stages returns the pipeline's stages in order. The returned slice
// must not be mutated.
func (p *Pipeline) Stages() []*Stage {
	return p.stages
}

// Run feeds r's lines into the first stage, one PlaceWork call per
// line with the trailing newline stripped, until a line exactly equal
// to Sentinel is read (inclusive) or r is exhausted. If r ends without
// an explicit sentinel, Run synthesizes and feeds one so shutdown is
// always triggered.
//
// Run then waits for every stage to finish, in ascending order,
// finalizes every stage in ascending order, and writes the completion
// notice to the pipeline's configured stdout. Errors encountered while
// waiting or finalizing are collected and returned jointly; they do
// not stop Run from finishing the shutdown of the remaining stages.
func (p *Pipeline) Run(r io.Reader) error {
	first := p.stages[0]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxScanToken)

	endReceived := false
	for scanner.Scan() {
		line := scanner.Text()
		if err := first.PlaceWork(line); err != nil {
			fmt.Fprintf(p.stderr, "[ERROR][%s] - failed to place work: %s\n", first.Name(), err)
		}
		if line == Sentinel {
			endReceived = true
			break
		}
	}

	if !endReceived {
		if err := first.PlaceWork(Sentinel); err != nil {
			fmt.Fprintf(p.stderr, "[ERROR][%s] - failed to send sentinel: %s\n", first.Name(), err)
		}
	}

	var waitErrs []error
	for _, st := range p.stages {
		if err := st.WaitFinished(); err != nil {
			waitErrs = append(waitErrs, err)
			fmt.Fprintf(p.stderr, "[ERROR][%s] - failed waiting to finish: %s\n", st.Name(), err)
		}
	}

	var finiErrs []error
	for _, st := range p.stages {
		name := st.Name()
		if err := st.Fini(); err != nil {
			finiErrs = append(finiErrs, err)
			fmt.Fprintf(p.stderr, "[ERROR][%s] - failed to finalize: %s\n", name, err)
		}
	}

	fmt.Fprintln(p.stdout, "Pipeline shutdown complete")

	if len(waitErrs) == 0 && len(finiErrs) == 0 {
		return nil
	}
	return fmt.Errorf("pipeline shutdown had %d wait error(s) and %d fini error(s)", len(waitErrs), len(finiErrs))
}
