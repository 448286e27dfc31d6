// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command strpipe runs a concurrent, line-oriented string processing
// pipeline over its stages, reading from standard input and writing
// transformed lines to standard output.
//
// Usage:
//
//	strpipe <queue_size> <stage_1> <stage_2> ... <stage_N>
//
// Grounded on original_source/main.c's argument handling and exit
// codes: 1 for argument errors or unknown stage names, 2 for stage
// initialization failure, 0 on success.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	pipeline "code.hybscloud.com/strpipe"
	"code.hybscloud.com/strpipe/transform"
)

func printUsage(w *os.File, registry *transform.Registry) {
	fmt.Fprintln(w, "Usage: strpipe <queue_size> <stage1> <stage2> ... <stageN>")
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  queue_size  Maximum number of items in each stage's queue")
	fmt.Fprintln(w, "  stage1..N   Names of stages to run, in order")
	fmt.Fprintln(w, "Available stages:")
	names := registry.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  strpipe 20 uppercaser rotator logger")
	fmt.Fprintln(w, "  echo 'hello' | strpipe 20 uppercaser rotator logger")
	fmt.Fprintln(w, "  echo '<END>' | strpipe 20 uppercaser rotator logger")
}

func run() int {
	registry := transform.NewRegistry()

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "[ERROR] Insufficient arguments")
		printUsage(os.Stdout, registry)
		return 1
	}

	queueSize, err := strconv.Atoi(os.Args[1])
	if err != nil || queueSize <= 0 {
		fmt.Fprintf(os.Stderr, "[ERROR] Invalid queue size: %s (must be a positive integer)\n", os.Args[1])
		printUsage(os.Stdout, registry)
		return 1
	}

	stageNames := os.Args[2:]
	builder := pipeline.NewBuilder(queueSize)
	for _, name := range stageNames {
		t, err := registry.Lookup(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] Failed to load stage %s: %s\n", name, err)
			printUsage(os.Stdout, registry)
			return 1
		}
		builder.AddStage(name, t)
	}

	p, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] Failed to initialize pipeline: %s\n", err)
		return 2
	}

	if err := p.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", err)
	}
	return 0
}

func main() {
	os.Exit(run())
}
