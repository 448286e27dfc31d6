// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipeline implements a concurrent, line-oriented string
// processing pipeline: an ordered chain of named stages, each with its
// own bounded FIFO queue and a single worker goroutine, connected so
// that stage i's output feeds stage i+1's input.
//
// # Quick Start
//
//	b := pipeline.NewBuilder(20)
//	b.AddStage("uppercaser", transform.Uppercase{})
//	b.AddStage("rotator", transform.Rotate{})
//	b.AddStage("logger", transform.PrefixTag{Tag: "logger"})
//	p, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Run(os.Stdin); err != nil {
//	    log.Fatal(err)
//	}
//
// # Shutdown
//
// The sentinel token "<END>" triggers orderly shutdown when it
// reaches a stage's PlaceWork. It is propagated verbatim to every
// downstream stage, exactly once per stage, whether or not it was
// explicitly present in the input — Run synthesizes and feeds one if
// the input ends without it.
//
// # Concurrency
//
// Each stage owns one bounded Queue and one worker goroutine. Queue's
// Put and Get block (they never return a "would block" error); they
// are built on Latch, a manual-reset binary event that survives a
// signal arriving before its waiter. This blocking design is
// deliberate: it is not a performance-oriented lock-free queue, it is
// the specified shape of this pipeline's synchronization.
package pipeline
