// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"io"
	"os"
	"sync"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/strpipe/internal/plog"
)

// Sentinel is the distinguished token that triggers orderly shutdown.
// It is propagated verbatim through every stage, exactly once.
const Sentinel = "<END>"

// Transform is a pure per-item string transformation, the pluggable
// capability each Stage wraps. The second return value is false if
// the transform could not produce a result for s; a Stage logs that
// case and continues with the next item rather than failing.
type Transform interface {
	Name() string
	Transform(s string) (string, bool)
}

// PlaceWorkFunc is the "downstream handle" capability a Stage calls to
// hand a transformed item to its successor. The last stage in a
// pipeline has no downstream.
type PlaceWorkFunc func(s string) error

// Stage is one link in the pipeline: a name, a Transform, a bounded
// Queue, a single worker goroutine, and an optional downstream sink.
//
// A Stage's zero value is ready to Init. Once initialized, at most one
// Init call can succeed until a matching Fini; after Fini, the Stage
// may be re-initialized.
type Stage struct {
	logger *plog.Logger

	name       string
	transform  Transform
	queue      *Queue
	downstream PlaceWorkFunc

	outMu sync.Mutex
	out   io.Writer

	initialized atomix.Bool
	finished    atomix.Bool

	wg sync.WaitGroup
}

// NewStage returns a Stage that logs through logger. A nil logger
// discards all diagnostic output.
func NewStage(logger *plog.Logger) *Stage {
	return &Stage{logger: logger}
}

// Init constructs a fresh Queue of the given capacity, stores name and
// t, clears downstream, and starts the worker goroutine.
//
// Fails with KindAlreadyInitialized if called twice without an
// intervening Fini, KindArgument if t is nil, name is empty, or
// capacity is not positive, or with the queue's own KindArgument
// error.
func (s *Stage) Init(name string, t Transform, capacity int) error {
	if s == nil {
		return newErr(KindArgument, name, "init on absent stage")
	}
	if s.initialized.Load() {
		return newErr(KindAlreadyInitialized, name, "stage already initialized")
	}
	if name == "" {
		return newErr(KindArgument, name, "stage name must not be empty")
	}
	if t == nil {
		return newErr(KindArgument, name, "transform must not be nil")
	}

	q, err := NewQueue(name, capacity)
	if err != nil {
		return err
	}

	s.name = name
	s.transform = t
	s.queue = q
	s.downstream = nil
	s.finished.Store(false)

	s.wg.Add(1)
	go s.run()

	s.initialized.Store(true)
	s.logf(false, "Stage initialized successfully")
	return nil
}

// Name returns the stage's name.
func (s *Stage) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Attach sets the stage's downstream sink. next may be nil, meaning
// this stage is last in the chain. Must be called before any item
// that would consult downstream is dequeued; the Pipeline driver
// attaches every stage before feeding input, which is sufficient.
func (s *Stage) Attach(next PlaceWorkFunc) {
	if s == nil {
		return
	}
	s.downstream = next
	if next != nil {
		s.logf(false, "Attached to next stage")
	} else {
		s.logf(false, "Detached from next stage (now last in chain)")
	}
}

// SetOutput sets the writer the terminal stage prints transformed
// lines to. Only meaningful for a stage with no downstream; a nil w
// makes the stage fall back to os.Stdout.
func (s *Stage) SetOutput(w io.Writer) {
	if s == nil {
		return
	}
	s.outMu.Lock()
	s.out = w
	s.outMu.Unlock()
}

// PlaceWork enqueues s for this stage's worker, blocking while the
// queue is full. If s is the sentinel, it additionally signals the
// queue finished so that a worker already blocked in Get observes
// termination after draining whatever is ahead of the sentinel.
//
// Fails with KindArgument if the stage itself is nil, with
// KindNotInitialized if the stage has not been initialized, or with
// KindFinished if the stage has already observed the sentinel.
func (s *Stage) PlaceWork(item string) error {
	if s == nil {
		return newErr(KindArgument, "", "place_work on absent stage")
	}
	if !s.initialized.Load() {
		return newErr(KindNotInitialized, s.name, "place_work before init")
	}
	if s.finished.Load() {
		return newErr(KindFinished, s.name, "stage already finished processing")
	}

	if err := s.queue.Put(item); err != nil {
		return err
	}
	if item == Sentinel {
		s.queue.SignalFinished()
	}
	return nil
}

// WaitFinished blocks until the stage's worker has drained the
// sentinel and exited.
func (s *Stage) WaitFinished() error {
	if s == nil {
		return newErr(KindArgument, "", "wait_finished on absent stage")
	}
	if !s.initialized.Load() {
		return newErr(KindNotInitialized, s.name, "wait_finished before init")
	}
	s.logf(false, "Waiting for stage to finish")
	if err := s.queue.WaitFinished(); err != nil {
		return err
	}
	s.wg.Wait()
	s.logf(false, "Stage finished processing")
	return nil
}

// Fini signals the queue finished, joins the worker goroutine,
// destroys the queue, and returns the stage to a dormant,
// re-initializable state.
func (s *Stage) Fini() error {
	if s == nil {
		return newErr(KindArgument, "", "fini on absent stage")
	}
	if !s.initialized.Load() {
		return newErr(KindNotInitialized, s.name, "fini before init")
	}
	s.logf(false, "Finalizing stage")
	s.queue.SignalFinished()
	s.wg.Wait()
	s.queue.Destroy()

	s.name = ""
	s.transform = nil
	s.downstream = nil
	s.queue = nil
	s.outMu.Lock()
	s.out = nil
	s.outMu.Unlock()
	s.finished.Store(false)
	s.initialized.Store(false)
	return nil
}

// run is the worker goroutine's body: RUNNING → (sentinel forward →
// EXITED) or (transform → forward/print, remain RUNNING) → EXITED when
// Get reports the queue drained and finished.
func (s *Stage) run() {
	defer s.wg.Done()
	s.logf(false, "Worker started")

	for {
		item, ok := s.queue.Get()
		if !ok {
			s.finished.Store(true)
			s.logf(false, "Worker exiting")
			return
		}

		if item == Sentinel {
			s.logf(false, "Received <END>, shutting down")
			if s.downstream != nil {
				if err := s.downstream(Sentinel); err != nil {
					s.logf(true, err.Error())
				}
			}
			s.finished.Store(true)
			return
		}

		out, ok := s.transform.Transform(item)
		if !ok {
			s.logf(true, "transform returned no result")
			continue
		}

		if s.downstream != nil {
			if err := s.downstream(out); err != nil {
				s.logf(true, err.Error())
			}
		} else {
			s.println(out)
		}
	}
}

func (s *Stage) println(line string) {
	s.outMu.Lock()
	w := s.out
	s.outMu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, line)
}

func (s *Stage) logf(isErr bool, message string) {
	if s.logger == nil {
		return
	}
	if isErr {
		s.logger.Error(s.name, message)
	} else {
		s.logger.Info(s.name, message)
	}
}
