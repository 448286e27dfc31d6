// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies the sentinel errors returned by this package's
// operations. A Kind is never returned bare; it is always wrapped in
// an *Error carrying the offending stage's name and a message.
type Kind int

const (
	// KindArgument indicates an absent or invalid argument: a nil
	// receiver, an empty string, a non-positive capacity, and so on.
	KindArgument Kind = iota
	// KindResource indicates allocation or primitive-initialization
	// failure.
	KindResource
	// KindNotInitialized indicates an operation attempted on a stage
	// or queue that has not been (or is no longer) initialized.
	KindNotInitialized
	// KindAlreadyInitialized indicates a second Init on a stage that
	// is already initialized.
	KindAlreadyInitialized
	// KindFinished indicates PlaceWork was called after the stage
	// already observed the sentinel.
	KindFinished
	// KindMonitor indicates a Latch's underlying wait could not
	// complete.
	KindMonitor
	// KindLoad classifies a failure to resolve a named transform. No
	// operation in this package returns it, and transform.Registry's
	// Lookup reports an unknown name with a plain error, not an *Error.
	KindLoad
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindResource:
		return "resource"
	case KindNotInitialized:
		return "not initialized"
	case KindAlreadyInitialized:
		return "already initialized"
	case KindFinished:
		return "finished"
	case KindMonitor:
		return "monitor"
	case KindLoad:
		return "load"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every operation in this
// package. Kind allows programmatic classification via the IsX
// helpers below; Stage is the name of the stage involved (empty if
// the error is not stage-specific).
type Error struct {
	Kind    Kind
	Stage   string
	Message string
}

func (e *Error) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("pipeline: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("pipeline: %s[%s]: %s", e.Kind, e.Stage, e.Message)
}

func newErr(kind Kind, stage, message string) *Error {
	return &Error{Kind: kind, Stage: stage, Message: message}
}

// IsArgument reports whether err is a KindArgument *Error.
func IsArgument(err error) bool { return isKind(err, KindArgument) }

// IsResource reports whether err is a KindResource *Error.
func IsResource(err error) bool { return isKind(err, KindResource) }

// IsNotInitialized reports whether err is a KindNotInitialized *Error.
func IsNotInitialized(err error) bool { return isKind(err, KindNotInitialized) }

// IsAlreadyInitialized reports whether err is a KindAlreadyInitialized
// *Error.
func IsAlreadyInitialized(err error) bool { return isKind(err, KindAlreadyInitialized) }

// IsFinished reports whether err is a KindFinished *Error.
func IsFinished(err error) bool { return isKind(err, KindFinished) }

// IsMonitor reports whether err is a KindMonitor *Error.
func IsMonitor(err error) bool { return isKind(err, KindMonitor) }

// IsLoad reports whether err is a KindLoad *Error.
func IsLoad(err error) bool { return isKind(err, KindLoad) }

func isKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
