// Package agent defines the worker-function contract between this module
// and a hosting agent framework: tagged Done/Failed results, a framework
// supplied logging sink, and an explicit registry mapping function names
// to typed handlers and their declared parameter schemas.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Status tags the outcome of a worker function call.
type Status string

const (
	StatusDone   Status = "done"
	StatusFailed Status = "failed"
)

// Result is what a worker function hands back to the host framework.
// Every failure a function can produce is domain data for the host, so
// handlers return a Result instead of an error.
type Result struct {
	Status   Status `json:"status"`
	Feedback string `json:"feedback"`
}

// OK reports whether the call completed successfully.
func (r Result) OK() bool { return r.Status == StatusDone }

// Done builds a successful Result carrying feedback.
func Done(feedback string) Result {
	return Result{Status: StatusDone, Feedback: feedback}
}

// Failed builds a failed Result carrying feedback.
func Failed(feedback string) Result {
	return Result{Status: StatusFailed, Feedback: feedback}
}

// Failedf builds a failed Result from a format string.
func Failedf(format string, args ...any) Result {
	return Result{Status: StatusFailed, Feedback: fmt.Sprintf(format, args...)}
}

// Logger receives the ordered, human-readable progress lines a function
// emits while it runs. The host framework supplies the sink.
type Logger interface {
	Log(line string)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(line string)

func (f LoggerFunc) Log(line string) { f(line) }

// Request is a single invocation of a worker function. Args holds the
// loosely-typed values decoded from the caller's JSON; Log may be nil.
type Request struct {
	Args map[string]any
	Log  Logger
}

// Logf emits one formatted progress line. Safe with a nil Logger.
func (r Request) Logf(format string, args ...any) {
	if r.Log == nil {
		return
	}
	r.Log.Log(fmt.Sprintf(format, args...))
}

// Arg returns the raw named argument.
func (r Request) Arg(name string) (any, bool) {
	v, ok := r.Args[name]
	return v, ok
}

// StringArg renders the named argument as a string.
// Absent and nil arguments come back as "".
func (r Request) StringArg(name string) string {
	v, ok := r.Args[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// HandlerFunc executes one worker function call.
type HandlerFunc func(ctx context.Context, req Request) Result

// Function is one callable operation a worker exposes: the name the host
// dispatches on, a description for the planner, and a JSON-schema shaped
// declaration of the accepted parameters.
type Function struct {
	Name        string
	Description string
	Schema      map[string]any
	Handler     HandlerFunc
}

// Worker is a named, described bundle of functions registered with the
// host framework as one unit.
type Worker struct {
	ID          string
	Name        string
	Description string
	Functions   []Function
}

// resultMarker separates the human-readable sentence from the embedded
// JSON payload in a successful feedback string.
const resultMarker = "Result: "

// Feedback joins a fixed message and a JSON payload into the feedback
// format ResultPayload can split again.
func Feedback(message string, payload []byte) string {
	return message + " " + resultMarker + string(payload)
}

// ResultPayload extracts the JSON payload embedded in a success feedback
// string. ok is false when the feedback carries no payload.
func ResultPayload(feedback string) (json.RawMessage, bool) {
	_, rest, found := strings.Cut(feedback, resultMarker)
	if !found {
		return nil, false
	}
	return json.RawMessage(rest), true
}
