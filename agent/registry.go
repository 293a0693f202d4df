package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Registry is an explicit mapping from function names to their handlers
// and schemas. The host registers workers at startup and dispatches by
// name afterwards; nothing is discovered dynamically.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]Function
	order     []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]Function)}
}

// Register adds one function under its lower-cased name.
// Duplicate names and nil handlers return an error.
func (r *Registry) Register(fn Function) error {
	key := strings.ToLower(strings.TrimSpace(fn.Name))
	if key == "" {
		return fmt.Errorf("function name is empty")
	}
	if fn.Handler == nil {
		return fmt.Errorf("function %s has no handler", fn.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.functions[key]; exists {
		return fmt.Errorf("function %s already registered", fn.Name)
	}
	r.functions[key] = fn
	r.order = append(r.order, key)
	return nil
}

// RegisterWorker registers every function the worker exposes.
// Registration stops at the first error.
func (r *Registry) RegisterWorker(w Worker) error {
	for _, fn := range w.Functions {
		if err := r.Register(fn); err != nil {
			return fmt.Errorf("worker %s: %w", w.ID, err)
		}
	}
	return nil
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.functions[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// Functions returns a snapshot of the registered functions in
// registration order.
func (r *Registry) Functions() []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fns := make([]Function, 0, len(r.order))
	for _, key := range r.order {
		fns = append(fns, r.functions[key])
	}
	return fns
}

// Call dispatches one invocation by name. The error covers dispatch
// problems only; domain failures come back inside the Result.
func (r *Registry) Call(ctx context.Context, name string, req Request) (Result, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("unknown function %q", name)
	}
	return fn.Handler(ctx, req), nil
}
