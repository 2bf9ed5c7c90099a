// Package dispatch routes named operations to their handlers. It is the
// single entry point the conversational layer calls, and the only layer
// that catches unexpected failures: handlers return errors, Execute
// returns envelopes.
package dispatch

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/config"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/gateway"
)

// Request carries one invocation's inputs. User is the acting user,
// threaded explicitly instead of living in ambient state.
type Request struct {
	User   string
	Params Params
}

// HandlerFunc executes one operation. It returns a short success
// description plus an explicit payload; side effects must show up as
// payload fields, never happen silently.
type HandlerFunc func(ctx context.Context, req Request) (string, map[string]any, error)

// Operation is one registry entry: a named handler with its declared
// required parameters.
type Operation struct {
	Name        string
	Description string
	Required    []string
	Handler     HandlerFunc
}

// Dispatcher validates, routes and wraps operations. The registry is
// built once at construction; dispatch itself is a map lookup.
type Dispatcher struct {
	store     gateway.Store
	calendar  gateway.Calendar
	messenger gateway.Messenger
	cfg       config.Config
	observer  Observer
	now       func() time.Time

	registry map[string]*Operation
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithObserver attaches an execution observer.
func WithObserver(obs Observer) Option {
	return func(d *Dispatcher) {
		if obs != nil {
			d.observer = obs
		}
	}
}

// WithClock overrides the dispatcher's time source.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDispatcher wires a dispatcher over the data access facade and
// registers the full operation set.
func NewDispatcher(store gateway.Store, calendar gateway.Calendar, messenger gateway.Messenger, cfg config.Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:     store,
		calendar:  calendar,
		messenger: messenger,
		cfg:       cfg,
		observer:  NoopObserver{},
		now:       time.Now,
		registry:  make(map[string]*Operation),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) register(op *Operation) {
	if _, exists := d.registry[op.Name]; exists {
		panic(fmt.Sprintf("duplicate operation %q", op.Name))
	}
	d.registry[op.Name] = op
}

// Operations returns all registered operations sorted by name.
func (d *Dispatcher) Operations() []*Operation {
	ops := make([]*Operation, 0, len(d.registry))
	for _, op := range d.registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Execute runs the named operation and always returns an envelope: an
// unknown name, a missing parameter, a handler error or a panic all
// surface as a failed Result, never as an error or a crash.
func (d *Dispatcher) Execute(ctx context.Context, user, name string, params Params) (result *contract.Result) {
	started := d.now()
	defer func() {
		if r := recover(); r != nil {
			result = contract.Fail(fmt.Sprintf("operation %s failed unexpectedly", name), contract.KindInternal)
		}
		event := OperationEvent{
			Name:      name,
			Duration:  d.now().Sub(started),
			Success:   result.Success,
			ErrorKind: result.ErrorKind,
			StartedAt: started,
		}
		if user != "" {
			event.Fields = map[string]any{"user": user}
		}
		d.observer.ObserveOperation(ctx, event)
	}()

	op, ok := d.registry[name]
	if !ok {
		return contract.Fail(fmt.Sprintf("unknown operation %q", name), contract.KindNotFound)
	}

	if params == nil {
		params = Params{}
	}
	if missing := missingParams(op, params); len(missing) > 0 {
		return contract.Fail(
			fmt.Sprintf("operation %s requires: %s", name, strings.Join(missing, ", ")),
			contract.KindValidation,
		)
	}

	description, payload, err := op.Handler(ctx, Request{User: user, Params: params})
	if err != nil {
		return contract.FailErr(err)
	}
	return contract.OK(description, payload)
}

// missingParams checks declared required parameters before the handler
// runs, so a validation failure never executes partially.
func missingParams(op *Operation, params Params) []string {
	var missing []string
	for _, key := range op.Required {
		if !params.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}
