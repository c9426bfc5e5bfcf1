// Package engine owns the single Show value and serializes every
// mutation and resolve against it through one goroutine, the
// concurrency model of §5: the show is never touched from more than
// one goroutine at a time, so command execution needs no internal
// locking.
package engine

import (
	"context"
	"time"

	"github.com/bbernstein/console-core/internal/command"
	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/internal/pubsub"
	"github.com/bbernstein/console-core/internal/show"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// request is one unit of work handed to the engine's loop goroutine.
// Exactly one of execute/resolve/snapshot is set.
type request struct {
	line     string
	resolve  bool
	snapshot bool
	reply    chan response
}

type response struct {
	err  error
	mv   *dmx.Multiverse
	show *show.Show
}

// Engine owns a Show and a fixture type library, and runs every
// command and resolve against them on a single goroutine reached
// through channel sends from arbitrary caller goroutines (HTTP
// handlers, the resolve ticker).
type Engine struct {
	requests chan request
	pub      *pubsub.PubSub

	resolveEvery time.Duration
}

// New constructs an engine that will drive the given show once Run is
// called. resolveEvery is the period of the background resolve tick
// that republishes TopicDMXOutput even when nothing changed (§4.8);
// zero disables the ticker and resolution happens only after a
// successful command or an explicit Resolve call.
func New(pub *pubsub.PubSub, resolveEvery time.Duration) *Engine {
	return &Engine{
		requests:     make(chan request),
		pub:          pub,
		resolveEvery: resolveEvery,
	}
}

// Run drives the request loop until ctx is cancelled, owning sh and
// lib for its entire lifetime. Run blocks; callers start it in its own
// goroutine.
func (e *Engine) Run(ctx context.Context, sh *show.Show, lib *fixturelib.Library) {
	var ticker *time.Ticker
	var tickC <-chan time.Time
	if e.resolveEvery > 0 {
		ticker = time.NewTicker(e.resolveEvery)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tickC:
			mv := show.ResolveFrame(sh)
			e.pub.Publish(pubsub.TopicDMXOutput, mv)
		case req := <-e.requests:
			e.handle(sh, req)
		}
	}
}

func (e *Engine) handle(sh *show.Show, req request) {
	switch {
	case req.snapshot:
		req.reply <- response{show: sh}
	case req.resolve:
		mv := show.ResolveFrame(sh)
		e.pub.Publish(pubsub.TopicDMXOutput, mv)
		req.reply <- response{mv: mv}
	default:
		cmd, err := command.Parse(req.line)
		if err != nil {
			req.reply <- response{err: err}
			return
		}
		if err := command.Execute(sh, cmd); err != nil {
			req.reply <- response{err: err}
			return
		}
		e.pub.Publish(pubsub.TopicShowChanged, req.line)
		mv := show.ResolveFrame(sh)
		e.pub.Publish(pubsub.TopicDMXOutput, mv)
		req.reply <- response{mv: mv}
	}
}

// Execute parses and runs a single command line against the owned
// show, atomically (§4.3), then resolves and publishes the resulting
// frame.
func (e *Engine) Execute(ctx context.Context, line string) (*dmx.Multiverse, error) {
	reply := make(chan response, 1)
	select {
	case e.requests <- request{line: line, reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case res := <-reply:
		return res.mv, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Resolve forces an out-of-band resolve without executing a command,
// e.g. for a client that just wants the current frame.
func (e *Engine) Resolve(ctx context.Context) (*dmx.Multiverse, error) {
	reply := make(chan response, 1)
	select {
	case e.requests <- request{resolve: true, reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case res := <-reply:
		return res.mv, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Snapshot returns the live *show.Show for read-only inspection (e.g.
// serializing it for a showfile save or an HTTP GET /show). Callers
// must not mutate the returned value — it is the same pointer the
// engine goroutine is operating on.
func (e *Engine) Snapshot(ctx context.Context) (*show.Show, error) {
	reply := make(chan response, 1)
	select {
	case e.requests <- request{snapshot: true, reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case res := <-reply:
		return res.show, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
