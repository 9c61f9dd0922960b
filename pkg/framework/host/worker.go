package host

import (
	"context"
	"sync"
	"time"

	"github.com/justyntemme/hostgo/pkg/framework/debug"
	"github.com/justyntemme/hostgo/pkg/framework/event"
)

// defaultWorkerInterval paces the postponed-event drain. Low enough that
// UI feedback feels immediate, high enough to stay invisible next to the
// audio period.
const defaultWorkerInterval = 5 * time.Millisecond

// Worker is the per-plugin non-real-time thread. It periodically splices
// and drains the postponed-event queue, playing events back as host
// notifications, and reports events the real-time thread had to drop.
// OSC dispatch and other slow plugin work ride the same goroutine.
type Worker struct {
	plugin   *Plugin
	interval time.Duration
	log      *debug.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool

	reportedDrops uint64
}

func newWorker(p *Plugin) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		plugin:   p,
		interval: defaultWorkerInterval,
		log:      p.log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the worker goroutine. Safe to call multiple times.
func (w *Worker) Start() {
	if w.started {
		return
	}
	w.started = true
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.ctx.Done():
				// Final drain so nothing queued before shutdown is lost.
				w.Run()
				return
			case <-ticker.C:
				w.Run()
			}
		}
	}()
}

// Stop halts the worker and waits for it to finish. The final drain runs
// before Stop returns.
func (w *Worker) Stop() {
	w.cancel()
	w.wg.Wait()
}

// Run performs one drain iteration: splice the staging list, play back
// every visible event, report drops. Exposed so tests and single-threaded
// hosts can pump the queue without the goroutine.
func (w *Worker) Run() int {
	w.plugin.PostRT.TrySplice()
	n := w.plugin.PostRT.Drain(w.dispatch)

	if dropped := w.plugin.PostRT.Dropped(); dropped > w.reportedDrops {
		delta := dropped - w.reportedDrops
		w.reportedDrops = dropped
		w.log.Warn("plugin %d dropped %d postponed events", w.plugin.id, delta)
		w.plugin.engine.Callback(CallbackDebug, w.plugin.id, int32(delta), 0, 0,
			"postponed events dropped under load")
	}
	return n
}

// dispatch plays one postponed event back as a host notification. Pure
// delivery: cursor and table updates happen on the engine side, under its
// own locking, so this path can never deadlock against the master lock.
func (w *Worker) dispatch(ev event.PostEvent) {
	p := w.plugin
	switch ev.Kind {
	case event.PostDebug:
		p.engine.Callback(CallbackDebug, p.id, ev.Value1, ev.Value2, ev.Value3, "")

	case event.PostParameterChange:
		// Value2 set means the change originated from the host and must
		// not be echoed back.
		if ev.Value2 != 0 {
			return
		}
		p.engine.Callback(CallbackParameterValueChanged, p.id, ev.Value1, 0, ev.Value3, "")

	case event.PostProgramChange:
		p.engine.Callback(CallbackProgramChanged, p.id, ev.Value1, 0, 0, "")

	case event.PostMidiProgramChange:
		p.engine.Callback(CallbackMidiProgramChanged, p.id, ev.Value1, 0, 0, "")

	case event.PostNoteOn:
		p.engine.Callback(CallbackNoteOn, p.id, ev.Value1, ev.Value2, ev.Value3, "")

	case event.PostNoteOff:
		p.engine.Callback(CallbackNoteOff, p.id, ev.Value1, ev.Value2, 0, "")
	}
}
