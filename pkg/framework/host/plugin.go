package host

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/justyntemme/hostgo/pkg/framework/debug"
	"github.com/justyntemme/hostgo/pkg/framework/event"
	"github.com/justyntemme/hostgo/pkg/framework/param"
	"github.com/justyntemme/hostgo/pkg/framework/port"
	"github.com/justyntemme/hostgo/pkg/framework/program"
	"github.com/justyntemme/hostgo/pkg/framework/state"
)

// Plugin hints.
const (
	HintIsSynth uint32 = 1 << iota
	HintHasCustomUI
	HintCanDryWet
	HintCanVolume
	HintCanBalance
	HintCanPanning
	HintUsesChunks
)

// Extra hints reported by the backend.
const (
	ExtraHintHasMidiIn uint32 = 1 << iota
	ExtraHintHasMidiOut
	ExtraHintCanRunRack
)

// PostProc holds the host-side post-processing mix applied after the
// plugin runs.
type PostProc struct {
	DryWet       float32
	Volume       float32
	BalanceLeft  float32
	BalanceRight float32
	Panning      float32
}

// Plugin is the protected state of one hosted plugin instance. It
// exclusively owns every container below; the real-time thread never
// destroys any of it and only reads or writes through the two locks.
type Plugin struct {
	engine  Engine
	client  Client
	backend Backend
	loader  LibraryLoader
	lib     Library
	uiLib   Library
	store   *state.Store

	id         uint32
	hints      uint32
	options    uint32
	extraHints uint32

	// enabled is read by the real-time thread at the top of every cycle,
	// so it lives outside the master lock.
	enabled    atomic.Bool
	active     bool
	needsReset atomic.Bool

	ctrlChannel      int8
	patchbayClientID int

	latency        uint32
	latencyBuffers [][]float32

	name       string
	filename   string
	iconName   string
	identifier string

	// masterMu guards whole-plugin reconfiguration; mutators block on it.
	// singleMu guards one process iteration; the real-time thread only
	// ever try-acquires it.
	masterMu sync.Mutex
	singleMu sync.Mutex

	AudioIn  port.AudioData
	AudioOut port.AudioData
	CVIn     port.CVData
	CVOut    port.CVData
	Event    port.EventData

	Param    param.ParamData
	Prog     *program.ProgramData
	MidiProg *program.MidiProgramData
	Custom   state.CustomDataList

	ExtNotes *event.NoteQueue
	PostRT   *event.PostQueue

	PostProc PostProc
	OSC      OSCData

	worker *Worker
	log    *debug.Logger
}

// New creates the protected state for one plugin instance inside the
// engine. The instance starts inactive, disabled and with no selection.
func New(engine Engine, id uint32) *Plugin {
	p := &Plugin{
		engine:   engine,
		id:       id,
		Prog:     program.NewProgramData(),
		MidiProg: program.NewMidiProgramData(),
		ExtNotes: event.NewNoteQueue(event.DefaultNoteCapacity),
		PostRT:   event.NewPostQueue(event.DefaultPostCapacity),
		PostProc: PostProc{DryWet: 1, Volume: 1, BalanceLeft: -1, BalanceRight: 1},
		log:      debug.Default(),
	}
	p.worker = newWorker(p)
	return p
}

// Engine returns the owning engine.
func (p *Plugin) Engine() Engine { return p.engine }

// ID returns the engine-assigned plugin id.
func (p *Plugin) ID() uint32 { return p.id }

// Hints returns the plugin hints.
func (p *Plugin) Hints() uint32 { return p.hints }

// SetHints stores the plugin hints. Master lock held by caller.
func (p *Plugin) SetHints(hints uint32) { p.hints = hints }

// ExtraHints returns the backend-reported extra hints.
func (p *Plugin) ExtraHints() uint32 { return p.extraHints }

// SetExtraHints stores the extra hints. Master lock held by caller.
func (p *Plugin) SetExtraHints(hints uint32) { p.extraHints = hints }

// Options returns the negotiated option bits.
func (p *Plugin) Options() uint32 { return p.options }

// CtrlChannel returns the control MIDI channel, -1 when disabled.
func (p *Plugin) CtrlChannel() int8 { return p.ctrlChannel }

// SetCtrlChannel sets the control MIDI channel.
func (p *Plugin) SetCtrlChannel(ch int8) { p.ctrlChannel = ch }

// PatchbayClientID returns the engine patchbay id for this instance.
func (p *Plugin) PatchbayClientID() int { return p.patchbayClientID }

// SetPatchbayClientID stores the engine patchbay id.
func (p *Plugin) SetPatchbayClientID(id int) { p.patchbayClientID = id }

// Name returns the instance display name.
func (p *Plugin) Name() string { return p.name }

// SetName sets the instance display name.
func (p *Plugin) SetName(name string) { p.name = name }

// Filename returns the plugin binary path.
func (p *Plugin) Filename() string { return p.filename }

// IconName returns the UI icon name.
func (p *Plugin) IconName() string { return p.iconName }

// SetIconName sets the UI icon name.
func (p *Plugin) SetIconName(name string) { p.iconName = name }

// Identifier returns the stable save/restore identifier, generating one
// when the backend never reported any.
func (p *Plugin) Identifier() string {
	if p.identifier == "" {
		p.identifier = uuid.NewString()
	}
	return p.identifier
}

// SetIdentifier sets the save/restore identifier.
func (p *Plugin) SetIdentifier(id string) { p.identifier = id }

// SetClient attaches the engine client. Master lock held by caller.
func (p *Plugin) SetClient(c Client) { p.client = c }

// Client returns the engine client, nil before setup or after teardown.
func (p *Plugin) Client() Client { return p.client }

// SetBackend attaches the plugin-format adapter.
func (p *Plugin) SetBackend(b Backend) { p.backend = b }

// SetLogger replaces the logger.
func (p *Plugin) SetLogger(l *debug.Logger) {
	p.log = l
	p.worker.log = l
}

// Worker returns the plugin's worker thread handle.
func (p *Plugin) Worker() *Worker { return p.worker }

// ----------------------------------------------------------------------
// Lock protocol

// LockMaster acquires the whole-plugin reconfiguration lock. Blocking;
// never called from the real-time thread.
func (p *Plugin) LockMaster() { p.masterMu.Lock() }

// UnlockMaster releases the reconfiguration lock.
func (p *Plugin) UnlockMaster() { p.masterMu.Unlock() }

// TryProcess attempts to enter one process iteration from the real-time
// thread. It never blocks: when the plugin is disabled or the iteration
// lock is contended it queues a diagnostic and reports false, and the
// caller outputs silence for this cycle. Every true return must be paired
// with EndProcess.
func (p *Plugin) TryProcess() bool {
	if !p.enabled.Load() {
		p.PostRT.AppendRT(event.PostEvent{Kind: event.PostDebug, Value1: int32(p.id)})
		return false
	}
	if !p.singleMu.TryLock() {
		p.PostRT.AppendRT(event.PostEvent{Kind: event.PostDebug, Value1: int32(p.id)})
		return false
	}
	return true
}

// EndProcess leaves the process iteration entered by TryProcess.
func (p *Plugin) EndProcess() { p.singleMu.Unlock() }

// LockSingle acquires the single-iteration lock, waiting for any running
// process iteration to finish. Teardown path only, never the real-time
// thread; Close releases it.
func (p *Plugin) LockSingle() { p.singleMu.Lock() }

// InitCycleBuffers resets per-cycle state on every port. Called at the
// top of each process iteration, inside the single-iteration lock. Never
// allocates.
func (p *Plugin) InitCycleBuffers() {
	p.AudioIn.InitBuffers()
	p.AudioOut.InitBuffers()
	p.CVIn.InitBuffers()
	p.CVOut.InitBuffers()
	p.Event.InitBuffers()
}

// ----------------------------------------------------------------------
// Lifecycle

// Enabled reports whether the real-time thread may process this plugin.
func (p *Plugin) Enabled() bool { return p.enabled.Load() }

// SetEnabled flips processing on or off. Safe from any thread.
func (p *Plugin) SetEnabled(on bool) { p.enabled.Store(on) }

// Active reports graph membership. Master lock held by caller.
func (p *Plugin) Active() bool { return p.active }

// NeedsReset reports whether a reconfiguration is pending.
func (p *Plugin) NeedsReset() bool { return p.needsReset.Load() }

// SetNeedsReset flags or clears a pending reconfiguration.
func (p *Plugin) SetNeedsReset(on bool) { p.needsReset.Store(on) }

// Activate inserts the client into the running graph and starts the
// worker. Master lock held by caller.
func (p *Plugin) Activate() error {
	if p.active {
		return nil
	}
	if p.client != nil {
		if err := p.client.Activate(); err != nil {
			return err
		}
	}
	p.active = true
	p.worker.Start()
	return nil
}

// Deactivate removes the client from the running graph. The plugin must
// be disabled first so the real-time thread stops entering TryProcess.
// Master lock held by caller.
func (p *Plugin) Deactivate() error {
	if !p.active {
		return nil
	}
	if p.client != nil {
		if err := p.client.Deactivate(); err != nil {
			return err
		}
	}
	p.active = false
	return nil
}

// ----------------------------------------------------------------------
// Postponed events

// PostponeRtEvent queues a notification from inside the real-time
// callback for later handling on the worker thread.
func (p *Plugin) PostponeRtEvent(kind event.PostKind, value1, value2 int32, value3 float32) {
	p.PostRT.AppendRT(event.PostEvent{Kind: kind, Value1: value1, Value2: value2, Value3: value3})
}

// ----------------------------------------------------------------------
// Latency

// Latency returns the reported processing delay in frames.
func (p *Plugin) Latency() uint32 { return p.latency }

// SetLatency stores a new processing delay. Master lock held by caller;
// RecreateLatencyBuffers must follow before the next cycle uses them.
func (p *Plugin) SetLatency(frames uint32) { p.latency = frames }

// LatencyBuffer returns the delay-alignment buffer for audio output i,
// nil when latency is zero.
func (p *Plugin) LatencyBuffer(i uint32) []float32 {
	if i >= uint32(len(p.latencyBuffers)) {
		return nil
	}
	return p.latencyBuffers[i]
}

// RecreateLatencyBuffers sizes one scratch buffer per audio output to the
// current latency. Master lock held by caller; never runs concurrently
// with a process iteration.
func (p *Plugin) RecreateLatencyBuffers() {
	p.latencyBuffers = nil
	if p.latency == 0 {
		return
	}
	n := p.AudioOut.Count()
	if n == 0 {
		return
	}
	p.latencyBuffers = make([][]float32, n)
	for i := range p.latencyBuffers {
		p.latencyBuffers[i] = make([]float32, p.latency)
	}
}

// ClearBuffers destroys every port and latency buffer. Master lock held
// by caller, with no process iteration running.
func (p *Plugin) ClearBuffers() {
	p.AudioIn.Clear()
	p.AudioOut.Clear()
	p.CVIn.Clear()
	p.CVOut.Clear()
	p.Event.Clear()
	p.latency = 0
	p.latencyBuffers = nil
}

// ----------------------------------------------------------------------
// Teardown

// Close destroys the aggregate. The caller must hold both the master and
// single-iteration locks: destruction is not reentrant or concurrent-safe
// on its own, the surrounding engine guarantees exclusivity. The order is
// fixed: stop the worker, deactivate the client, clear buffers and
// tables, release the locks, then close the library.
func (p *Plugin) Close() {
	p.log.SafeAssert(!p.needsReset.Load(), "plugin %d closed with pending reset", p.id)

	// Both locks must already be held. A successful TryLock here means
	// the caller forgot one; keep it held so the teardown below still
	// runs under full exclusion.
	if p.masterMu.TryLock() {
		p.log.SafeAssert(false, "plugin %d closed without master lock held", p.id)
	}
	if p.singleMu.TryLock() {
		p.log.SafeAssert(false, "plugin %d closed without single-iteration lock held", p.id)
	}

	p.enabled.Store(false)
	p.worker.Stop()

	if p.client != nil {
		if p.client.IsActive() {
			// must not happen
			p.log.SafeAssert(false, "plugin %d client still active at close", p.id)
			p.client.Deactivate()
		}
		p.active = false

		p.ClearBuffers()

		p.client.Close()
		p.client = nil
	}

	p.Param.Clear()
	p.Prog.Clear()
	p.MidiProg.Clear()
	p.Custom.Clear()
	p.ExtNotes.Clear()
	p.PostRT.Clear()
	p.OSC.Clear()

	p.masterMu.Unlock()
	p.singleMu.Unlock()

	if p.lib != nil {
		if err := p.LibClose(); err != nil {
			p.log.Warn("plugin %d: %v", p.id, err)
		}
	}
	p.log.SafeAssert(p.uiLib == nil, "plugin %d ui library still open at close", p.id)
}
