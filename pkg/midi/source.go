package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/justyntemme/hostgo/pkg/framework/debug"
)

// Source connects one MIDI input port to a Sink.
type Source struct {
	sink    Sink
	log     *debug.Logger
	port    string
	stop    func()
	dropped uint64
}

// NewSource returns an unconnected source feeding sink.
func NewSource(sink Sink) *Source {
	return &Source{sink: sink, log: debug.Default()}
}

// SetLogger overrides the source's logger.
func (s *Source) SetLogger(l *debug.Logger) {
	if l != nil {
		s.log = l
	}
}

// Open finds the named input port with the registered driver and starts
// listening. Notes flow into the sink from the driver's own goroutine, so
// the sink must tolerate concurrent producers.
func (s *Source) Open(portName string) error {
	if s.stop != nil {
		return fmt.Errorf("midi source already open on %q", s.port)
	}
	in, err := midi.FindInPort(portName)
	if err != nil {
		return fmt.Errorf("midi input %q: %w", portName, err)
	}
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		s.Handle(msg)
	}, midi.HandleError(func(listenErr error) {
		s.log.Warn("midi input %q: %v", portName, listenErr)
	}))
	if err != nil {
		return fmt.Errorf("midi input %q: %w", portName, err)
	}
	s.port = portName
	s.stop = stop
	s.log.Info("midi input connected: %s", portName)
	return nil
}

// Handle translates one message and pushes it to the sink. Exposed so
// hosts with their own listener loop can reuse the translation path.
func (s *Source) Handle(msg midi.Message) {
	n, ok := Translate(msg)
	if !ok {
		return
	}
	if !s.sink.Append(n) {
		s.dropped++
		s.log.Debug("midi note dropped: ch=%d note=%d vel=%d", n.Channel, n.Note, n.Velocity)
	}
}

// Dropped returns how many translated notes the sink refused.
func (s *Source) Dropped() uint64 { return s.dropped }

// Close stops listening. Safe to call when never opened.
func (s *Source) Close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
		s.log.Info("midi input closed: %s", s.port)
	}
}
