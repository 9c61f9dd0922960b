package host

import (
	"fmt"
	"sync"

	"github.com/justyntemme/hostgo/pkg/framework/port"
)

// Shared test doubles for the host package.

type callbackRecord struct {
	kind     CallbackKind
	pluginID uint32
	value1   int32
	value2   int32
	value3   float32
	msg      string
}

type mockEngine struct {
	mu        sync.Mutex
	callbacks []callbackRecord
}

func (e *mockEngine) Callback(kind CallbackKind, pluginID uint32, v1, v2 int32, v3 float32, msg string) {
	e.mu.Lock()
	e.callbacks = append(e.callbacks, callbackRecord{kind, pluginID, v1, v2, v3, msg})
	e.mu.Unlock()
}

func (e *mockEngine) SampleRate() float64 { return 48000 }
func (e *mockEngine) BufferSize() uint32  { return 512 }

func (e *mockEngine) recorded() []callbackRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]callbackRecord, len(e.callbacks))
	copy(out, e.callbacks)
	return out
}

func (e *mockEngine) countKind(kind CallbackKind) int {
	n := 0
	for _, cb := range e.recorded() {
		if cb.kind == kind {
			n++
		}
	}
	return n
}

type mockPort struct {
	inits  int
	closes int
	buf    []float32
}

func (p *mockPort) InitBuffer()       { p.inits++ }
func (p *mockPort) Buffer() []float32 { return p.buf }
func (p *mockPort) Close()            { p.closes++ }

type mockClient struct {
	active      bool
	activates   int
	deactivates int
	closes      int
	ports       []*mockPort
}

func (c *mockClient) Activate() error {
	c.active = true
	c.activates++
	return nil
}

func (c *mockClient) Deactivate() error {
	c.active = false
	c.deactivates++
	return nil
}

func (c *mockClient) IsActive() bool { return c.active }

func (c *mockClient) newPort() *mockPort {
	p := &mockPort{buf: make([]float32, 512)}
	c.ports = append(c.ports, p)
	return p
}

func (c *mockClient) AddAudioPort(input bool, name string) (port.AudioPort, error) {
	return c.newPort(), nil
}

func (c *mockClient) AddCVPort(input bool, name string) (port.CVPort, error) {
	return c.newPort(), nil
}

func (c *mockClient) AddEventPort(input bool, name string) (port.EventPort, error) {
	return c.newPort(), nil
}

func (c *mockClient) Close() error {
	c.closes++
	return nil
}

type mockBackend struct {
	values map[uint32]float32
}

func newMockBackend() *mockBackend {
	return &mockBackend{values: make(map[uint32]float32)}
}

func (b *mockBackend) ParameterValue(id uint32) float32 { return b.values[id] }

func (b *mockBackend) SetParameterValue(id uint32, value float32) { b.values[id] = value }

type mockLibrary struct {
	symbols map[string]uintptr
	closes  int
}

func (l *mockLibrary) Symbol(name string) (uintptr, error) {
	if addr, ok := l.symbols[name]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("symbol %q not found", name)
}

func (l *mockLibrary) Close() error {
	l.closes++
	return nil
}

type mockLoader struct {
	libs  map[string]*mockLibrary
	fails bool
}

func (ld *mockLoader) Open(path string) (Library, error) {
	if ld.fails {
		return nil, fmt.Errorf("not a valid plugin binary")
	}
	lib, ok := ld.libs[path]
	if !ok {
		lib = &mockLibrary{symbols: map[string]uintptr{"plugin_descriptor": 0x1000}}
		if ld.libs == nil {
			ld.libs = make(map[string]*mockLibrary)
		}
		ld.libs[path] = lib
	}
	return lib, nil
}
