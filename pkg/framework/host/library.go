package host

import "fmt"

// Library is an opened plugin binary. The core never loads code itself;
// it holds the handle and guarantees it is closed exactly once, after all
// buffers depending on symbols from it have been cleared.
type Library interface {
	// Symbol resolves an exported symbol, or returns a descriptive error.
	Symbol(name string) (uintptr, error)
	// Close releases the library.
	Close() error
}

// LibraryLoader opens plugin binaries. Injected by the engine.
type LibraryLoader interface {
	Open(path string) (Library, error)
}

// SetLoader injects the library loader. Must happen before LibOpen.
func (p *Plugin) SetLoader(loader LibraryLoader) {
	p.loader = loader
}

// LibOpen opens the plugin binary at path. Failure is reported as a
// descriptive error; the caller decides whether instantiation fails.
func (p *Plugin) LibOpen(path string) error {
	if p.loader == nil {
		return fmt.Errorf("could not open %q: no library loader configured", path)
	}
	if p.lib != nil {
		return fmt.Errorf("could not open %q: library already open", path)
	}
	lib, err := p.loader.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	p.lib = lib
	p.filename = path
	return nil
}

// LibClose closes the plugin binary. Safe to call when nothing is open;
// the handle is closed at most once.
func (p *Plugin) LibClose() error {
	if p.lib == nil {
		return nil
	}
	err := p.lib.Close()
	p.lib = nil
	if err != nil {
		return fmt.Errorf("could not close %q: %w", p.filename, err)
	}
	return nil
}

// LibSymbol resolves a symbol from the open plugin binary.
func (p *Plugin) LibSymbol(name string) (uintptr, error) {
	if p.lib == nil {
		return 0, fmt.Errorf("could not resolve %q: library not open", name)
	}
	return p.lib.Symbol(name)
}

// UILibOpen opens the plugin's UI binary.
func (p *Plugin) UILibOpen(path string) error {
	if p.loader == nil {
		return fmt.Errorf("could not open %q: no library loader configured", path)
	}
	if p.uiLib != nil {
		return fmt.Errorf("could not open %q: ui library already open", path)
	}
	lib, err := p.loader.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	p.uiLib = lib
	return nil
}

// UILibClose closes the plugin's UI binary, at most once.
func (p *Plugin) UILibClose() error {
	if p.uiLib == nil {
		return nil
	}
	err := p.uiLib.Close()
	p.uiLib = nil
	return err
}

// UILibSymbol resolves a symbol from the open UI binary.
func (p *Plugin) UILibSymbol(name string) (uintptr, error) {
	if p.uiLib == nil {
		return 0, fmt.Errorf("could not resolve %q: ui library not open", name)
	}
	return p.uiLib.Symbol(name)
}
