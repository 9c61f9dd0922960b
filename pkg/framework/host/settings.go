package host

import (
	"math/bits"

	"github.com/justyntemme/hostgo/pkg/framework/state"
)

// Option bits negotiated per plugin.
const (
	OptionFixedBuffers uint32 = 1 << iota
	OptionForceStereo
	OptionMapProgramChanges
	OptionUseChunks
	OptionSendControlChanges
	OptionSendChannelPressure
	OptionSendNoteAftertouch
	OptionSendPitchbend
	OptionSendAllSoundOff
)

// SetSettingsStore attaches the persistent settings store. Optional; when
// absent, settings live only for the session.
func (p *Plugin) SetSettingsStore(s *state.Store) {
	p.store = s
}

// SaveSetting flips one option bit and persists the choice under the
// plugin's identifier.
func (p *Plugin) SaveSetting(option uint32, on bool) error {
	if on {
		p.options |= option
	} else {
		p.options &^= option
	}
	if p.store == nil {
		return nil
	}
	return p.store.SaveSetting(p.Identifier(), option, on)
}

// LoadSettings negotiates the effective option set: requested bits the
// plugin does not support are dropped, never silently accepted, and
// persisted per-plugin choices override the requested defaults. The
// result is stored and returned.
func (p *Plugin) LoadSettings(requested, available uint32) uint32 {
	options := requested & available

	if p.store != nil {
		remaining := available
		for remaining != 0 {
			bit := uint32(1) << uint(bits.TrailingZeros32(remaining))
			remaining &^= bit

			on, ok, err := p.store.LoadSetting(p.Identifier(), bit)
			if err != nil {
				p.log.Warn("plugin %d: %v", p.id, err)
				continue
			}
			if !ok {
				continue
			}
			if on {
				options |= bit
			} else {
				options &^= bit
			}
		}
	}

	p.options = options
	return options
}
