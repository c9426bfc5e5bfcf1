package show

import (
	"github.com/bbernstein/console-core/pkg/attribute"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Programmer is the live overlay (§4.5, C5): attribute values set by
// hand, plus raw DMX overrides, both taking precedence over every base
// layer source at resolution time. Unlike a Preset, it is never
// feature-group filtered — the operator may touch any attribute of any
// patched fixture.
type Programmer struct {
	attributes map[FixtureAttr]attribute.Value
	direct     map[dmx.Address]dmx.Value
}

// NewProgrammer constructs an empty programmer.
func NewProgrammer() *Programmer {
	return &Programmer{
		attributes: make(map[FixtureAttr]attribute.Value),
		direct:     make(map[dmx.Address]dmx.Value),
	}
}

// SetAttributeValue records an attribute-level override for a fixture.
func (p *Programmer) SetAttributeValue(fid FixtureId, attr attribute.Attribute, v attribute.Value) {
	p.attributes[FixtureAttr{Fid: fid, Attr: attr}] = v
}

// ClearAttribute removes a single attribute override, if present.
func (p *Programmer) ClearAttribute(fid FixtureId, attr attribute.Attribute) {
	delete(p.attributes, FixtureAttr{Fid: fid, Attr: attr})
}

// SetDmxValue records a raw channel override, applied after attribute
// resolution as the final layer (§4.8 step 5).
func (p *Programmer) SetDmxValue(addr dmx.Address, v dmx.Value) {
	p.direct[addr] = v
}

// ClearDmxValue removes a single raw channel override, if present.
func (p *Programmer) ClearDmxValue(addr dmx.Address) {
	delete(p.direct, addr)
}

// Clear empties both the attribute and direct-override layers — the
// programmer command's `clear` sub-command.
func (p *Programmer) Clear() {
	p.attributes = make(map[FixtureAttr]attribute.Value)
	p.direct = make(map[dmx.Address]dmx.Value)
}

// Attributes returns the programmer's attribute-level overrides. The
// map's iteration order is not defined; it does not follow the order
// in which values were set.
func (p *Programmer) Attributes() map[FixtureAttr]attribute.Value {
	return p.attributes
}

// DirectValues returns the programmer's raw channel overrides.
func (p *Programmer) DirectValues() map[dmx.Address]dmx.Value {
	return p.direct
}
