// Package fixturelib implements the fixture type library collaborator
// (§4.9/§6.4): a read-after-load catalogue of GDTF-lite fixture type
// descriptions, each exposing one or more named DMX modes.
package fixturelib

import "fmt"

// DmxChannel is one DMX channel slot of a mode: the attribute it
// carries and the 1-based, highest-significant-byte-first list of
// relative offsets from the fixture's base address that encode the
// attribute's value.
type DmxChannel struct {
	Attribute string
	Offsets   []int
}

// DmxMode is one named channel layout of a fixture type.
type DmxMode struct {
	Name     string
	Channels []DmxChannel
}

// FindChannel returns the first channel whose Attribute matches attr.
func (m DmxMode) FindChannel(attr string) (DmxChannel, bool) {
	for _, ch := range m.Channels {
		if ch.Attribute == attr {
			return ch, true
		}
	}
	return DmxChannel{}, false
}

// FixtureType is a resolved GDTF-lite fixture description: a name and
// the set of DMX modes it supports.
type FixtureType struct {
	ID       string
	Name     string
	FileName string
	Modes    map[string]DmxMode
}

// Mode looks up a mode by name.
func (ft *FixtureType) Mode(name string) (DmxMode, bool) {
	m, ok := ft.Modes[name]
	return m, ok
}

// HasMode reports whether name is a declared DMX mode.
func (ft *FixtureType) HasMode(name string) bool {
	_, ok := ft.Modes[name]
	return ok
}

// ModeNames returns every declared mode name, order not significant.
func (ft *FixtureType) ModeNames() []string {
	names := make([]string, 0, len(ft.Modes))
	for name := range ft.Modes {
		names = append(names, name)
	}
	return names
}

func (ft *FixtureType) String() string {
	return fmt.Sprintf("%s (%s)", ft.Name, ft.ID)
}
