// Package dmx implements the DMX-512 addressing primitives: channels,
// universes, and the sparse multiverse that a resolved show is rendered
// into each frame.
package dmx

import (
	"fmt"
	"strconv"
	"strings"
)

// ChannelsPerUniverse is the fixed slot count of a DMX-512 universe.
const ChannelsPerUniverse = 512

// Channel is a 1-indexed DMX slot number within a single universe.
type Channel uint16

// NewChannel validates c is in 1..=512.
func NewChannel(c int) (Channel, error) {
	if c < 1 || c > ChannelsPerUniverse {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChannel, c)
	}
	return Channel(c), nil
}

func (c Channel) String() string {
	return strconv.Itoa(int(c))
}

// UniverseId identifies one 512-channel address space. Zero is never valid.
type UniverseId uint16

// NewUniverseId validates id != 0.
func NewUniverseId(id int) (UniverseId, error) {
	if id <= 0 || id > 0xFFFF {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUniverseId, id)
	}
	return UniverseId(id), nil
}

func (u UniverseId) String() string {
	return strconv.Itoa(int(u))
}

// Address is a fully qualified DMX address: a universe plus a channel
// within it.
type Address struct {
	Universe UniverseId
	Channel  Channel
}

// NewAddress builds an Address from already-validated parts.
func NewAddress(universe UniverseId, channel Channel) Address {
	return Address{Universe: universe, Channel: channel}
}

// ToAbsolute converts the address to a 1-indexed absolute slot number
// across the whole universe space: (universe-1)*512 + channel.
func (a Address) ToAbsolute() uint64 {
	return uint64(a.Universe-1)*ChannelsPerUniverse + uint64(a.Channel)
}

// FromAbsolute is the inverse of ToAbsolute.
func FromAbsolute(absolute uint64) (Address, error) {
	if absolute < 1 {
		return Address{}, fmt.Errorf("%w: %d", ErrInvalidChannel, absolute)
	}
	zero := absolute - 1
	universe, err := NewUniverseId(int(zero/ChannelsPerUniverse) + 1)
	if err != nil {
		return Address{}, err
	}
	channel, err := NewChannel(int(zero%ChannelsPerUniverse) + 1)
	if err != nil {
		return Address{}, err
	}
	return Address{Universe: universe, Channel: channel}, nil
}

// String renders "universe.channel", the canonical wire form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d", a.Universe, a.Channel)
}

// ParseAddress parses the "U.C" form used throughout the command
// language.
func ParseAddress(s string) (Address, error) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return Address{}, fmt.Errorf("%w: malformed address %q", ErrParseAddress, s)
	}
	u, err := strconv.Atoi(parts[0])
	if err != nil {
		return Address{}, fmt.Errorf("%w: malformed universe in %q", ErrParseAddress, s)
	}
	c, err := strconv.Atoi(parts[1])
	if err != nil {
		return Address{}, fmt.Errorf("%w: malformed channel in %q", ErrParseAddress, s)
	}
	universe, err := NewUniverseId(u)
	if err != nil {
		return Address{}, err
	}
	channel, err := NewChannel(c)
	if err != nil {
		return Address{}, err
	}
	return Address{Universe: universe, Channel: channel}, nil
}

// Less gives Address a total ordering: universe first, then channel.
func (a Address) Less(other Address) bool {
	if a.Universe != other.Universe {
		return a.Universe < other.Universe
	}
	return a.Channel < other.Channel
}

// Value is a single raw DMX byte.
type Value uint8

// Universe holds one dense 512-slot array of channel values, zeroed by
// default.
type Universe struct {
	id     UniverseId
	values [ChannelsPerUniverse]Value
}

// NewUniverse creates a zeroed universe with the given id.
func NewUniverse(id UniverseId) *Universe {
	return &Universe{id: id}
}

// Id returns the universe's identifier.
func (u *Universe) Id() UniverseId {
	return u.id
}

// GetValue reads the value at channel c (1-indexed).
func (u *Universe) GetValue(c Channel) Value {
	return u.values[c-1]
}

// SetValue writes the value at channel c (1-indexed).
func (u *Universe) SetValue(c Channel, v Value) {
	u.values[c-1] = v
}

// Values returns the backing 512-slot array, in channel order.
func (u *Universe) Values() [ChannelsPerUniverse]Value {
	return u.values
}

// Clear zeroes every channel.
func (u *Universe) Clear() {
	u.values = [ChannelsPerUniverse]Value{}
}

// Multiverse is a sparse collection of universes, keyed by UniverseId,
// produced fresh by every resolve.
type Multiverse struct {
	universes map[UniverseId]*Universe
}

// NewMultiverse returns an empty multiverse.
func NewMultiverse() *Multiverse {
	return &Multiverse{universes: make(map[UniverseId]*Universe)}
}

// CreateUniverse inserts a fresh zeroed universe if one is not already
// present, and returns it either way.
func (m *Multiverse) CreateUniverse(id UniverseId) *Universe {
	if u, ok := m.universes[id]; ok {
		return u
	}
	u := NewUniverse(id)
	m.universes[id] = u
	return u
}

// RemoveUniverse drops a universe entirely.
func (m *Multiverse) RemoveUniverse(id UniverseId) {
	delete(m.universes, id)
}

// Universe returns the universe for id, if present.
func (m *Multiverse) Universe(id UniverseId) (*Universe, bool) {
	u, ok := m.universes[id]
	return u, ok
}

// Universes returns the full backing map. Callers must not mutate the
// returned map's identity (replacing entries); mutating a *Universe
// obtained from it is fine.
func (m *Multiverse) Universes() map[UniverseId]*Universe {
	return m.universes
}

// Set writes a value at addr, auto-creating the universe on demand.
func (m *Multiverse) Set(addr Address, v Value) {
	u := m.CreateUniverse(addr.Universe)
	u.SetValue(addr.Channel, v)
}

// Get reads a value at addr; returns 0 if the universe doesn't exist.
func (m *Multiverse) Get(addr Address) Value {
	u, ok := m.universes[addr.Universe]
	if !ok {
		return 0
	}
	return u.GetValue(addr.Channel)
}
