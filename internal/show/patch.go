package show

import (
	"fmt"

	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/pkg/attribute"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Fixture is one patched fixture record (§3.4). Fid is a pointer so it
// can transiently be nil (e.g. mid-edit, per §9 "fixture without
// fid"); Address is likewise a pointer since a fixture may be
// registered before it is assigned a DMX address.
type Fixture struct {
	UUID          string
	Fid           *FixtureId
	FixtureTypeID string
	Address       *dmx.Address
	DmxMode       string
	Name          string
}

// Bound reports whether f has both a FixtureId and an Address, the
// precondition for participating in resolution (§3.4).
func (f *Fixture) Bound() bool {
	return f.Fid != nil && f.Address != nil
}

// editState tracks the two-phase transaction discipline of §3.4/§9.
type editState int

const (
	editClean editState = iota
	editEditing
)

// Patch holds the fixture-type cache and the ordered fixture list,
// with a transactional edit-mode API: mutations outside edit mode
// return ErrPatchNotEditing; save_edit re-validates invariants and
// swaps the shadow in atomically.
type Patch struct {
	library *fixturelib.Library

	fixtureTypes map[string]*fixturelib.FixtureType // cache of resolved types referenced by this patch
	fixtures     []*Fixture

	state  editState
	shadow *patchShadow
}

type patchShadow struct {
	fixtureTypes map[string]*fixturelib.FixtureType
	fixtures     []*Fixture
}

// NewPatch constructs an empty patch backed by a fixture type library.
func NewPatch(library *fixturelib.Library) *Patch {
	return &Patch{
		library:      library,
		fixtureTypes: make(map[string]*fixturelib.FixtureType),
	}
}

// StartEdit begins a transaction: all further mutators operate on a
// shadow copy until SaveEdit or DiscardEdit.
func (p *Patch) StartEdit() {
	if p.state == editEditing {
		return
	}
	p.state = editEditing
	p.shadow = &patchShadow{
		fixtureTypes: cloneFixtureTypeMap(p.fixtureTypes),
		fixtures:     cloneFixtures(p.fixtures),
	}
}

// SaveEdit validates the shadow's invariants and, on success, swaps it
// in atomically. On validation failure the patch remains in Editing
// state so the caller can fix the shadow or discard it.
func (p *Patch) SaveEdit() error {
	if p.state != editEditing {
		return ErrPatchNotEditing
	}
	if err := validateInvariants(p.shadow.fixtures, p.shadow.fixtureTypes); err != nil {
		return err
	}
	p.fixtureTypes = p.shadow.fixtureTypes
	p.fixtures = p.shadow.fixtures
	p.shadow = nil
	p.state = editClean
	return nil
}

// DiscardEdit abandons the shadow, leaving committed state untouched.
func (p *Patch) DiscardEdit() {
	p.shadow = nil
	p.state = editClean
}

// Editing reports whether a transaction is currently open.
func (p *Patch) Editing() bool {
	return p.state == editEditing
}

func validateInvariants(fixtures []*Fixture, types map[string]*fixturelib.FixtureType) error {
	seen := make(map[FixtureId]bool)
	for _, f := range fixtures {
		if f.Fid != nil {
			if seen[*f.Fid] {
				return PatchInvariantViolatedError(fmt.Sprintf("duplicate fixture id %d", *f.Fid))
			}
			seen[*f.Fid] = true
		}
		ft, ok := types[f.FixtureTypeID]
		if !ok {
			return PatchInvariantViolatedError(fmt.Sprintf("fixture %s references unknown fixture type %q", f.UUID, f.FixtureTypeID))
		}
		if !ft.HasMode(f.DmxMode) {
			return PatchInvariantViolatedError(fmt.Sprintf("fixture %s references unknown dmx mode %q", f.UUID, f.DmxMode))
		}
	}
	return nil
}

func (p *Patch) activeFixtures() []*Fixture {
	if p.state == editEditing {
		return p.shadow.fixtures
	}
	return p.fixtures
}

func (p *Patch) activeFixtureTypes() map[string]*fixturelib.FixtureType {
	if p.state == editEditing {
		return p.shadow.fixtureTypes
	}
	return p.fixtureTypes
}

// FixtureByFid finds the bound or unbound fixture carrying fid.
func (p *Patch) FixtureByFid(fid FixtureId) (*Fixture, bool) {
	for _, f := range p.activeFixtures() {
		if f.Fid != nil && *f.Fid == fid {
			return f, true
		}
	}
	return nil, false
}

// Fixtures returns the committed (non-shadow) fixture list, in patch
// order.
func (p *Patch) Fixtures() []*Fixture {
	return p.fixtures
}

// FixtureType looks up a cached fixture type by id, as referenced by a
// patched Fixture's FixtureTypeID.
func (p *Patch) FixtureType(fixtureTypeID string) (*fixturelib.FixtureType, bool) {
	ft, ok := p.fixtureTypes[fixtureTypeID]
	return ft, ok
}

// Gdtfs returns every GDTF file name registered in this patch's
// fixture-type cache.
func (p *Patch) Gdtfs() map[string]bool {
	names := make(map[string]bool)
	for _, ft := range p.activeFixtureTypes() {
		if ft.FileName != "" {
			names[ft.FileName] = true
		}
	}
	return names
}

// AddFixture appends a fixture record, resolving gdtfFileName against
// the library and caching its FixtureType. Must be called within an
// edit transaction.
func (p *Patch) AddFixture(fid FixtureId, addr dmx.Address, gdtfFileName, dmxMode, name string) error {
	if p.state != editEditing {
		return ErrPatchNotEditing
	}
	fixtureTypeID, ok := p.library.IDByFileName(gdtfFileName)
	if !ok {
		return GdtfUnknownError(gdtfFileName)
	}
	ft, ok := p.library.Get(fixtureTypeID)
	if !ok {
		return GdtfUnknownError(gdtfFileName)
	}
	if !ft.HasMode(dmxMode) {
		return DmxModeUnknownError(dmxMode, ft.Name)
	}
	p.shadow.fixtureTypes[fixtureTypeID] = ft

	f := &Fixture{
		UUID:          fmt.Sprintf("fx-%d", fid),
		Fid:           &fid,
		FixtureTypeID: fixtureTypeID,
		Address:       &addr,
		DmxMode:       dmxMode,
		Name:          name,
	}
	p.shadow.fixtures = append(p.shadow.fixtures, f)
	return nil
}

// SetAddress updates the bound address of the fixture identified by
// fid.
func (p *Patch) SetAddress(fid FixtureId, addr dmx.Address) error {
	if p.state != editEditing {
		return ErrPatchNotEditing
	}
	f, ok := findByFid(p.shadow.fixtures, fid)
	if !ok {
		return NotFoundError("fixture", fmt.Sprintf("%d", fid))
	}
	f.Address = &addr
	return nil
}

// SetGdtf re-targets the fixture identified by fid at a different
// registered GDTF file, failing if the name is unregistered.
func (p *Patch) SetGdtf(fid FixtureId, gdtfFileName string) error {
	if p.state != editEditing {
		return ErrPatchNotEditing
	}
	f, ok := findByFid(p.shadow.fixtures, fid)
	if !ok {
		return NotFoundError("fixture", fmt.Sprintf("%d", fid))
	}
	fixtureTypeID, ok := p.library.IDByFileName(gdtfFileName)
	if !ok {
		return GdtfUnknownError(gdtfFileName)
	}
	ft, ok := p.library.Get(fixtureTypeID)
	if !ok {
		return GdtfUnknownError(gdtfFileName)
	}
	p.shadow.fixtureTypes[fixtureTypeID] = ft
	f.FixtureTypeID = fixtureTypeID
	return nil
}

// SetMode changes the fixture's active DMX mode, failing if the new
// mode is not declared by its fixture type.
func (p *Patch) SetMode(fid FixtureId, mode string) error {
	if p.state != editEditing {
		return ErrPatchNotEditing
	}
	f, ok := findByFid(p.shadow.fixtures, fid)
	if !ok {
		return NotFoundError("fixture", fmt.Sprintf("%d", fid))
	}
	ft, ok := p.shadow.fixtureTypes[f.FixtureTypeID]
	if !ok {
		return GdtfUnknownError(f.FixtureTypeID)
	}
	if !ft.HasMode(mode) {
		return DmxModeUnknownError(mode, ft.Name)
	}
	f.DmxMode = mode
	return nil
}

// RemoveFixture removes the fixture identified by fid, no-op if
// absent.
func (p *Patch) RemoveFixture(fid FixtureId) error {
	if p.state != editEditing {
		return ErrPatchNotEditing
	}
	for i, f := range p.shadow.fixtures {
		if f.Fid != nil && *f.Fid == fid {
			p.shadow.fixtures = append(p.shadow.fixtures[:i], p.shadow.fixtures[i+1:]...)
			return nil
		}
	}
	return nil
}

func findByFid(fixtures []*Fixture, fid FixtureId) (*Fixture, bool) {
	for _, f := range fixtures {
		if f.Fid != nil && *f.Fid == fid {
			return f, true
		}
	}
	return nil, false
}

func cloneFixtures(in []*Fixture) []*Fixture {
	out := make([]*Fixture, len(in))
	for i, f := range in {
		cp := *f
		if f.Fid != nil {
			fid := *f.Fid
			cp.Fid = &fid
		}
		if f.Address != nil {
			addr := *f.Address
			cp.Address = &addr
		}
		out[i] = &cp
	}
	return out
}

func cloneFixtureTypeMap(in map[string]*fixturelib.FixtureType) map[string]*fixturelib.FixtureType {
	out := make(map[string]*fixturelib.FixtureType, len(in))
	for k, v := range in {
		out[k] = v // fixture types are immutable once inserted (§5)
	}
	return out
}

// ResolveChannels implements the C4 patch resolver algorithm (§4.4):
// for a fixture and attribute, compute the ordered absolute channels
// that carry the attribute's value.
func ResolveChannels(f *Fixture, ft *fixturelib.FixtureType, attr attribute.Attribute) ([]dmx.Address, error) {
	if !f.Bound() {
		return nil, nil
	}
	mode, ok := ft.Mode(f.DmxMode)
	if !ok {
		return nil, DmxModeUnknownError(f.DmxMode, ft.Name)
	}
	ch, ok := mode.FindChannel(attr.String())
	if !ok {
		return nil, nil
	}
	if len(ch.Offsets) == 0 {
		return nil, nil
	}
	addrs := make([]dmx.Address, 0, len(ch.Offsets))
	for _, offset := range ch.Offsets {
		channelNum := int(f.Address.Channel) + (offset - 1)
		if channelNum < 1 || channelNum > dmx.ChannelsPerUniverse {
			return nil, AddressOutOfRangeError(channelNum)
		}
		channel, err := dmx.NewChannel(channelNum)
		if err != nil {
			return nil, AddressOutOfRangeError(channelNum)
		}
		addrs = append(addrs, dmx.Address{Universe: f.Address.Universe, Channel: channel})
	}
	return addrs, nil
}
