package command

import (
	"github.com/bbernstein/console-core/internal/show"
	"github.com/bbernstein/console-core/pkg/attribute"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Command is the tagged union of every command the grammar of §4.2.1
// produces. Concrete types below are pure data, independent of any
// Show — they carry only what the grammar's productions name.
type Command interface {
	commandNode()
}

type PatchAdd struct {
	Fid     show.FixtureId
	Addr    dmx.Address
	Gdtf    string
	Mode    string
}

type PatchSetAddress struct {
	Fid  show.FixtureId
	Addr dmx.Address
}

type PatchSetGdtf struct {
	Fid  show.FixtureId
	Gdtf string
}

type PatchSetMode struct {
	Fid  show.FixtureId
	Mode string
}

type PatchRemove struct {
	Fid show.FixtureId
}

type ProgrammerAttribute struct {
	Fid   show.FixtureId
	Attr  attribute.Attribute
	Value attribute.Value
}

type ProgrammerAddress struct {
	Addr  dmx.Address
	Value dmx.Value
}

type ProgrammerClear struct{}

type Create struct {
	ID   show.AnyObjectId
	Name string
}

type Remove struct {
	ID show.AnyObjectId
}

type Rename struct {
	ID   show.AnyObjectId
	Name string
}

type ExecutorButtonMode struct {
	ID show.ExecutorId
}

type ExecutorButtonPress struct {
	ID show.ExecutorId
}

type ExecutorButtonRelease struct {
	ID show.ExecutorId
}

type ExecutorFaderMode struct {
	ID show.ExecutorId
}

type ExecutorFaderLevel struct {
	ID    show.ExecutorId
	Level float64
}

type ExecutorSequence struct {
	ID  show.ExecutorId
	Seq show.SequenceId
}

type ExecutorClear struct {
	ID show.ExecutorId
}

type SequenceAdd struct {
	ID  show.SequenceId
	Cue show.CueId
}

type SequenceReplaceAt struct {
	ID    show.SequenceId
	Index int
	Cue   show.CueId
}

type SequenceRemove struct {
	ID  show.SequenceId
	Cue show.CueId
}

type SequenceRemoveAt struct {
	ID    show.SequenceId
	Index int
}

type SequenceClear struct {
	ID show.SequenceId
}

type CueAdd struct {
	ID     show.CueId
	Recipe show.Recipe
}

type CueReplaceAt struct {
	ID     show.CueId
	Index  int
	Recipe show.Recipe
}

type CueRemoveAt struct {
	ID    show.CueId
	Index int
}

type CueClear struct {
	ID show.CueId
}

type FixtureGroupAdd struct {
	ID  show.FixtureGroupId
	Fid show.FixtureId
}

type FixtureGroupReplaceAt struct {
	ID    show.FixtureGroupId
	Index int
	Fid   show.FixtureId
}

type FixtureGroupRemove struct {
	ID  show.FixtureGroupId
	Fid show.FixtureId
}

type FixtureGroupRemoveAt struct {
	ID    show.FixtureGroupId
	Index int
}

type FixtureGroupClear struct {
	ID show.FixtureGroupId
}

// PresetStore is `preset::<kind> <id> store [selective|universal]`.
// Kind is nil when the kind argument is omitted, meaning "convert to
// nothing — store using the preset's current content kind" (§4.2.1,
// §9 resolved open question).
type PresetStore struct {
	ID   show.AnyPresetId
	Kind *show.PresetContentKind
}

type PresetClear struct {
	ID show.AnyPresetId
}

func (PatchAdd) commandNode()              {}
func (PatchSetAddress) commandNode()        {}
func (PatchSetGdtf) commandNode()           {}
func (PatchSetMode) commandNode()           {}
func (PatchRemove) commandNode()            {}
func (ProgrammerAttribute) commandNode()    {}
func (ProgrammerAddress) commandNode()      {}
func (ProgrammerClear) commandNode()        {}
func (Create) commandNode()                 {}
func (Remove) commandNode()                 {}
func (Rename) commandNode()                 {}
func (ExecutorButtonMode) commandNode()     {}
func (ExecutorButtonPress) commandNode()    {}
func (ExecutorButtonRelease) commandNode()  {}
func (ExecutorFaderMode) commandNode()      {}
func (ExecutorFaderLevel) commandNode()     {}
func (ExecutorSequence) commandNode()       {}
func (ExecutorClear) commandNode()          {}
func (SequenceAdd) commandNode()            {}
func (SequenceReplaceAt) commandNode()      {}
func (SequenceRemove) commandNode()         {}
func (SequenceRemoveAt) commandNode()       {}
func (SequenceClear) commandNode()          {}
func (CueAdd) commandNode()                 {}
func (CueReplaceAt) commandNode()           {}
func (CueRemoveAt) commandNode()            {}
func (CueClear) commandNode()               {}
func (FixtureGroupAdd) commandNode()        {}
func (FixtureGroupReplaceAt) commandNode()  {}
func (FixtureGroupRemove) commandNode()     {}
func (FixtureGroupRemoveAt) commandNode()   {}
func (FixtureGroupClear) commandNode()      {}
func (PresetStore) commandNode()            {}
func (PresetClear) commandNode()            {}
