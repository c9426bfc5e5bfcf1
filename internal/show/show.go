package show

import (
	"github.com/bbernstein/console-core/internal/fixturelib"
)

// Show is the aggregate root (§3.7): the patch, the live programmer
// overlay, and every addressable object family the command language
// can create, remove, or rename. A Show is not safe for concurrent
// mutation — the engine serializes access through a single command
// loop (§5).
type Show struct {
	Patch       *Patch
	Programmer  *Programmer

	fixtureGroups map[FixtureGroupId]*FixtureGroup
	cues          map[CueId]*Cue
	sequences     map[SequenceId]*Sequence
	executors     map[ExecutorId]*Executor
	presets       map[ObjectKind]map[uint32]*Preset
}

// NewShow constructs an empty show backed by a fixture type library.
func NewShow(library *fixturelib.Library) *Show {
	s := &Show{
		Patch:         NewPatch(library),
		Programmer:    NewProgrammer(),
		fixtureGroups: make(map[FixtureGroupId]*FixtureGroup),
		cues:          make(map[CueId]*Cue),
		sequences:     make(map[SequenceId]*Sequence),
		executors:     make(map[ExecutorId]*Executor),
		presets:       make(map[ObjectKind]map[uint32]*Preset),
	}
	for _, k := range presetKinds {
		s.presets[k] = make(map[uint32]*Preset)
	}
	return s
}

var presetKinds = []ObjectKind{
	ObjectKindPresetDimmer, ObjectKindPresetPosition, ObjectKindPresetGobo,
	ObjectKindPresetColor, ObjectKindPresetBeam, ObjectKindPresetFocus,
	ObjectKindPresetControl, ObjectKindPresetShapers, ObjectKindPresetVideo,
}

// FixtureGroup accessors.

func (s *Show) FixtureGroup(id FixtureGroupId) (*FixtureGroup, bool) {
	g, ok := s.fixtureGroups[id]
	return g, ok
}

func (s *Show) FixtureGroups() map[FixtureGroupId]*FixtureGroup {
	return s.fixtureGroups
}

func (s *Show) CreateFixtureGroup(id FixtureGroupId, name string) error {
	if _, exists := s.fixtureGroups[id]; exists {
		return DuplicateError("fixture_group", ObjectKindFixtureGroup.String())
	}
	s.fixtureGroups[id] = NewFixtureGroup(id, name)
	return nil
}

// Cue accessors.

func (s *Show) Cue(id CueId) (*Cue, bool) {
	c, ok := s.cues[id]
	return c, ok
}

func (s *Show) Cues() map[CueId]*Cue {
	return s.cues
}

func (s *Show) CreateCue(id CueId, name string) error {
	if _, exists := s.cues[id]; exists {
		return DuplicateError("cue", name)
	}
	s.cues[id] = NewCue(id, name)
	return nil
}

// Sequence accessors.

func (s *Show) Sequence(id SequenceId) (*Sequence, bool) {
	sq, ok := s.sequences[id]
	return sq, ok
}

func (s *Show) Sequences() map[SequenceId]*Sequence {
	return s.sequences
}

func (s *Show) CreateSequence(id SequenceId, name string) error {
	if _, exists := s.sequences[id]; exists {
		return DuplicateError("sequence", name)
	}
	s.sequences[id] = NewSequence(id, name)
	return nil
}

// Executor accessors.

func (s *Show) Executor(id ExecutorId) (*Executor, bool) {
	e, ok := s.executors[id]
	return e, ok
}

func (s *Show) Executors() map[ExecutorId]*Executor {
	return s.executors
}

// ExecutorsByID returns executors sorted by ascending id, the order in
// which the base layer is merged (§4.8 step 2).
func (s *Show) ExecutorsByID() []*Executor {
	out := make([]*Executor, 0, len(s.executors))
	for _, e := range s.executors {
		out = append(out, e)
	}
	sortExecutors(out)
	return out
}

func sortExecutors(es []*Executor) {
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && es[j].ID < es[j-1].ID; j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}

func (s *Show) CreateExecutor(id ExecutorId, name string) error {
	if _, exists := s.executors[id]; exists {
		return DuplicateError("executor", name)
	}
	s.executors[id] = NewExecutor(id, name)
	return nil
}

// Preset accessors, generic across all nine families.

func (s *Show) Preset(id AnyPresetId) (*Preset, bool) {
	family, ok := s.presets[id.Kind]
	if !ok {
		return nil, false
	}
	p, ok := family[id.Value]
	return p, ok
}

func (s *Show) PresetsOf(kind ObjectKind) map[uint32]*Preset {
	return s.presets[kind]
}

func (s *Show) CreatePreset(kind ObjectKind, id uint32, name string) error {
	family, ok := s.presets[kind]
	if !ok {
		return NotFoundError("preset family", kind.String())
	}
	if _, exists := family[id]; exists {
		return DuplicateError(kind.String(), name)
	}
	p, err := NewPreset(kind, id, name)
	if err != nil {
		return err
	}
	family[id] = p
	return nil
}

// RemoveObject deletes the object addressed by id from whichever
// family it belongs to; no-op if absent (§4.3 `remove` contract:
// removing a non-existent object is not an error).
func (s *Show) RemoveObject(id AnyObjectId) {
	switch {
	case id.Kind == ObjectKindExecutor:
		delete(s.executors, ExecutorId(id.Value))
	case id.Kind == ObjectKindSequence:
		delete(s.sequences, SequenceId(id.Value))
	case id.Kind == ObjectKindCue:
		delete(s.cues, CueId(id.Value))
	case id.Kind == ObjectKindFixtureGroup:
		delete(s.fixtureGroups, FixtureGroupId(id.Value))
	case id.Kind.IsPreset():
		if family, ok := s.presets[id.Kind]; ok {
			delete(family, id.Value)
		}
	}
}

// RenameObject renames the object addressed by id, returning
// ErrNotFound if it does not exist.
func (s *Show) RenameObject(id AnyObjectId, name string) error {
	switch {
	case id.Kind == ObjectKindExecutor:
		e, ok := s.executors[ExecutorId(id.Value)]
		if !ok {
			return NotFoundError(id.Kind.String(), id.String())
		}
		e.Name = name
	case id.Kind == ObjectKindSequence:
		sq, ok := s.sequences[SequenceId(id.Value)]
		if !ok {
			return NotFoundError(id.Kind.String(), id.String())
		}
		sq.Name = name
	case id.Kind == ObjectKindCue:
		c, ok := s.cues[CueId(id.Value)]
		if !ok {
			return NotFoundError(id.Kind.String(), id.String())
		}
		c.Name = name
	case id.Kind == ObjectKindFixtureGroup:
		g, ok := s.fixtureGroups[FixtureGroupId(id.Value)]
		if !ok {
			return NotFoundError(id.Kind.String(), id.String())
		}
		g.Name = name
	case id.Kind.IsPreset():
		family, ok := s.presets[id.Kind]
		if !ok {
			return NotFoundError(id.Kind.String(), id.String())
		}
		p, ok := family[id.Value]
		if !ok {
			return NotFoundError(id.Kind.String(), id.String())
		}
		p.Name = name
	default:
		return NotFoundError(id.Kind.String(), id.String())
	}
	return nil
}
