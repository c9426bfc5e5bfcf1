// Package show implements the show-state domain model: the patch,
// fixture groups, cues, sequences, executors, presets, the live
// programmer layer, and the Show aggregate that owns all of them.
package show

import "fmt"

// FixtureId identifies a patched fixture. The zero value is never a
// valid id; ids are minted by the patch command, not generated.
type FixtureId uint32

// FixtureGroupId identifies a FixtureGroup.
type FixtureGroupId uint32

// CueId identifies a Cue.
type CueId uint32

// SequenceId identifies a Sequence.
type SequenceId uint32

// ExecutorId identifies an Executor.
type ExecutorId uint32

// Preset id families, one per feature group, kept disjoint so a
// DimmerPresetId(1) and a ColorPresetId(1) never collide.
type (
	DimmerPresetId   uint32
	PositionPresetId uint32
	GoboPresetId     uint32
	ColorPresetId    uint32
	BeamPresetId     uint32
	FocusPresetId    uint32
	ControlPresetId  uint32
	ShapersPresetId  uint32
	VideoPresetId    uint32
)

// ObjectKind discriminates AnyObjectId / AnyPresetId tags.
type ObjectKind int

const (
	ObjectKindExecutor ObjectKind = iota
	ObjectKindSequence
	ObjectKindCue
	ObjectKindFixtureGroup
	ObjectKindPresetDimmer
	ObjectKindPresetPosition
	ObjectKindPresetGobo
	ObjectKindPresetColor
	ObjectKindPresetBeam
	ObjectKindPresetFocus
	ObjectKindPresetControl
	ObjectKindPresetShapers
	ObjectKindPresetVideo
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectKindExecutor:
		return "executor"
	case ObjectKindSequence:
		return "sequence"
	case ObjectKindCue:
		return "cue"
	case ObjectKindFixtureGroup:
		return "fixture_group"
	case ObjectKindPresetDimmer:
		return "preset::dimmer"
	case ObjectKindPresetPosition:
		return "preset::position"
	case ObjectKindPresetGobo:
		return "preset::gobo"
	case ObjectKindPresetColor:
		return "preset::color"
	case ObjectKindPresetBeam:
		return "preset::beam"
	case ObjectKindPresetFocus:
		return "preset::focus"
	case ObjectKindPresetControl:
		return "preset::control"
	case ObjectKindPresetShapers:
		return "preset::shapers"
	case ObjectKindPresetVideo:
		return "preset::video"
	default:
		return "unknown"
	}
}

// IsPreset reports whether k names one of the nine preset families.
func (k ObjectKind) IsPreset() bool {
	return k >= ObjectKindPresetDimmer && k <= ObjectKindPresetVideo
}

// AnyObjectId is a tagged union over every object identifier family
// the command language addresses uniformly (create/remove/rename and
// the object sub-commands).
type AnyObjectId struct {
	Kind ObjectKind
	// Value is the raw numeric id, regardless of family; callers
	// that need a concretely typed id convert it directly, e.g.
	// ExecutorId(id.Value).
	Value uint32
}

func (id AnyObjectId) String() string {
	return fmt.Sprintf("%s %d", id.Kind, id.Value)
}

// AnyPresetId narrows AnyObjectId to only the nine preset families,
// used wherever the grammar specifically requires a preset reference
// (e.g. inside a Recipe).
type AnyPresetId struct {
	Kind ObjectKind
	Value uint32
}

func (id AnyPresetId) AsAnyObjectId() AnyObjectId {
	return AnyObjectId{Kind: id.Kind, Value: id.Value}
}

func (id AnyPresetId) String() string {
	return fmt.Sprintf("%s %d", id.Kind, id.Value)
}

// FeatureGroupOf returns the feature-group index (0..8, matching
// attribute.FeatureGroups() order) that a preset object-kind belongs
// to.
func FeatureGroupOf(k ObjectKind) (int, bool) {
	switch k {
	case ObjectKindPresetDimmer:
		return 0, true
	case ObjectKindPresetPosition:
		return 1, true
	case ObjectKindPresetGobo:
		return 2, true
	case ObjectKindPresetColor:
		return 3, true
	case ObjectKindPresetBeam:
		return 4, true
	case ObjectKindPresetFocus:
		return 5, true
	case ObjectKindPresetControl:
		return 6, true
	case ObjectKindPresetShapers:
		return 7, true
	case ObjectKindPresetVideo:
		return 8, true
	default:
		return 0, false
	}
}

// ObjectKindForFeatureGroup is the inverse of FeatureGroupOf.
func ObjectKindForFeatureGroup(index int) (ObjectKind, bool) {
	switch index {
	case 0:
		return ObjectKindPresetDimmer, true
	case 1:
		return ObjectKindPresetPosition, true
	case 2:
		return ObjectKindPresetGobo, true
	case 3:
		return ObjectKindPresetColor, true
	case 4:
		return ObjectKindPresetBeam, true
	case 5:
		return ObjectKindPresetFocus, true
	case 6:
		return ObjectKindPresetControl, true
	case 7:
		return ObjectKindPresetShapers, true
	case 8:
		return ObjectKindPresetVideo, true
	default:
		return 0, false
	}
}
