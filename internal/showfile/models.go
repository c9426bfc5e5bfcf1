// Package showfile persists a show.Show aggregate to a sqlite database
// via gorm, implementing the collaborator contract of §6.2: hand the
// core a Show value, receive one back.
package showfile

// patchFixtureRow is one row of patch_fixtures, mirroring the teacher's
// FixtureInstance model shape (string primary key, nullable foreign
// references, a denormalized mode name).
type patchFixtureRow struct {
	UUID          string `gorm:"primaryKey"`
	Fid           *uint32
	FixtureTypeID string
	Universe      *uint16
	Channel       *uint16
	DmxMode       string
	Name          string
}

func (patchFixtureRow) TableName() string { return "patch_fixtures" }

// fixtureTypeRow caches a GDTF-lite descriptor, keyed by its content
// hash id, with the parsed mode table serialized to a JSON blob column
// (the teacher's pattern for nested structures such as Scene's
// FixtureValue.Channels).
type fixtureTypeRow struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	FileName string
	ModesRaw []byte // JSON-encoded map[string]fixturelib.DmxMode
}

func (fixtureTypeRow) TableName() string { return "fixture_types" }

type fixtureGroupRow struct {
	ID   uint32 `gorm:"primaryKey"`
	Name string
}

func (fixtureGroupRow) TableName() string { return "fixture_groups" }

type fixtureGroupMemberRow struct {
	GroupID  uint32 `gorm:"primaryKey"`
	Position int    `gorm:"primaryKey"`
	FixtureID uint32
}

func (fixtureGroupMemberRow) TableName() string { return "fixture_group_members" }

type cueRow struct {
	ID   uint32 `gorm:"primaryKey"`
	Name string
}

func (cueRow) TableName() string { return "cues" }

// cueRecipeRow is one recipe clause of a cue, ordered by Position
// (the teacher's ordered-child-table pattern, as in ModeChannel).
type cueRecipeRow struct {
	CueID          uint32 `gorm:"primaryKey"`
	Position       int    `gorm:"primaryKey"`
	FixtureGroupID uint32
	PresetKind     int
	PresetID       uint32
	LevelEffect    *string
}

func (cueRecipeRow) TableName() string { return "cue_recipes" }

type sequenceRow struct {
	ID   uint32 `gorm:"primaryKey"`
	Name string
}

func (sequenceRow) TableName() string { return "sequences" }

type sequenceCueRow struct {
	SequenceID uint32 `gorm:"primaryKey"`
	Position   int    `gorm:"primaryKey"`
	CueID      uint32
}

func (sequenceCueRow) TableName() string { return "sequence_cues" }

type executorRow struct {
	ID         uint32 `gorm:"primaryKey"`
	Name       string
	SequenceID *uint32
	ButtonMode int
	FaderMode  int
	FaderLevel float64
}

func (executorRow) TableName() string { return "executors" }

// presetRow holds a preset of any of the nine feature-group families,
// discriminated by Kind, with its content map serialized to JSON
// (matching the teacher's JSON-blob storage of Scene channel data).
type presetRow struct {
	Kind        int    `gorm:"primaryKey"`
	ID          uint32 `gorm:"primaryKey"`
	Name        string
	ContentKind int
	ContentRaw  []byte
}

func (presetRow) TableName() string { return "presets" }

// settingRow is the teacher's single-row key/value Setting model,
// reused here to persist console-level preferences such as the last
// Art-Net broadcast address.
type settingRow struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (settingRow) TableName() string { return "settings" }

// AllModels lists every model AutoMigrate must know about.
func AllModels() []any {
	return []any{
		&patchFixtureRow{},
		&fixtureTypeRow{},
		&fixtureGroupRow{},
		&fixtureGroupMemberRow{},
		&cueRow{},
		&cueRecipeRow{},
		&sequenceRow{},
		&sequenceCueRow{},
		&executorRow{},
		&presetRow{},
		&settingRow{},
	}
}
