package showfile

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/internal/show"
	"github.com/bbernstein/console-core/pkg/attribute"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Store wraps a *gorm.DB to round-trip a show.Show to and from the
// tables of §3.8, and doubles as the fixturelib.Repository collaborator
// a Library persists newly inserted fixture types through.
type Store struct {
	db *gorm.DB
}

// New wraps an already-connected gorm database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates every table this store owns.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(AllModels()...)
}

// SaveFixtureType implements fixturelib.Repository.
func (s *Store) SaveFixtureType(ft *fixturelib.FixtureType) error {
	raw, err := json.Marshal(ft.Modes)
	if err != nil {
		return fmt.Errorf("encoding fixture type %q modes: %w", ft.ID, err)
	}
	row := fixtureTypeRow{ID: ft.ID, Name: ft.Name, FileName: ft.FileName, ModesRaw: raw}
	return s.db.Save(&row).Error
}

// LoadAllFixtureTypes implements fixturelib.Repository.
func (s *Store) LoadAllFixtureTypes() ([]*fixturelib.FixtureType, error) {
	var rows []fixtureTypeRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*fixturelib.FixtureType, 0, len(rows))
	for _, r := range rows {
		var modes map[string]fixturelib.DmxMode
		if err := json.Unmarshal(r.ModesRaw, &modes); err != nil {
			return nil, fmt.Errorf("decoding fixture type %q modes: %w", r.ID, err)
		}
		out = append(out, &fixturelib.FixtureType{ID: r.ID, Name: r.Name, FileName: r.FileName, Modes: modes})
	}
	return out, nil
}

// Load reconstructs a full Show from the showfile tables in one read
// transaction, against an already-populated fixture type library.
func (s *Store) Load(ctx context.Context, library *fixturelib.Library) (*show.Show, error) {
	sh := show.NewShow(library)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := loadPatch(tx, sh, library); err != nil {
			return err
		}
		if err := loadFixtureGroups(tx, sh); err != nil {
			return err
		}
		if err := loadCues(tx, sh); err != nil {
			return err
		}
		if err := loadSequences(tx, sh); err != nil {
			return err
		}
		if err := loadExecutors(tx, sh); err != nil {
			return err
		}
		return loadPresets(tx, sh)
	})
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func loadPatch(tx *gorm.DB, sh *show.Show, library *fixturelib.Library) error {
	var rows []patchFixtureRow
	if err := tx.Order("uuid").Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	sh.Patch.StartEdit()
	for _, r := range rows {
		ft, ok := library.Get(r.FixtureTypeID)
		if !ok {
			sh.Patch.DiscardEdit()
			return fmt.Errorf("patch fixture %s references unknown fixture type %q", r.UUID, r.FixtureTypeID)
		}
		if r.Fid == nil || r.Universe == nil || r.Channel == nil {
			// Unbound fixtures are legal (§3.4) but have no room in
			// AddFixture's bound-fixture signature; they are skipped
			// from the reconstructed patch rather than guessing an
			// address for them.
			continue
		}
		addr := dmx.Address{Universe: dmx.UniverseId(*r.Universe), Channel: dmx.Channel(*r.Channel)}
		if err := sh.Patch.AddFixture(show.FixtureId(*r.Fid), addr, ft.FileName, r.DmxMode, r.Name); err != nil {
			sh.Patch.DiscardEdit()
			return err
		}
	}
	return sh.Patch.SaveEdit()
}

func loadFixtureGroups(tx *gorm.DB, sh *show.Show) error {
	var groups []fixtureGroupRow
	if err := tx.Find(&groups).Error; err != nil {
		return err
	}
	for _, g := range groups {
		if err := sh.CreateFixtureGroup(show.FixtureGroupId(g.ID), g.Name); err != nil {
			return err
		}
	}
	var members []fixtureGroupMemberRow
	if err := tx.Order("group_id, position").Find(&members).Error; err != nil {
		return err
	}
	for _, m := range members {
		grp, ok := sh.FixtureGroup(show.FixtureGroupId(m.GroupID))
		if !ok {
			continue
		}
		grp.Add(show.FixtureId(m.FixtureID))
	}
	return nil
}

func loadCues(tx *gorm.DB, sh *show.Show) error {
	var cues []cueRow
	if err := tx.Find(&cues).Error; err != nil {
		return err
	}
	for _, c := range cues {
		if err := sh.CreateCue(show.CueId(c.ID), c.Name); err != nil {
			return err
		}
	}
	var recipes []cueRecipeRow
	if err := tx.Order("cue_id, position").Find(&recipes).Error; err != nil {
		return err
	}
	for _, r := range recipes {
		cue, ok := sh.Cue(show.CueId(r.CueID))
		if !ok {
			continue
		}
		cue.Add(show.Recipe{
			FixtureGroup: show.FixtureGroupId(r.FixtureGroupID),
			Content: show.RecipeContent{
				Preset: show.AnyPresetId{Kind: show.ObjectKind(r.PresetKind), Value: r.PresetID},
			},
			LevelEffect: r.LevelEffect,
		})
	}
	return nil
}

func loadSequences(tx *gorm.DB, sh *show.Show) error {
	var seqs []sequenceRow
	if err := tx.Find(&seqs).Error; err != nil {
		return err
	}
	for _, sq := range seqs {
		if err := sh.CreateSequence(show.SequenceId(sq.ID), sq.Name); err != nil {
			return err
		}
	}
	var cues []sequenceCueRow
	if err := tx.Order("sequence_id, position").Find(&cues).Error; err != nil {
		return err
	}
	for _, c := range cues {
		sq, ok := sh.Sequence(show.SequenceId(c.SequenceID))
		if !ok {
			continue
		}
		sq.Add(show.CueId(c.CueID))
	}
	return nil
}

func loadExecutors(tx *gorm.DB, sh *show.Show) error {
	var rows []executorRow
	if err := tx.Find(&rows).Error; err != nil {
		return err
	}
	for _, r := range rows {
		if err := sh.CreateExecutor(show.ExecutorId(r.ID), r.Name); err != nil {
			return err
		}
		e, _ := sh.Executor(show.ExecutorId(r.ID))
		e.Button.Mode = show.ExecutorButtonMode(r.ButtonMode)
		e.Fader.Mode = show.ExecutorFaderMode(r.FaderMode)
		e.SetLevel(r.FaderLevel)
		if r.SequenceID != nil {
			seq := show.SequenceId(*r.SequenceID)
			e.SetSequence(&seq)
		}
	}
	return nil
}

func loadPresets(tx *gorm.DB, sh *show.Show) error {
	var rows []presetRow
	if err := tx.Find(&rows).Error; err != nil {
		return err
	}
	for _, r := range rows {
		kind := show.ObjectKind(r.Kind)
		if err := sh.CreatePreset(kind, r.ID, r.Name); err != nil {
			return err
		}
		p, _ := sh.Preset(show.AnyPresetId{Kind: kind, Value: r.ID})
		if err := decodePresetContent(p, show.PresetContentKind(r.ContentKind), r.ContentRaw); err != nil {
			return err
		}
	}
	return nil
}

func decodePresetContent(p *show.Preset, kind show.PresetContentKind, raw []byte) error {
	p.ConvertTo(kind)
	if len(raw) == 0 {
		return nil
	}
	switch kind {
	case show.PresetContentSelective:
		var entries []struct {
			Fid   uint32  `json:"fid"`
			Attr  string  `json:"attr"`
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return err
		}
		for _, e := range entries {
			p.SetSelectiveValue(show.FixtureId(e.Fid), attribute.Parse(e.Attr), attribute.NewValue(e.Value))
		}
	case show.PresetContentUniversal:
		var entries []struct {
			Attr  string  `json:"attr"`
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return err
		}
		for _, e := range entries {
			p.SetUniversalValue(attribute.Parse(e.Attr), attribute.NewValue(e.Value))
		}
	}
	return nil
}

// Save replaces the content of every show table (patch, groups, cues,
// sequences, executors, presets) in one write transaction
// (delete-then-insert per table); fixture types and settings are not
// touched. This mirrors the teacher's export/import
// services' whole-project round trip.
func (s *Store) Save(ctx context.Context, sh *show.Show) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := savePatch(tx, sh); err != nil {
			return err
		}
		if err := saveFixtureGroups(tx, sh); err != nil {
			return err
		}
		if err := saveCues(tx, sh); err != nil {
			return err
		}
		if err := saveSequences(tx, sh); err != nil {
			return err
		}
		if err := saveExecutors(tx, sh); err != nil {
			return err
		}
		return savePresets(tx, sh)
	})
}

func savePatch(tx *gorm.DB, sh *show.Show) error {
	if err := tx.Where("1 = 1").Delete(&patchFixtureRow{}).Error; err != nil {
		return err
	}
	for _, f := range sh.Patch.Fixtures() {
		row := patchFixtureRow{
			UUID:          f.UUID,
			FixtureTypeID: f.FixtureTypeID,
			DmxMode:       f.DmxMode,
			Name:          f.Name,
		}
		if f.Fid != nil {
			fid := uint32(*f.Fid)
			row.Fid = &fid
		}
		if f.Address != nil {
			u := uint16(f.Address.Universe)
			c := uint16(f.Address.Channel)
			row.Universe = &u
			row.Channel = &c
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func saveFixtureGroups(tx *gorm.DB, sh *show.Show) error {
	if err := tx.Where("1 = 1").Delete(&fixtureGroupRow{}).Error; err != nil {
		return err
	}
	if err := tx.Where("1 = 1").Delete(&fixtureGroupMemberRow{}).Error; err != nil {
		return err
	}
	for id, g := range sh.FixtureGroups() {
		if err := tx.Create(&fixtureGroupRow{ID: uint32(id), Name: g.Name}).Error; err != nil {
			return err
		}
		for i, fid := range g.Fixtures {
			m := fixtureGroupMemberRow{GroupID: uint32(id), Position: i, FixtureID: uint32(fid)}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func saveCues(tx *gorm.DB, sh *show.Show) error {
	if err := tx.Where("1 = 1").Delete(&cueRow{}).Error; err != nil {
		return err
	}
	if err := tx.Where("1 = 1").Delete(&cueRecipeRow{}).Error; err != nil {
		return err
	}
	for id, c := range sh.Cues() {
		if err := tx.Create(&cueRow{ID: uint32(id), Name: c.Name}).Error; err != nil {
			return err
		}
		for i, r := range c.Recipes {
			row := cueRecipeRow{
				CueID:          uint32(id),
				Position:       i,
				FixtureGroupID: uint32(r.FixtureGroup),
				PresetKind:     int(r.Content.Preset.Kind),
				PresetID:       r.Content.Preset.Value,
				LevelEffect:    r.LevelEffect,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func saveSequences(tx *gorm.DB, sh *show.Show) error {
	if err := tx.Where("1 = 1").Delete(&sequenceRow{}).Error; err != nil {
		return err
	}
	if err := tx.Where("1 = 1").Delete(&sequenceCueRow{}).Error; err != nil {
		return err
	}
	for id, sq := range sh.Sequences() {
		if err := tx.Create(&sequenceRow{ID: uint32(id), Name: sq.Name}).Error; err != nil {
			return err
		}
		for i, cueID := range sq.Cues {
			row := sequenceCueRow{SequenceID: uint32(id), Position: i, CueID: uint32(cueID)}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func saveExecutors(tx *gorm.DB, sh *show.Show) error {
	if err := tx.Where("1 = 1").Delete(&executorRow{}).Error; err != nil {
		return err
	}
	for id, e := range sh.Executors() {
		row := executorRow{
			ID:         uint32(id),
			Name:       e.Name,
			ButtonMode: int(e.Button.Mode),
			FaderMode:  int(e.Fader.Mode),
			FaderLevel: e.Fader.Level,
		}
		if e.SequenceID != nil {
			seq := uint32(*e.SequenceID)
			row.SequenceID = &seq
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func savePresets(tx *gorm.DB, sh *show.Show) error {
	if err := tx.Where("1 = 1").Delete(&presetRow{}).Error; err != nil {
		return err
	}
	for _, index := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8} {
		kind, ok := show.ObjectKindForFeatureGroup(index)
		if !ok {
			continue
		}
		for id, p := range sh.PresetsOf(kind) {
			raw, err := encodePresetContent(p)
			if err != nil {
				return err
			}
			row := presetRow{
				Kind:        int(kind),
				ID:          id,
				Name:        p.Name,
				ContentKind: int(p.Content.Kind),
				ContentRaw:  raw,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func encodePresetContent(p *show.Preset) ([]byte, error) {
	switch p.Content.Kind {
	case show.PresetContentSelective:
		type entry struct {
			Fid   uint32  `json:"fid"`
			Attr  string  `json:"attr"`
			Value float64 `json:"value"`
		}
		entries := make([]entry, 0, len(p.Content.Selective))
		for key, v := range p.Content.Selective {
			entries = append(entries, entry{Fid: uint32(key.Fid), Attr: key.Attr.String(), Value: v.Float64()})
		}
		return json.Marshal(entries)
	case show.PresetContentUniversal:
		type entry struct {
			Attr  string  `json:"attr"`
			Value float64 `json:"value"`
		}
		entries := make([]entry, 0, len(p.Content.Universal))
		for attr, v := range p.Content.Universal {
			entries = append(entries, entry{Attr: attr.String(), Value: v.Float64()})
		}
		return json.Marshal(entries)
	default:
		return nil, nil
	}
}

// SaveSetting upserts a single console-level preference, e.g. the last
// Art-Net broadcast address reload.
func (s *Store) SaveSetting(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Save(&settingRow{Key: key, Value: value}).Error
}

// Setting reads back a console-level preference, if present.
func (s *Store) Setting(ctx context.Context, key string) (string, bool) {
	var row settingRow
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		return "", false
	}
	return row.Value, true
}
