package showfile_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/internal/show"
	"github.com/bbernstein/console-core/internal/showfile"
	"github.com/bbernstein/console-core/pkg/attribute"
	"github.com/bbernstein/console-core/pkg/dmx"
)

const genericDimmerArchive = `{
	"name": "Generic Dimmer",
	"modes": [
		{"name": "Default", "channels": [{"attribute": "Dimmer", "offsets": [1]}]}
	]
}`

func newTestStore(t *testing.T) *showfile.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store := showfile.New(db)
	require.NoError(t, store.AutoMigrate())
	return store
}

func TestStoreFixtureTypeRoundTrip(t *testing.T) {
	store := newTestStore(t)
	lib := fixturelib.NewLibrary(store)

	id, err := lib.InsertFromArchive("Generic@Dimmer@Generic.gdtf", []byte(genericDimmerArchive))
	require.NoError(t, err)

	reloaded := fixturelib.NewLibrary(store)
	require.NoError(t, reloaded.Load())

	ft, ok := reloaded.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Generic Dimmer", ft.Name)
	assert.True(t, ft.HasMode("Default"))
}

func TestStoreShowRoundTrip(t *testing.T) {
	store := newTestStore(t)
	lib := fixturelib.NewLibrary(store)
	_, err := lib.InsertFromArchive("Generic@Dimmer@Generic.gdtf", []byte(genericDimmerArchive))
	require.NoError(t, err)

	ctx := context.Background()
	sh, err := store.Load(ctx, lib)
	require.NoError(t, err)

	sh.Patch.StartEdit()
	require.NoError(t, sh.Patch.AddFixture(1, dmx.Address{Universe: 1, Channel: 1}, "Generic@Dimmer@Generic.gdtf", "Default", "Par 1"))
	require.NoError(t, sh.Patch.SaveEdit())

	require.NoError(t, sh.CreateFixtureGroup(1, "All Pars"))
	grp, ok := sh.FixtureGroup(1)
	require.True(t, ok)
	grp.Add(1)

	require.NoError(t, sh.CreatePreset(show.ObjectKindPresetDimmer, 1, "Half"))
	preset, ok := sh.Preset(show.AnyPresetId{Kind: show.ObjectKindPresetDimmer, Value: 1})
	require.True(t, ok)
	preset.SetSelectiveValue(1, attribute.Parse("Dimmer"), attribute.NewValue(0.5))

	require.NoError(t, sh.CreateCue(1, "Cue 1"))
	cue, ok := sh.Cue(1)
	require.True(t, ok)
	cue.Add(show.Recipe{
		FixtureGroup: 1,
		Content:      show.RecipeContent{Preset: show.AnyPresetId{Kind: show.ObjectKindPresetDimmer, Value: 1}},
	})

	require.NoError(t, sh.CreateSequence(1, "Main"))
	seq, ok := sh.Sequence(1)
	require.True(t, ok)
	seq.Add(1)

	require.NoError(t, sh.CreateExecutor(1, "Executor 1"))
	ex, ok := sh.Executor(1)
	require.True(t, ok)
	seqID := show.SequenceId(1)
	ex.SetSequence(&seqID)
	ex.SetLevel(1.0)

	require.NoError(t, store.Save(ctx, sh))

	reloaded, err := store.Load(ctx, lib)
	require.NoError(t, err)

	f, ok := reloaded.Patch.FixtureByFid(1)
	require.True(t, ok)
	assert.Equal(t, "Par 1", f.Name)
	assert.Equal(t, "Default", f.DmxMode)

	rGroup, ok := reloaded.FixtureGroup(1)
	require.True(t, ok)
	assert.Equal(t, []show.FixtureId{1}, rGroup.Fixtures)

	rCue, ok := reloaded.Cue(1)
	require.True(t, ok)
	require.Len(t, rCue.Recipes, 1)
	assert.Equal(t, show.FixtureGroupId(1), rCue.Recipes[0].FixtureGroup)

	rSeq, ok := reloaded.Sequence(1)
	require.True(t, ok)
	assert.Equal(t, []show.CueId{1}, rSeq.Cues)

	rExec, ok := reloaded.Executor(1)
	require.True(t, ok)
	require.NotNil(t, rExec.SequenceID)
	assert.Equal(t, show.SequenceId(1), *rExec.SequenceID)
	assert.Equal(t, 1.0, rExec.Fader.Level)

	rPreset, ok := reloaded.Preset(show.AnyPresetId{Kind: show.ObjectKindPresetDimmer, Value: 1})
	require.True(t, ok)
	v, ok := rPreset.Content.Selective[show.FixtureAttr{Fid: 1, Attr: attribute.Parse("Dimmer")}]
	require.True(t, ok)
	assert.InDelta(t, 0.5, v.Float64(), 0.001)
}

func TestStoreSettingRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok := store.Setting(ctx, "artnet_broadcast_address")
	assert.False(t, ok)

	require.NoError(t, store.SaveSetting(ctx, "artnet_broadcast_address", "192.168.1.255"))
	v, ok := store.Setting(ctx, "artnet_broadcast_address")
	require.True(t, ok)
	assert.Equal(t, "192.168.1.255", v)
}
