package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbernstein/console-core/internal/command"
	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/internal/show"
	"github.com/bbernstein/console-core/pkg/dmx"
)

const genericDimmerArchive = `{
	"name": "Generic Dimmer",
	"modes": [
		{"name": "Default", "channels": [{"attribute": "Dimmer", "offsets": [1]}]}
	]
}`

func newTestShow(t *testing.T) *show.Show {
	t.Helper()
	lib := fixturelib.NewLibrary(nil)
	_, err := lib.InsertFromArchive("Generic@Dimmer@Generic.gdtf", []byte(genericDimmerArchive))
	require.NoError(t, err)
	return show.NewShow(lib)
}

func runAll(t *testing.T, s *show.Show, lines ...string) {
	t.Helper()
	for _, line := range lines {
		cmd, err := command.Parse(line)
		require.NoError(t, err, "parsing %q", line)
		require.NoError(t, command.Execute(s, cmd), "executing %q", line)
	}
}

// S1 — patch-then-program-then-render (dimmer @ 50%).
func TestScenarioDimmerHalf(t *testing.T) {
	s := newTestShow(t)
	runAll(t, s,
		`patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`,
		`programmer attribute 1 Dimmer 0.5`,
	)
	mv := show.ResolveFrame(s)
	u, ok := mv.Universe(1)
	require.True(t, ok)
	assert.EqualValues(t, 128, u.GetValue(1))
}

// S2 — direct override beats attribute.
func TestScenarioDirectOverrideBeatsAttribute(t *testing.T) {
	s := newTestShow(t)
	runAll(t, s,
		`patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`,
		`programmer attribute 1 Dimmer 0.5`,
		`programmer address 1.1 42`,
	)
	mv := show.ResolveFrame(s)
	u, ok := mv.Universe(1)
	require.True(t, ok)
	assert.EqualValues(t, 42, u.GetValue(1))
}

// S3 — programmer clear zeroes the output.
func TestScenarioProgrammerClear(t *testing.T) {
	s := newTestShow(t)
	runAll(t, s,
		`patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`,
		`programmer address 1.1 42`,
		`programmer address 1.2 69`,
		`programmer clear`,
	)
	mv := show.ResolveFrame(s)
	addr1 := dmx.Address{Universe: 1, Channel: 1}
	addr2 := dmx.Address{Universe: 1, Channel: 2}
	assert.EqualValues(t, 0, mv.Get(addr1))
	assert.EqualValues(t, 0, mv.Get(addr2))
}

// S4 — selective preset store/apply, with a non-matching feature
// group attribute dropped.
func TestScenarioSelectivePresetStore(t *testing.T) {
	s := newTestShow(t)
	runAll(t, s,
		`create preset::dimmer 1 "Half"`,
		`programmer attribute 1 Dimmer 0.25`,
		`programmer attribute 2 Dimmer 0.50`,
		`programmer attribute 3 ColorAdd_R 0.50`,
		`preset::dimmer 1 store selective`,
	)
	p, ok := s.Preset(show.AnyPresetId{Kind: show.ObjectKindPresetDimmer, Value: 1})
	require.True(t, ok)
	assert.Len(t, p.Content.Selective, 2)
}

// S6 — validation failure leaves prior state untouched.
func TestScenarioSetModeValidationFailure(t *testing.T) {
	s := newTestShow(t)
	runAll(t, s, `patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`)
	cmd, err := command.Parse(`patch set mode 1 "Nonexistent"`)
	require.NoError(t, err)
	err = command.Execute(s, cmd)
	assert.ErrorIs(t, err, show.ErrDmxModeUnknown)

	f, ok := s.Patch.FixtureByFid(1)
	require.True(t, ok)
	assert.Equal(t, "Default", f.DmxMode)
}

func TestParsePrintRoundTrip(t *testing.T) {
	lines := []string{
		`patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`,
		`patch set address 1 2.5`,
		`patch set gdtf 1 "Other.gdtf"`,
		`patch set mode 1 "Default"`,
		`patch remove 1`,
		`programmer attribute 1 Dimmer 0.5`,
		`programmer address 1.1 200`,
		`programmer clear`,
		`create executor 1 "Main"`,
		`create executor 1`,
		`remove cue 2`,
		`rename sequence 3 "Opener"`,
		`executor 1 button mode go`,
		`executor 1 button press`,
		`executor 1 button release`,
		`executor 1 fader mode master`,
		`executor 1 fader level 0.75`,
		`executor 1 sequence 2`,
		`executor 1 clear`,
		`sequence 1 add 2`,
		`sequence 1 replace_at 0 3`,
		`sequence 1 remove 2`,
		`sequence 1 remove_at 0`,
		`sequence 1 clear`,
		`cue 1 add 2 preset::dimmer 3`,
		`cue 1 replace_at 0 2 preset::color 4`,
		`cue 1 remove_at 0`,
		`cue 1 clear`,
		`fixture_group 1 add 2`,
		`fixture_group 1 replace_at 0 3`,
		`fixture_group 1 remove 2`,
		`fixture_group 1 remove_at 0`,
		`fixture_group 1 clear`,
		`preset::dimmer 1 store`,
		`preset::dimmer 1 store selective`,
		`preset::video 2 store universal`,
		`preset::beam 1 clear`,
	}
	for _, line := range lines {
		cmd, err := command.Parse(line)
		require.NoError(t, err, "parsing %q", line)
		printed := command.Print(cmd)
		cmd2, err := command.Parse(printed)
		require.NoError(t, err, "reparsing %q", printed)
		assert.Equal(t, cmd, cmd2, "round-trip mismatch for %q -> %q", line, printed)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		`patch add 1 1.1 "Generic@Dimmer@Generic.gdtf"`,       // missing mode
		`patch add abc 1.1 "x" "y"`,                           // non-numeric fid
		`programmer address 1.1 999`,                          // value out of byte range
		`programmer address not-an-address 1`,                 // malformed address
		`frobnicate 1`,                                        // unknown verb
		`patch add 1 1.1 "unterminated`,                       // unterminated string
	}
	for _, line := range cases {
		_, err := command.Parse(line)
		assert.Error(t, err, "expected parse error for %q", line)
	}
}
