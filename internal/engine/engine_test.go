package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbernstein/console-core/internal/engine"
	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/internal/pubsub"
	"github.com/bbernstein/console-core/internal/show"
)

const genericDimmerArchive = `{
	"name": "Generic Dimmer",
	"modes": [
		{"name": "Default", "channels": [{"attribute": "Dimmer", "offsets": [1]}]}
	]
}`

func newTestEngine(t *testing.T) (*engine.Engine, func()) {
	t.Helper()
	lib := fixturelib.NewLibrary(nil)
	_, err := lib.InsertFromArchive("Generic@Dimmer@Generic.gdtf", []byte(genericDimmerArchive))
	require.NoError(t, err)
	sh := show.NewShow(lib)

	pub := pubsub.New()
	eng := engine.New(pub, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		eng.Run(ctx, sh, lib)
	}()

	return eng, func() {
		cancel()
		<-done
	}
}

func TestEngineExecuteResolvesFrame(t *testing.T) {
	eng, stop := newTestEngine(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := eng.Execute(ctx, `patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`)
	require.NoError(t, err)

	mv, err := eng.Execute(ctx, `programmer attribute 1 Dimmer 0.5`)
	require.NoError(t, err)
	u, ok := mv.Universe(1)
	require.True(t, ok)
	assert.EqualValues(t, 128, u.GetValue(1))
}

func TestEngineExecuteErrorLeavesShowUntouched(t *testing.T) {
	eng, stop := newTestEngine(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := eng.Execute(ctx, `patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`)
	require.NoError(t, err)

	_, err = eng.Execute(ctx, `patch set mode 1 "Nonexistent"`)
	assert.ErrorIs(t, err, show.ErrDmxModeUnknown)

	sh, err := eng.Snapshot(ctx)
	require.NoError(t, err)
	f, ok := sh.Patch.FixtureByFid(1)
	require.True(t, ok)
	assert.Equal(t, "Default", f.DmxMode)
}

func TestEngineSerializesConcurrentCommands(t *testing.T) {
	eng, stop := newTestEngine(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := eng.Execute(ctx, `create executor 1 "Main"`)
	require.NoError(t, err)

	const n = 20
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := eng.Execute(ctx, `executor 1 fader level 0.5`)
			errCh <- err
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errCh)
	}

	sh, err := eng.Snapshot(ctx)
	require.NoError(t, err)
	e, ok := sh.Executor(1)
	require.True(t, ok)
	assert.Equal(t, 0.5, e.Fader.Level)
}
