package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbernstein/console-core/internal/engine"
	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/internal/httpapi"
	"github.com/bbernstein/console-core/internal/pubsub"
	"github.com/bbernstein/console-core/internal/show"
)

const genericDimmerArchive = `{
	"name": "Generic Dimmer",
	"modes": [
		{"name": "Default", "channels": [{"attribute": "Dimmer", "offsets": [1]}]}
	]
}`

func newTestRouter(t *testing.T) (http.Handler, func()) {
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

	router := httpapi.NewRouter(eng, pub, httpapi.Options{
		CORSOrigin:     "http://localhost:3000",
		RequestTimeout: 5 * time.Second,
	})

	return router, func() {
		cancel()
		<-done
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, stop := newTestRouter(t)
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestExecCommandEndpoint(t *testing.T) {
	router, stop := newTestRouter(t)
	defer stop()

	body, _ := json.Marshal(map[string]string{
		"line": `patch add 1 1.1 "Generic@Dimmer@Generic.gdtf" "Default"`,
	})
	req := httptest.NewRequest(http.MethodPost, "/commands", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp["error"])
}

func TestExecCommandEndpointRejectsBadCommand(t *testing.T) {
	router, stop := newTestRouter(t)
	defer stop()

	body, _ := json.Marshal(map[string]string{"line": "not a real command"})
	req := httptest.NewRequest(http.MethodPost, "/commands", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetShowEndpoint(t *testing.T) {
	router, stop := newTestRouter(t)
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body["fixtureCount"])
}

func TestGetUniverseEndpointUnknownUniverse(t *testing.T) {
	router, stop := newTestRouter(t)
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/dmx/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
