package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.Silence()
}

func newTestServer(t *testing.T) *Server {
	st, err := store.Default()
	require.NoError(t, err)
	return New(st)
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *http.Response {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	var v A
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPitchByEachInput(t *testing.T) {
	h := newTestServer(t).Handler()
	for _, target := range []string{"/pitch?name=a&octave=4", "/pitch?mnn=69", "/pitch?freq=440"} {
		resp := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, target)
		got := decode[model.PitchResponse](t, resp)
		assert.Equal(t, 69, got.Pitch.Mnn)
		assert.Equal(t, "A", got.Pitch.Name)
		assert.Equal(t, 440.0, got.Pitch.Frequency)
	}
}

func TestPitchErrors(t *testing.T) {
	h := newTestServer(t).Handler()
	cases := map[string]int{
		"/pitch":                 http.StatusBadRequest,
		"/pitch?name=H":          http.StatusBadRequest,
		"/pitch?mnn=128":         http.StatusBadRequest,
		"/pitch?freq=-1":         http.StatusBadRequest,
		"/pitch?name=C&octave=x": http.StatusBadRequest,
		"/pitch?freq=loud":       http.StatusBadRequest,
	}
	for target, status := range cases {
		resp := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, status, resp.StatusCode, target)
		assert.NotEmpty(t, decode[model.ErrorResponse](t, resp).Error)
	}
}

func TestChordWithInversion(t *testing.T) {
	h := newTestServer(t).Handler()

	resp := do(t, h, http.MethodGet, "/chords/major?root=C&octave=4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.CollectionResponse](t, resp)
	assert.Equal(t, []int{60, 64, 67}, got.Notes)
	assert.Equal(t, 0, got.Inversion)
	assert.Equal(t, "60-64-67", got.Key)
	assert.Len(t, got.Pitches, 3)

	resp = do(t, h, http.MethodGet, "/chords/major?root=C&octave=4&inversion=2", nil)
	got = decode[model.CollectionResponse](t, resp)
	assert.Equal(t, []int{67, 60, 64}, got.Notes)
	assert.Equal(t, 2, got.Inversion)

	resp = do(t, h, http.MethodGet, "/chords/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestScale(t *testing.T) {
	h := newTestServer(t).Handler()
	resp := do(t, h, http.MethodGet, "/scales/major?root=G&octave=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.CollectionResponse](t, resp)
	assert.Equal(t, []int{55, 57, 59, 60, 62, 64, 66, 67}, got.Notes)
	assert.Equal(t, "G", got.Root.Name)
}

func TestNames(t *testing.T) {
	h := newTestServer(t).Handler()
	resp := do(t, h, http.MethodGet, "/tunings", nil)
	got := decode[model.NamesResponse](t, resp)
	assert.Contains(t, got.Names, "standard")
}

func TestInversion(t *testing.T) {
	h := newTestServer(t).Handler()
	body := bytes.NewBufferString(`{"notes": [67, 60, 64], "n": 1}`)
	resp := do(t, h, http.MethodPost, "/inversion", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.InversionResponse](t, resp)
	assert.Equal(t, []int{64, 67, 60}, got.Notes)
	assert.Equal(t, 1, got.Inversion)

	resp = do(t, h, http.MethodPost, "/inversion", strings.NewReader(`{"notes": []}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, h, http.MethodPost, "/inversion", strings.NewReader(`{`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInterval(t *testing.T) {
	h := newTestServer(t).Handler()

	resp := do(t, h, http.MethodGet, "/interval?from=60&to=62", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.IntervalResponse](t, resp)
	assert.Equal(t, model.IntervalDescription{Semitones: 2, Octaves: 0, Name: "Major 2nd"}, got.Interval)

	resp = do(t, h, http.MethodGet, "/interval?from=E4&to=D3", nil)
	got = decode[model.IntervalResponse](t, resp)
	assert.Equal(t, model.IntervalDescription{Semitones: -14, Octaves: -2, Name: "Minor 7th"}, got.Interval)

	resp = do(t, h, http.MethodGet, "/interval?from=C4&to=F%234&style=altered", nil)
	got = decode[model.IntervalResponse](t, resp)
	assert.Equal(t, "Diminished 5th", got.Interval.Name)

	resp = do(t, h, http.MethodGet, "/interval?from=C4&to=X4", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFingering(t *testing.T) {
	h := newTestServer(t).Handler()

	resp := do(t, h, http.MethodGet, "/tunings/standard/fingering?chord=major&root=E&octave=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.FingeringResponse](t, resp)
	require.Len(t, got.Fingering, 6)
	low := got.Fingering[5]
	assert.Len(t, low, 24)
	assert.Equal(t, model.FrettedNote{Mnn: 40, IntervalIndex: 0, String: 6, Fret: 0}, low[0])
	assert.Equal(t, -1, low[1].Mnn)

	resp = do(t, h, http.MethodGet, "/tunings/standard/fingering", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, h, http.MethodGet, "/tunings/banjo/fingering?chord=major", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t).Handler()
	resp := do(t, h, http.MethodGet, "/chords", nil)
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/chords", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Result().Header.Get(RequestIDHeader))
}

func TestWatchSwapsStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"chords": {"power": [0, 7]}}`), 0644))

	st, err := store.Open(path)
	require.NoError(t, err)
	s := New(st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Watch(ctx, path, 10*time.Millisecond, 20*time.Millisecond)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.WriteFile(path, []byte(`{"chords": {"fifth": [0, 7], "octave": [0, 12]}}`), 0644))
	require.NoError(t, os.Chtimes(path, later, later))

	assert.Eventually(t, func() bool {
		return len(s.Store().ChordNames()) == 2
	}, 2*time.Second, 10*time.Millisecond)
}
