package api

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

	"orrerygo/pkg/model"
	"orrerygo/pkg/narrator"
)

type fakeNarrator struct {
	status   narrator.Status
	lastBody string
	lastLoc  string
	actions  []string
	err      error
}

func (f *fakeNarrator) Narrate(bodyID, locale string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastBody = bodyID
	f.lastLoc = locale
	return "req-1", nil
}

func (f *fakeNarrator) Pause()  { f.actions = append(f.actions, "pause") }
func (f *fakeNarrator) Resume() { f.actions = append(f.actions, "resume") }
func (f *fakeNarrator) Stop()   { f.actions = append(f.actions, "stop") }
func (f *fakeNarrator) Toggle() { f.actions = append(f.actions, "toggle") }

func (f *fakeNarrator) Status() narrator.Status { return f.status }

func (f *fakeNarrator) GenerateScript(_ context.Context, bodyID, locale string) (*model.Narrative, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Narrative{
		ID:        "n-1",
		BodyID:    bodyID,
		Locale:    locale,
		Tier:      model.TierLocal,
		Script:    "A script.",
		CreatedAt: time.Now(),
	}, nil
}

func newNarratorMux(h *NarratorHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/narrator/play", h.HandlePlay)
	mux.HandleFunc("POST /api/narrator/control", h.HandleControl)
	mux.HandleFunc("GET /api/narrator/status", h.HandleStatus)
	mux.HandleFunc("POST /api/narration/generate", h.HandleGenerate)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body)))
	return rec
}

func TestHandlePlay(t *testing.T) {
	fake := &fakeNarrator{}
	mux := newNarratorMux(NewNarratorHandler(fake, "en-US"))

	rec := postJSON(t, mux, "/api/narrator/play", PlayRequest{BodyID: "earth", Locale: "de-DE"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "earth", fake.lastBody)
	assert.Equal(t, "de-DE", fake.lastLoc)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp["request_id"])
}

func TestHandlePlayDefaultsLocale(t *testing.T) {
	fake := &fakeNarrator{}
	mux := newNarratorMux(NewNarratorHandler(fake, "en-US"))

	rec := postJSON(t, mux, "/api/narrator/play", PlayRequest{BodyID: "earth"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en-US", fake.lastLoc)
}

func TestHandlePlayErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown body", narrator.ErrUnknownBody, http.StatusNotFound},
		{"unsupported locale", narrator.ErrUnsupportedLocale, http.StatusBadRequest},
		{"other", narrator.ErrUnsupported, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newNarratorMux(NewNarratorHandler(&fakeNarrator{err: tt.err}, "en-US"))
			rec := postJSON(t, mux, "/api/narrator/play", PlayRequest{BodyID: "x"})
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandleControl(t *testing.T) {
	fake := &fakeNarrator{status: narrator.Status{State: narrator.StatePlaying}}
	mux := newNarratorMux(NewNarratorHandler(fake, "en-US"))

	for _, action := range []string{"pause", "resume", "stop", "toggle"} {
		rec := postJSON(t, mux, "/api/narrator/control", ControlRequest{Action: action})
		require.Equal(t, http.StatusOK, rec.Code, "action %q", action)
	}
	assert.Equal(t, []string{"pause", "resume", "stop", "toggle"}, fake.actions)

	rec := postJSON(t, mux, "/api/narrator/control", ControlRequest{Action: "rewind"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStatus(t *testing.T) {
	fake := &fakeNarrator{status: narrator.Status{
		State:  narrator.StatePlaying,
		BodyID: "earth",
		Locale: "en-US",
		Tier:   model.TierRemoteFull,
	}}
	mux := newNarratorMux(NewNarratorHandler(fake, "en-US"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/narrator/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var st narrator.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, narrator.StatePlaying, st.State)
	assert.Equal(t, "earth", st.BodyID)
	assert.Equal(t, model.TierRemoteFull, st.Tier)
}

func TestHandleGenerate(t *testing.T) {
	mux := newNarratorMux(NewNarratorHandler(&fakeNarrator{}, "en-US"))

	rec := postJSON(t, mux, "/api/narration/generate", GenerateRequest{BodyID: "earth"})
	require.Equal(t, http.StatusOK, rec.Code)

	var n model.Narrative
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, "earth", n.BodyID)
	assert.Equal(t, "en-US", n.Locale)
	assert.Equal(t, "A script.", n.Script)
}
