//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/voicelead/cmd"
	"github.com/jsphweid/voicelead/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, handler http.HandlerFunc, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	handler(w, req)
	return w.Result()
}

func TestSolveCToFE2E(t *testing.T) {
	resp := post(t, cmd.HandleSolve, `{"chords": [{"root": "C", "octave": 4}, {"root": "F", "octave": 4}]}`)
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var solveResponse model.SolveResponse
	require.NoError(t, json.Unmarshal(respBody, &solveResponse))

	assert.Len(solveResponse.Settings, 2)
	assert.Len(solveResponse.Notes, 2)
	assert.Less(solveResponse.Movement, 20.0)
	assert.False(solveResponse.Fallback)
	assert.NotEmpty(solveResponse.RequestId)
}

func TestSolveWithAllowedStylesE2E(t *testing.T) {
	body := `{
		"chords": [
			{"root": "D", "modifiers": ["m", "7"]},
			{"root": "G", "modifiers": ["7"]},
			{"root": "C", "modifiers": ["maj7"]}
		],
		"options": {"allowedStyles": ["rootlessA", "rootlessB"], "jazzVoiceLeading": true}
	}`
	resp := post(t, cmd.HandleSolve, body)
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, 200, resp.StatusCode)

	var solveResponse model.SolveResponse
	require.NoError(t, json.Unmarshal(respBody, &solveResponse))
	for _, s := range solveResponse.Settings {
		assert.Contains(t, []model.Style{model.RootlessA, model.RootlessB}, s.Style)
	}
}

func TestSolveRejectsBadBodyE2E(t *testing.T) {
	resp := post(t, cmd.HandleSolve, `{"chords": []}`)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMaterializeE2E(t *testing.T) {
	body := `{"chord": {"root": "C", "modifiers": ["maj7"], "octave": 4}, "settings": {"voicingStyle": "drop2", "octave": 4}}`
	resp := post(t, cmd.HandleMaterialize, body)
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, 200, resp.StatusCode)

	var notes model.Notes
	require.NoError(t, json.Unmarshal(respBody, &notes))
	assert.Equal(t, model.Notes{55, 60, 64, 71}, notes)
}

func TestStyleE2E(t *testing.T) {
	resp := post(t, cmd.HandleStyle, `{"chord": {"root": "C", "modifiers": ["maj7"], "octave": 4}, "style": "shell"}`)
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, 200, resp.StatusCode)

	var styles []model.StyleResponse
	require.NoError(t, json.Unmarshal(respBody, &styles))
	require.Len(t, styles, 1)
	assert.Equal(t, model.Notes{60, 64, 71}, styles[0].Notes)
}

func TestRouterServesStylesE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/styles")
	require.NoError(t, err)
	defer resp.Body.Close()

	var styles []model.Style
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&styles))
	assert.Equal(t, model.AllStyles(), styles)
}
