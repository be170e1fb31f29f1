package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func newHandler() http.Handler {
	return New("../../pkg/job/testdata/sample", 0, zap.NewNop()).Handler()
}

func TestHealthz(t *testing.T) {
	rec, out := do(t, newHandler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])
}

func TestVoltageDrop(t *testing.T) {
	h := newHandler()

	rec, out := do(t, h, http.MethodPost, "/api/voltage-drop",
		`{"voltage":120,"current":10,"length":100,"gauge":12,"material":"copper"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 3.29, out["percent"], 0.1)
	assert.Equal(t, true, out["exceeds_recommended"])

	rec, out = do(t, h, http.MethodPost, "/api/voltage-drop", `{"voltage":120,"current":10,"length":100,"gauge":13}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "unknown_gauge", out["code"])

	rec, out = do(t, h, http.MethodPost, "/api/voltage-drop", `{"voltage":0,"current":10,"length":100,"gauge":12}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "non_positive_voltage", out["code"])

	rec, _ = do(t, h, http.MethodPost, "/api/voltage-drop", `{"voltage":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConduitFill(t *testing.T) {
	h := newHandler()

	rec, out := do(t, h, http.MethodPost, "/api/conduit-fill",
		`{"conduit_area":0.304,"conductor_area":0.12,"conductors":3,"wire_type":"THHN"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.4, out["max_fill_factor"])
	a := out["assessment"].(map[string]any)
	assert.Equal(t, true, a["within"])

	rec, _ = do(t, h, http.MethodPost, "/api/conduit-fill", `{"conduit_area":0,"conductor_area":0.12,"conductors":3}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestNonFiniteResultsRejected(t *testing.T) {
	h := newHandler()

	for _, tc := range []struct {
		path string
		body string
	}{
		{"/api/conduit-fill", `{"conduit_area":1e-320,"conductor_area":1,"conductors":3}`},
		{"/api/voltage-drop", `{"voltage":1e-320,"current":10,"length":50,"gauge":12}`},
		{"/api/offset", `{"height":1e308,"angle":10}`},
	} {
		rec, out := do(t, h, http.MethodPost, tc.path, tc.body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, tc.path)
		assert.Equal(t, "non_finite_result", out["code"], tc.path)
	}
}

func TestRunNonFiniteConduit(t *testing.T) {
	body := `{"conduit_fill":[{"name":"tiny","conduit_area":1e-320,"conductor_area":1,"conductors":3}]}`
	rec, out := do(t, newHandler(), http.MethodPost, "/api/run", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, out, "body must not be empty")

	report := out["validation"].(map[string]any)
	assert.Equal(t, false, report["valid"])
	assert.Len(t, report["errors"], 1)
}

func TestOffsetWarnsOnUnknownAngle(t *testing.T) {
	rec, out := do(t, newHandler(), http.MethodPost, "/api/offset", `{"height":8,"angle":37}`)
	require.Equal(t, http.StatusOK, rec.Code)

	layout := out["layout"].(map[string]any)
	assert.Equal(t, 2.0, layout["shrink"])
	assert.Equal(t, true, layout["defaulted"])

	report := out["validation"].(map[string]any)
	assert.Len(t, report["warnings"], 1)
	assert.Equal(t, true, report["valid"])
}

func TestThreeWayAndTroubleshoot(t *testing.T) {
	h := newHandler()

	_, out := do(t, h, http.MethodPost, "/api/three-way", `{"door_switch":true,"bed_switch":false}`)
	assert.Equal(t, "LIT", out["state"])
	_, out = do(t, h, http.MethodPost, "/api/three-way", `{"door_switch":true,"bed_switch":true}`)
	assert.Equal(t, "DARK", out["state"])

	_, out = do(t, h, http.MethodPost, "/api/troubleshoot",
		`{"voltage_at_panel":120,"breaker_tripped":false,"continuity_ohms":999999}`)
	assert.Equal(t, "open_circuit", out["code"])
}

func TestReferenceEndpoints(t *testing.T) {
	h := newHandler()

	rec, out := do(t, h, http.MethodGet, "/api/tables", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["gauge_areas"], 9)
	assert.Len(t, out["grounding_conductors"], 5)

	_, out = do(t, h, http.MethodGet, "/api/checklist", "")
	assert.Len(t, out["steps"], 6)

	_, out = do(t, h, http.MethodGet, "/api/loto", "")
	assert.Len(t, out["steps"], 6)
	assert.Contains(t, out["procedure"], "\n")

	rec, out = do(t, h, http.MethodGet, "/api/ground/30", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10.0, out["gauge"])

	rec, _ = do(t, h, http.MethodGet, "/api/ground/500", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/ground/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRun(t *testing.T) {
	h := newHandler()

	rec, out := do(t, h, http.MethodGet, "/api/run", "")
	require.Equal(t, http.StatusOK, rec.Code)
	results := out["results"].(map[string]any)
	assert.Equal(t, "Maple St remodel", results["job"])
	assert.Len(t, results["voltage_drop"], 2)

	rec, out = do(t, h, http.MethodPost, "/api/run",
		`{"voltage_drop":[{"name":"x","voltage":120,"current":1,"length":10,"gauge":99}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	report := out["validation"].(map[string]any)
	assert.Equal(t, false, report["valid"])

	rec, _ = do(t, h, http.MethodPost, "/api/run", "voltage_drop: [")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunWithoutProject(t *testing.T) {
	rec, _ := do(t, New("", 0, nil).Handler(), http.MethodGet, "/api/run", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
