package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streaminglabs/pmos"
	"github.com/streaminglabs/pmos/internal/config"
	"github.com/streaminglabs/pmos/internal/eval"
	"github.com/streaminglabs/pmos/internal/store"
)

func newTestServer(t *testing.T, withStore bool) *Server {
	t.Helper()
	var st *store.Store
	if withStore {
		var err error
		st, err = store.Open(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { st.Close() })
	}
	return NewServer(st, &config.ServerConfig{})
}

func postPredict(t *testing.T, srv *Server, metric string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/"+metric, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func validPSNRRequest() map[string]interface{} {
	return map[string]interface{}{
		"value":         41.03835,
		"video_width":   1920,
		"video_height":  1080,
		"player_width":  3840,
		"player_height": 2160,
		"hdr":           0,
		"upsampling":    0,
		"device":        3,
	}
}

func TestPredictEndpoint(t *testing.T) {
	srv := newTestServer(t, false)
	rec := postPredict(t, srv, "psnr", validPSNRRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp predictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "psnr", resp.Metric)
	assert.InDelta(t, 4.438172, resp.MOS, 1e-6)
	assert.InDelta(t, 33.0087, resp.ViewingAngle, 1e-4)
	assert.InDelta(t, 28.2743, resp.AngularResolution, 1e-4)
}

func TestPredictEndpointErrors(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name     string
		metric   string
		mutate   func(map[string]interface{})
		status   int
		errorStr string
	}{
		{
			name: "zero video width", metric: "psnr",
			mutate:   func(m map[string]interface{}) { m["video_width"] = 0 },
			status:   http.StatusBadRequest,
			errorStr: "invalid_resolution",
		},
		{
			name: "bad hdr flag", metric: "psnr",
			mutate:   func(m map[string]interface{}) { m["hdr"] = 2 },
			status:   http.StatusBadRequest,
			errorStr: "invalid_hdr",
		},
		{
			name: "bad upsampling", metric: "psnr",
			mutate:   func(m map[string]interface{}) { m["upsampling"] = 7 },
			status:   http.StatusBadRequest,
			errorStr: "invalid_upsampling",
		},
		{
			name: "custom without profile", metric: "psnr",
			mutate:   func(m map[string]interface{}) { m["device"] = 4 },
			status:   http.StatusBadRequest,
			errorStr: "missing_profile",
		},
		{
			name: "metric out of domain", metric: "ssim",
			mutate:   func(m map[string]interface{}) { m["value"] = 1.5 },
			status:   http.StatusBadRequest,
			errorStr: "invalid_metric_value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validPSNRRequest()
			tt.mutate(body)
			rec := postPredict(t, srv, tt.metric, body)
			require.Equal(t, tt.status, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.errorStr, resp["error"])
		})
	}

	t.Run("unknown metric", func(t *testing.T) {
		rec := postPredict(t, srv, "butteraugli", validPSNRRequest())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/psnr", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVersionEndpoint(t *testing.T) {
	srv := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var v map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "dev", v["version"])
}

func TestGeometryEndpoint(t *testing.T) {
	srv := newTestServer(t, false)
	url := "/api/v1/geometry?video_width=1920&video_height=1080&player_width=3840&player_height=2160&device=3"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var g pmos.ViewingGeometry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.InDelta(t, 33.0087, g.Angle, 1e-4)
	assert.InDelta(t, 28.2743, g.Resolution, 1e-4)
}

func TestDevicesEndpoint(t *testing.T) {
	srv := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var devices []deviceInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &devices))
	require.Len(t, devices, 4)
	assert.Equal(t, "tv", devices[3].Name)
	assert.Equal(t, 3840, devices[3].Profile.DisplayWidth)
}

func TestRunsEndpoints(t *testing.T) {
	srv := newTestServer(t, true)

	report, err := eval.Evaluate(pmos.MetricPSNR, eval.ReferenceDataset(), eval.DefaultConfig())
	require.NoError(t, err)
	run, preds := store.RunFromReport(report, eval.DefaultConfig())
	require.NoError(t, srv.store.InsertRun(run, preds))

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var runs []store.EvalRun
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
		require.Len(t, runs, 1)
		assert.Equal(t, run.RunID, runs[0].RunID)
	})

	t.Run("get", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+run.RunID, nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"predictions"`)
	})

	t.Run("missing run", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/nope", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRunsEndpointsWithoutStore(t *testing.T) {
	srv := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCharts(t *testing.T) {
	srv := newTestServer(t, false)

	paths := []string{"/charts/wr"}
	for _, m := range []string{"psnr", "ssim", "vif", "vmaf"} {
		paths = append(paths, fmt.Sprintf("/charts/fusion/%s", m))
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "echarts")
		})
	}

	t.Run("unknown fusion metric", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/charts/fusion/nope", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
