package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/streaminglabs/pmos"
	"github.com/streaminglabs/pmos/internal/monitoring"
)

// predictRequest is the JSON body of POST /api/v1/predict/{metric}. The HDR
// indicator is an integer here, as in the published C interface; values other
// than 0 and 1 are rejected.
type predictRequest struct {
	Value        float64             `json:"value"`
	VideoWidth   int                 `json:"video_width"`
	VideoHeight  int                 `json:"video_height"`
	PlayerWidth  int                 `json:"player_width"`
	PlayerHeight int                 `json:"player_height"`
	HDR          int                 `json:"hdr"`
	Upsampling   int                 `json:"upsampling"`
	Device       int                 `json:"device"`
	Profile      *pmos.DeviceProfile `json:"profile,omitempty"`
}

func (req *predictRequest) setup() (pmos.Setup, error) {
	if req.HDR != 0 && req.HDR != 1 {
		return pmos.Setup{}, fmt.Errorf("%w: %d", pmos.ErrInvalidHDR, req.HDR)
	}
	return pmos.Setup{
		VideoWidth:   req.VideoWidth,
		VideoHeight:  req.VideoHeight,
		PlayerWidth:  req.PlayerWidth,
		PlayerHeight: req.PlayerHeight,
		HDR:          req.HDR == 1,
		Upsampling:   pmos.Upsampling(req.Upsampling),
		Device:       pmos.DeviceClass(req.Device),
		Profile:      req.Profile,
	}, nil
}

type predictResponse struct {
	Metric            string  `json:"metric"`
	MOS               float64 `json:"mos"`
	ViewingAngle      float64 `json:"viewing_angle"`
	AngularResolution float64 `json:"angular_resolution"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	metric, ok := pmos.ParseMetric(chi.URLParam(r, "metric"))
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown_metric"})
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request", "detail": err.Error()})
		return
	}

	setup, err := req.setup()
	if err != nil {
		s.writeModelError(w, err)
		return
	}
	mos, err := pmos.Predict(metric, req.Value, setup)
	if err != nil {
		s.writeModelError(w, err)
		return
	}
	// Geometry already validated by Predict; recompute for the response.
	g, err := setup.Geometry()
	if err != nil {
		s.writeModelError(w, err)
		return
	}

	monitoring.Logf("predict %s=%g device=%s -> mos=%.4f", metric, req.Value, setup.Device, mos)
	s.writeJSON(w, http.StatusOK, predictResponse{
		Metric:            metric.String(),
		MOS:               mos,
		ViewingAngle:      g.Angle,
		AngularResolution: g.Resolution,
	})
}

// handleGeometry exposes the geometry computation alone. Query params:
// video_width, video_height, player_width, player_height, device, and for
// device=4 the custom profile fields display_width, display_height, ppi_x,
// ppi_y, distance_unit, distance.
func (s *Server) handleGeometry(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	intParam := func(name string) int {
		v, _ := strconv.Atoi(q.Get(name))
		return v
	}
	floatParam := func(name string) float64 {
		v, _ := strconv.ParseFloat(q.Get(name), 64)
		return v
	}

	setup := pmos.Setup{
		VideoWidth:   intParam("video_width"),
		VideoHeight:  intParam("video_height"),
		PlayerWidth:  intParam("player_width"),
		PlayerHeight: intParam("player_height"),
		Device:       pmos.DeviceClass(intParam("device")),
	}
	if setup.Device == pmos.DeviceCustom && q.Has("display_width") {
		setup.Profile = &pmos.DeviceProfile{
			DisplayWidth:  intParam("display_width"),
			DisplayHeight: intParam("display_height"),
			PPIX:          floatParam("ppi_x"),
			PPIY:          floatParam("ppi_y"),
			DistanceUnit:  pmos.DistanceUnit(intParam("distance_unit")),
			Distance:      floatParam("distance"),
		}
	}

	g, err := setup.Geometry()
	if err != nil {
		s.writeModelError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

type deviceInfo struct {
	Class   int                `json:"class"`
	Name    string             `json:"name"`
	Profile pmos.DeviceProfile `json:"profile"`
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	devices := make([]deviceInfo, 0, int(pmos.DeviceCustom))
	for class := pmos.DeviceMobile; class < pmos.DeviceCustom; class++ {
		p, err := pmos.BuiltinProfile(class)
		if err != nil {
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
			return
		}
		devices = append(devices, deviceInfo{Class: int(class), Name: class.String(), Profile: p})
	}
	s.writeJSON(w, http.StatusOK, devices)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no_store"})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.store.ListRuns(limit)
	if err != nil {
		monitoring.Logf("list runs: %v", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
		return
	}
	s.writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no_store"})
		return
	}
	id := chi.URLParam(r, "id")
	run, err := s.store.GetRun(id)
	if errors.Is(err, sql.ErrNoRows) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "run_not_found"})
		return
	}
	if err != nil {
		monitoring.Logf("get run %s: %v", id, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
		return
	}
	preds, err := s.store.PredictionsForRun(id)
	if err != nil {
		monitoring.Logf("predictions for run %s: %v", id, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"run": run, "predictions": preds})
}
