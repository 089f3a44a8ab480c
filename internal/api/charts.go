package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/streaminglabs/pmos"
)

// chartDevices are the built-in classes drawn on every chart.
var chartDevices = []pmos.DeviceClass{
	pmos.DeviceMobile, pmos.DeviceTablet, pmos.DeviceDesktop, pmos.DeviceTV,
}

// fullScreenSetup builds a setup with the player covering the device display.
func fullScreenSetup(class pmos.DeviceClass, videoWidth, videoHeight int) (pmos.Setup, error) {
	p, err := pmos.BuiltinProfile(class)
	if err != nil {
		return pmos.Setup{}, err
	}
	return pmos.Setup{
		VideoWidth:   videoWidth,
		VideoHeight:  videoHeight,
		PlayerWidth:  p.DisplayWidth,
		PlayerHeight: p.DisplayHeight,
		Device:       class,
		Upsampling:   pmos.UpsamplingBicubic,
	}, nil
}

// handleWRChart renders the WR perceptual score against encoded video width
// for each built-in device at full-screen playback. It shows how perceived
// quality saturates with source resolution per screen.
func (s *Server) handleWRChart(w http.ResponseWriter, r *http.Request) {
	const minWidth, maxWidth = 128, 3840
	samples := s.cfg.GetChartSamples()

	xAxis := make([]string, 0, samples)
	widths := make([]int, 0, samples)
	for i := 0; i < samples; i++ {
		width := minWidth + (maxWidth-minWidth)*i/(samples-1)
		widths = append(widths, width)
		xAxis = append(xAxis, fmt.Sprintf("%d", width))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "WR model", Width: "1100px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Westerink-Roufs score vs encoded width",
			Subtitle: "SDR, bicubic upsampling, full-screen player",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "encoded width (px)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "WR score", Min: 1, Max: 5}),
	)
	line.SetXAxis(xAxis)

	for _, class := range chartDevices {
		series := make([]opts.LineData, 0, len(widths))
		for _, width := range widths {
			setup, err := fullScreenSetup(class, width, width*9/16)
			if err != nil {
				s.writeModelError(w, err)
				return
			}
			g, err := setup.Geometry()
			if err != nil {
				s.writeModelError(w, err)
				return
			}
			score, err := pmos.WRScore(g, false, pmos.UpsamplingBicubic)
			if err != nil {
				s.writeModelError(w, err)
				return
			}
			series = append(series, opts.LineData{Value: score})
		}
		line.AddSeries(class.String(), series)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(w); err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render_failed"})
	}
}

// handleFusionChart renders the fused MOS against the objective metric value
// for 1080p content on each built-in device.
func (s *Server) handleFusionChart(w http.ResponseWriter, r *http.Request) {
	metric, ok := pmos.ParseMetric(chi.URLParam(r, "metric"))
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown_metric"})
		return
	}

	lo, hi := metricRange(metric)
	samples := s.cfg.GetChartSamples()

	xAxis := make([]string, 0, samples)
	values := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		v := lo + (hi-lo)*float64(i)/float64(samples-1)
		values = append(values, v)
		xAxis = append(xAxis, fmt.Sprintf("%.3g", v))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "WR+" + metric.String(), Width: "1100px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("WR+%s2MOS for 1080p content", metric),
			Subtitle: "SDR, bicubic upsampling, full-screen player",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: metric.String()}),
		charts.WithYAxisOpts(opts.YAxis{Name: "predicted MOS", Min: 1, Max: 5}),
	)
	line.SetXAxis(xAxis)

	for _, class := range chartDevices {
		setup, err := fullScreenSetup(class, 1920, 1080)
		if err != nil {
			s.writeModelError(w, err)
			return
		}
		series := make([]opts.LineData, 0, len(values))
		for _, v := range values {
			mos, err := pmos.Predict(metric, v, setup)
			if err != nil {
				s.writeModelError(w, err)
				return
			}
			series = append(series, opts.LineData{Value: mos})
		}
		line.AddSeries(class.String(), series)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(w); err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render_failed"})
	}
}

// metricRange gives the plot domain per metric.
func metricRange(m pmos.Metric) (lo, hi float64) {
	switch m {
	case pmos.MetricSSIM, pmos.MetricVIF:
		return 0, 1
	default:
		return 0, 100
	}
}
