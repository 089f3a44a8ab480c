package eval

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteScatterPNG renders a predicted-vs-subjective MOS scatter for a report,
// with the identity line for orientation.
func WriteScatterPNG(report *Report, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("WR+%s2MOS: predicted vs subjective (RMSE %.3f)", report.Metric, report.RMSE)
	p.X.Label.Text = "subjective MOS"
	p.Y.Label.Text = "predicted MOS"
	p.X.Min, p.X.Max = 1, 5
	p.Y.Min, p.Y.Max = 1, 5

	identity := plotter.XYs{{X: 1, Y: 1}, {X: 5, Y: 5}}
	line, err := plotter.NewLine(identity)
	if err != nil {
		return fmt.Errorf("identity line: %w", err)
	}
	line.Width = vg.Points(1)
	line.Color = color.Gray{Y: 180}
	p.Add(line)

	pts := make(plotter.XYs, 0, len(report.Results))
	for _, r := range report.Results {
		pts = append(pts, plotter.XY{X: r.Sample.MOS, Y: r.Predicted})
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	scatter.Radius = vg.Points(2)
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
