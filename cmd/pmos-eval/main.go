// pmos-eval runs a parametric MOS model over a dataset of subjective scores
// and reports prediction accuracy. Without -csv it uses the built-in
// reference dataset. Optionally records the run in a sqlite db, writes a
// predicted-vs-subjective scatter PNG, or an interactive HTML chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/streaminglabs/pmos"
	"github.com/streaminglabs/pmos/internal/eval"
	"github.com/streaminglabs/pmos/internal/store"
)

func main() {
	var metricName string
	var csvPath string
	var dbPath string
	var plotPath string
	var htmlPath string
	var device int
	var verbose bool

	flag.StringVar(&metricName, "metric", "psnr", "objective metric to evaluate (psnr or ssim)")
	flag.StringVar(&csvPath, "csv", "", "dataset CSV (default: built-in reference dataset)")
	flag.StringVar(&dbPath, "db", "", "record the run in this sqlite db")
	flag.StringVar(&plotPath, "plot", "", "write a predicted-vs-subjective scatter PNG")
	flag.StringVar(&htmlPath, "html", "", "write an interactive HTML scatter chart")
	flag.IntVar(&device, "device", int(pmos.DeviceTV), "device class (0=mobile 1=tablet 2=desktop 3=tv)")
	flag.BoolVar(&verbose, "v", false, "print per-sample results")
	flag.Parse()

	metric, ok := pmos.ParseMetric(metricName)
	if !ok {
		log.Fatalf("unknown metric %q", metricName)
	}

	samples := eval.ReferenceDataset()
	if csvPath != "" {
		var err error
		samples, err = eval.LoadCSV(csvPath)
		if err != nil {
			log.Fatalf("load dataset: %v", err)
		}
	}

	cfg := eval.DefaultConfig()
	cfg.Device = pmos.DeviceClass(device)

	report, err := eval.Evaluate(metric, samples, cfg)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	if verbose {
		fmt.Printf("%-8s %9s %9s %8s %8s %8s\n", "name", "width", "height", metric, "mos", "pred")
		for _, r := range report.Results {
			fmt.Printf("%-8s %9d %9d %8.3f %8.2f %8.3f\n",
				r.Sample.Name, r.Sample.Width, r.Sample.Height, r.Value, r.Sample.MOS, r.Predicted)
		}
	}
	fmt.Printf("%s over %d samples: RMSE=%.4f MAE=%.4f pearson=%.4f\n",
		metric, len(report.Results), report.RMSE, report.MAE, report.Pearson)

	if dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer st.Close()

		run, preds := store.RunFromReport(report, cfg)
		if err := st.InsertRun(run, preds); err != nil {
			log.Fatalf("record run: %v", err)
		}
		fmt.Printf("recorded run %s in %s\n", run.RunID, dbPath)
	}

	if plotPath != "" {
		if err := eval.WriteScatterPNG(report, plotPath); err != nil {
			log.Fatalf("write plot: %v", err)
		}
		fmt.Printf("wrote %s\n", plotPath)
	}

	if htmlPath != "" {
		if err := writeHTMLScatter(report, htmlPath); err != nil {
			log.Fatalf("write html: %v", err)
		}
		fmt.Printf("wrote %s\n", htmlPath)
	}
}

func writeHTMLScatter(report *eval.Report, path string) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Predicted vs subjective MOS (%s)", report.Metric),
			Subtitle: fmt.Sprintf("RMSE=%.3f pearson=%.3f", report.RMSE, report.Pearson),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "subjective MOS", Min: 1, Max: 5}),
		charts.WithYAxisOpts(opts.YAxis{Name: "predicted MOS", Min: 1, Max: 5}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	points := make([]opts.ScatterData, 0, len(report.Results))
	for _, r := range report.Results {
		points = append(points, opts.ScatterData{
			Name:       r.Sample.Name,
			Value:      []interface{}{r.Sample.MOS, r.Predicted},
			SymbolSize: 8,
		})
	}
	scatter.AddSeries(report.Metric.String(), points)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatter.Render(f)
}
