package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/streaminglabs/pmos/internal/eval"
)

// EvalRun is one persisted accuracy evaluation of a fusion model over a
// dataset.
type EvalRun struct {
	RunID        string  `json:"run_id"`
	Metric       string  `json:"metric"`
	Device       string  `json:"device"`
	PlayerWidth  int     `json:"player_width"`
	PlayerHeight int     `json:"player_height"`
	HDR          bool    `json:"hdr"`
	Upsampling   string  `json:"upsampling"`
	SampleCount  int     `json:"sample_count"`
	RMSE         float64 `json:"rmse"`
	MAE          float64 `json:"mae"`
	Pearson      float64 `json:"pearson"`
	CreatedAt    int64   `json:"created_at"` // unix nanos
}

// Prediction is one sample's predicted and subjective MOS within a run.
type Prediction struct {
	RunID      string  `json:"run_id"`
	Name       string  `json:"name"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Value      float64 `json:"value"`
	Predicted  float64 `json:"predicted"`
	Subjective float64 `json:"subjective"`
	Residual   float64 `json:"residual"`
}

// RunFromReport flattens an evaluation report into storable records.
func RunFromReport(report *eval.Report, cfg eval.Config) (*EvalRun, []Prediction) {
	run := &EvalRun{
		Metric:       report.Metric.String(),
		Device:       cfg.Device.String(),
		PlayerWidth:  cfg.PlayerWidth,
		PlayerHeight: cfg.PlayerHeight,
		HDR:          cfg.HDR,
		Upsampling:   cfg.Upsampling.String(),
		SampleCount:  len(report.Results),
		RMSE:         report.RMSE,
		MAE:          report.MAE,
		Pearson:      report.Pearson,
	}
	preds := make([]Prediction, 0, len(report.Results))
	for _, r := range report.Results {
		preds = append(preds, Prediction{
			Name:       r.Sample.Name,
			Width:      r.Sample.Width,
			Height:     r.Sample.Height,
			Value:      r.Value,
			Predicted:  r.Predicted,
			Subjective: r.Sample.MOS,
			Residual:   r.Residual,
		})
	}
	return run, preds
}

// InsertRun persists a run and its predictions in one transaction. An empty
// RunID is filled with a fresh UUID; zero CreatedAt with the current time.
func (s *Store) InsertRun(run *EvalRun, preds []Prediction) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}

	return retryOnBusy(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(`
			INSERT INTO eval_runs (
				run_id, metric, device, player_width, player_height,
				hdr, upsampling, sample_count, rmse, mae, pearson, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.RunID, run.Metric, run.Device, run.PlayerWidth, run.PlayerHeight,
			run.HDR, run.Upsampling, run.SampleCount, run.RMSE, run.MAE, run.Pearson, run.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		for i := range preds {
			preds[i].RunID = run.RunID
			p := &preds[i]
			_, err = tx.Exec(`
				INSERT INTO predictions (
					run_id, name, width, height, value, predicted, subjective, residual
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				p.RunID, p.Name, p.Width, p.Height, p.Value, p.Predicted, p.Subjective, p.Residual,
			)
			if err != nil {
				return fmt.Errorf("insert prediction %s: %w", p.Name, err)
			}
		}
		return tx.Commit()
	})
}

const runColumns = `run_id, metric, device, player_width, player_height,
	hdr, upsampling, sample_count, rmse, mae, pearson, created_at`

func scanRun(row interface{ Scan(...any) error }) (*EvalRun, error) {
	var r EvalRun
	err := row.Scan(
		&r.RunID, &r.Metric, &r.Device, &r.PlayerWidth, &r.PlayerHeight,
		&r.HDR, &r.Upsampling, &r.SampleCount, &r.RMSE, &r.MAE, &r.Pearson, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRun fetches one run by ID. Returns sql.ErrNoRows when absent.
func (s *Store) GetRun(runID string) (*EvalRun, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM eval_runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return r, nil
}

// ListRuns returns up to limit runs, newest first. A non-positive limit
// defaults to 50.
func (s *Store) ListRuns(limit int) ([]*EvalRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM eval_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*EvalRun
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// PredictionsForRun returns a run's per-sample predictions ordered by name.
func (s *Store) PredictionsForRun(runID string) ([]*Prediction, error) {
	rows, err := s.db.Query(`
		SELECT run_id, name, width, height, value, predicted, subjective, residual
		FROM predictions WHERE run_id = ? ORDER BY name`, runID)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var preds []*Prediction
	for rows.Next() {
		var p Prediction
		err := rows.Scan(&p.RunID, &p.Name, &p.Width, &p.Height, &p.Value, &p.Predicted, &p.Subjective, &p.Residual)
		if err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		preds = append(preds, &p)
	}
	return preds, rows.Err()
}
