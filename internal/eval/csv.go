package eval

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvColumns is the required header of an external dataset file.
var csvColumns = []string{"name", "width", "height", "psnr", "ssim", "mos"}

// LoadCSV reads a dataset from a CSV file with a name,width,height,psnr,
// ssim,mos header.
func LoadCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses dataset rows from r.
func ReadCSV(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	if len(header) != len(csvColumns) {
		return nil, fmt.Errorf("dataset header has %d columns, want %d", len(header), len(csvColumns))
	}
	for i, want := range csvColumns {
		if header[i] != want {
			return nil, fmt.Errorf("dataset column %d is %q, want %q", i, header[i], want)
		}
	}

	var samples []Sample
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset line %d: %w", line, err)
		}

		s := Sample{Name: record[0]}
		if s.Width, err = strconv.Atoi(record[1]); err != nil {
			return nil, fmt.Errorf("dataset line %d: bad width %q", line, record[1])
		}
		if s.Height, err = strconv.Atoi(record[2]); err != nil {
			return nil, fmt.Errorf("dataset line %d: bad height %q", line, record[2])
		}
		if s.PSNR, err = strconv.ParseFloat(record[3], 64); err != nil {
			return nil, fmt.Errorf("dataset line %d: bad psnr %q", line, record[3])
		}
		if s.SSIM, err = strconv.ParseFloat(record[4], 64); err != nil {
			return nil, fmt.Errorf("dataset line %d: bad ssim %q", line, record[4])
		}
		if s.MOS, err = strconv.ParseFloat(record[5], 64); err != nil {
			return nil, fmt.Errorf("dataset line %d: bad mos %q", line, record[5])
		}
		samples = append(samples, s)
	}
	return samples, nil
}
