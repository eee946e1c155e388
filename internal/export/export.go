// Package export writes simulation results to CSV and JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/san-kum/quantsim/internal/quant"
	"github.com/san-kum/quantsim/internal/stats"
)

// RunData is the JSON export schema for an ensemble run.
type RunData struct {
	Model     string        `json:"model"`
	Scheme    string        `json:"scheme"`
	Dt        float64       `json:"dt"`
	Horizon   float64       `json:"horizon"`
	Paths     int           `json:"paths"`
	Seed      uint64        `json:"seed"`
	Timestamp time.Time     `json:"timestamp"`
	Summary   stats.Summary `json:"summary"`
	Terminals []float64     `json:"terminals,omitempty"`
}

// NewRunData assembles the export schema from an ensemble's results.
func NewRunData(model, scheme string, cfg quant.Config, paths int, results []*quant.Result) RunData {
	terminals := make([]float64, 0, len(results))
	for _, res := range results {
		if res != nil && len(res.Terminal) > 0 {
			terminals = append(terminals, res.Terminal[0])
		}
	}
	return RunData{
		Model:     model,
		Scheme:    scheme,
		Dt:        cfg.Dt,
		Horizon:   cfg.Horizon,
		Paths:     paths,
		Seed:      cfg.Seed,
		Timestamp: time.Now().UTC(),
		Summary:   stats.Summarize(results),
		Terminals: terminals,
	}
}

// WriteJSON writes the run data to path, indented.
func WriteJSON(path string, data RunData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeJSON(file, data)
}

func EncodeJSON(w io.Writer, data RunData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one path as a CSV table, one row per grid point with a
// time column followed by the state components.
func WriteCSV(path string, p *quant.Path) error {
	if p == nil || len(p.States) == 0 {
		return fmt.Errorf("export: no recorded path")
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"time"}
	for i := range p.States[0] {
		header = append(header, "x"+strconv.Itoa(i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for k, x := range p.States {
		row[0] = strconv.FormatFloat(p.Times[k], 'g', -1, 64)
		for i, v := range x {
			row[i+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
