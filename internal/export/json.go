package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/records"
)

type report struct {
	ExportedAt string      `json:"exported_at" yaml:"exported_at"`
	Count      int         `json:"count" yaml:"count"`
	Completed  int         `json:"completed" yaml:"completed"`
	Records    []reportRow `json:"records" yaml:"records"`
}

type reportRow struct {
	Key         string `json:"key" yaml:"key"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Countdown   string `json:"countdown" yaml:"countdown"`
	DurationSec int64  `json:"duration_seconds" yaml:"duration_seconds"`
	Complete    bool   `json:"complete" yaml:"complete"`
}

func buildReport(recs []records.Record) report {
	rep := report{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(recs),
	}
	for _, r := range recs {
		if r.Complete {
			rep.Completed++
		}
		rep.Records = append(rep.Records, reportRow{
			Key:         r.Key,
			Date:        r.Date,
			Time:        r.Time,
			Countdown:   r.Countdown,
			DurationSec: durationSeconds(r),
			Complete:    r.Complete,
		})
	}
	return rep
}

func ToJSON(recs []records.Record, path string) error {
	data, err := json.MarshalIndent(buildReport(recs), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

func durationSeconds(r records.Record) int64 {
	return int64(r.Duration() / time.Second)
}
