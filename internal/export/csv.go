package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/pomo/internal/records"
)

func ToCSV(recs []records.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Key", "Date", "Time", "Countdown", "Duration (s)", "Status"}); err != nil {
		return err
	}

	for _, r := range recs {
		row := []string{
			r.Key,
			r.Date,
			r.Time,
			r.Countdown,
			fmt.Sprintf("%d", durationSeconds(r)),
			r.Status(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
