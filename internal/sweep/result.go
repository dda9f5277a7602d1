package sweep

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Result is one finished trial: the requested and achieved activity
// level plus the complexity measures of the evolved history.
type Result struct {
	Lambda        float64 `csv:"lambda"`
	ActualLambda  float64 `csv:"actual_lambda"`
	Trial         int     `csv:"trial"`
	Seed          int64   `csv:"seed"`
	K             int     `csv:"k"`
	R             int     `csv:"r"`
	CellEntropy   float64 `csv:"avg_cell_entropy"`
	MutualInfo    float64 `csv:"avg_mutual_information"`
	ElapsedMillis int64   `csv:"elapsed_ms"`
}

// WriteCSV writes the result rows to path.
func WriteCSV(path string, rows []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
