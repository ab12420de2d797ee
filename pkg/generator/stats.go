package generator

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// Summary holds statistics about a generated sequence
type Summary struct {
	Count    int
	Min      int64
	Max      int64
	Distinct int
	Elapsed  time.Duration
}

// Summarize computes a Summary over values
func Summarize(values []int64, elapsed time.Duration) Summary {
	s := Summary{Count: len(values), Elapsed: elapsed}
	if len(values) == 0 {
		return s
	}

	seen := make(map[int64]struct{}, len(values))
	s.Min, s.Max = values[0], values[0]
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		seen[v] = struct{}{}
	}
	s.Distinct = len(seen)
	return s
}

// Duplicates returns how many values repeat an earlier one
func (s Summary) Duplicates() int {
	return s.Count - s.Distinct
}

// Print displays the summary in a formatted table
func (s Summary) Print() {
	pterm.DefaultSection.Println("Generation Statistics")

	tableData := pterm.TableData{
		{"Metric", "Value"},
		{"Count", fmt.Sprintf("%d", s.Count)},
		{"Observed Min", fmt.Sprintf("%d", s.Min)},
		{"Observed Max", fmt.Sprintf("%d", s.Max)},
		{"Distinct", fmt.Sprintf("%d", s.Distinct)},
		{"Duplicates", fmt.Sprintf("%d", s.Duplicates())},
		{"Elapsed", s.Elapsed.Round(time.Microsecond).String()},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
