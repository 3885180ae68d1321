package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// WriteCSV writes one row per result: size, container and the average time
// of each phase in milliseconds.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	header := append([]string{"Size", "Type"}, r.Phases...)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, res := range r.Results {
		row := []string{strconv.Itoa(res.Size), res.Container}
		for _, d := range res.Avg {
			row = append(row, strconv.FormatFloat(millis(d), 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing csv row for %s", res.Container)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

// Speedup returns how much faster candidate is than best, in percent of
// best. It is negative when candidate is slower.
func Speedup(best, candidate time.Duration) float64 {
	if best == 0 {
		return 0
	}
	return float64(best-candidate) / float64(best) * 100
}

// bestReference returns the fastest total among the non-gaparray results of
// the given size.
func bestReference(r *Report, size int) (time.Duration, bool) {
	var best time.Duration
	found := false
	for _, res := range r.Results {
		if res.Size != size || res.Container == GapArray {
			continue
		}
		if t := res.Total(); !found || t < best {
			best, found = t, true
		}
	}
	return best, found
}

// RenderTable prints the report as a table. Each gaparray row also says how
// it compares with the fastest reference container of the same size.
func RenderTable(w io.Writer, r *Report) {
	fmt.Fprintf(w, "workload: %s\n", r.Workload)
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	header := []string{"Size", "Container"}
	for _, p := range r.Phases {
		header = append(header, p+" (ms)")
	}
	table.SetHeader(append(header, "vs best reference"))

	for _, res := range r.Results {
		row := []string{humanize.Comma(int64(res.Size)), res.Container}
		for _, d := range res.Avg {
			row = append(row, strconv.FormatFloat(millis(d), 'f', 3, 64))
		}
		var cmp string
		if best, ok := bestReference(r, res.Size); ok && res.Container == GapArray {
			s := Speedup(best, res.Total())
			word := "faster"
			if s < 0 {
				word = "slower"
			}
			cmp = fmt.Sprintf("%.2f%% %s", math.Abs(s), word)
		}
		table.Append(append(row, cmp))
	}
	table.Render()
}
