package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/seqalign/align"
	"github.com/olekukonko/tablewriter"
)

// PathMarker is appended to matrix cells visited by the traceback.
const PathMarker = "*"

// Matrix writes sm as a table: the header row is "-" followed by the symbols
// of b, the first column "-" followed by the symbols of a. Cells on res.Path
// carry PathMarker. sm must have been built from a and b.
func Matrix(w io.Writer, sm *align.ScoreMatrix, a, b string, res align.Result) error {
	if sm == nil {
		return align.ErrNilMatrix
	}
	ra, rb := []rune(a), []rune(b)
	if sm.Rows() != len(ra)+1 || sm.Cols() != len(rb)+1 {
		return fmt.Errorf("render matrix: %w", align.ErrDimensionMismatch)
	}

	onPath := make(map[align.Coord]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}

	header := make([]string, 0, len(rb)+2)
	header = append(header, "", "-")
	for _, r := range rb {
		header = append(header, string(r))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i := 0; i < sm.Rows(); i++ {
		row, err := sm.Row(i)
		if err != nil {
			return err
		}
		label := "-"
		if i > 0 {
			label = string(ra[i-1])
		}
		line := make([]string, 0, len(row)+1)
		line = append(line, label)
		for j, v := range row {
			cell := strconv.FormatInt(v, 10)
			if onPath[align.Coord{Row: i, Col: j}] {
				cell += PathMarker
			}
			line = append(line, cell)
		}
		table.Append(line)
	}
	table.Render()

	return nil
}

// Summary writes one table row per report: id, name, score, length,
// identity and error.
func Summary(w io.Writer, reports []Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Score", "Length", "Identity", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	failed := 0
	for _, r := range reports {
		if r.Error != "" {
			failed++
			table.Append([]string{r.ID, r.Name, "", "", "", r.Error})
			continue
		}
		table.Append([]string{
			r.ID,
			r.Name,
			strconv.FormatInt(r.Result.Score, 10),
			strconv.Itoa(r.Stats.Length),
			fmt.Sprintf("%.1f%%", r.Stats.Identity*100),
			"",
		})
	}
	table.SetFooter([]string{fmt.Sprintf("Pairs %d", len(reports)), "", "", "", "", fmt.Sprintf("Failed %d", failed)})
	table.Render()
}
