package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/seqalign/align"
)

// DefaultWidth is the number of alignment columns per block.
const DefaultWidth = 60

// TextOptions tunes Alignment.
type TextOptions struct {
	// Width is the number of columns per block; <= 0 means DefaultWidth.
	Width int
	// Color styles matches, mismatches and gaps.
	Color bool
}

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	gapStyle      = lipgloss.NewStyle().Faint(true)
)

// Alignment writes res as wrapped blocks:
//
//	A  1 G-AT 3
//	     | ||
//	B  1 GCAT 4
//
// followed by a score line. Positions are 1-based indices into the original
// sequences, so local alignments show where the region sits. The middle line
// marks matches with '|', mismatches with '.', gaps with ' '.
func Alignment(w io.Writer, res align.Result, opts TextOptions) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	ra, rb := []rune(res.AlignA), []rune(res.AlignB)
	if len(ra) != len(rb) {
		return fmt.Errorf("%d vs %d columns: %w", len(ra), len(rb), ErrRagged)
	}
	posA, posB := offsets(res, ra, rb)

	var sb strings.Builder
	for start := 0; start < len(ra); start += width {
		end := min(start+width, len(ra))
		blockA, blockB := ra[start:end], rb[start:end]

		nextA, nextB := posA+consumed(blockA), posB+consumed(blockB)
		fmt.Fprintf(&sb, "A %6d %s %d\n", posA+1, paint(blockA, blockB, opts.Color), nextA)
		fmt.Fprintf(&sb, "  %6s %s\n", "", markers(blockA, blockB))
		fmt.Fprintf(&sb, "B %6d %s %d\n\n", posB+1, paint(blockB, blockA, opts.Color), nextB)
		posA, posB = nextA, nextB
	}

	s := res.Stats()
	fmt.Fprintf(&sb, "score=%d length=%d identity=%.1f%% gaps=%d\n",
		res.Score, s.Length, s.Identity*100, s.Gaps)

	_, err := io.WriteString(w, sb.String())

	return err
}

// offsets returns how many symbols of each sequence precede the alignment.
// The end cell Path[0] counts symbols consumed through the last column.
func offsets(res align.Result, ra, rb []rune) (int, int) {
	if len(res.Path) == 0 {
		return 0, 0
	}
	end := res.Path[0]

	return end.Row - consumed(ra), end.Col - consumed(rb)
}

// consumed counts non-gap symbols.
func consumed(s []rune) int {
	n := 0
	for _, r := range s {
		if r != align.GapSymbol {
			n++
		}
	}

	return n
}

func markers(a, b []rune) string {
	out := make([]rune, len(a))
	for k := range a {
		switch {
		case a[k] == align.GapSymbol || b[k] == align.GapSymbol:
			out[k] = ' '
		case a[k] == b[k]:
			out[k] = '|'
		default:
			out[k] = '.'
		}
	}

	return string(out)
}

// paint renders s, styling each symbol against its partner in other.
func paint(s, other []rune, color bool) string {
	if !color {
		return string(s)
	}
	var sb strings.Builder
	for k, r := range s {
		sym := string(r)
		switch {
		case r == align.GapSymbol || other[k] == align.GapSymbol:
			sb.WriteString(gapStyle.Render(sym))
		case r == other[k]:
			sb.WriteString(matchStyle.Render(sym))
		default:
			sb.WriteString(mismatchStyle.Render(sym))
		}
	}

	return sb.String()
}
