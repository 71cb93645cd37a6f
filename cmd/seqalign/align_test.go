package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestResolveSequences(t *testing.T) {
	fasta := writeFile(t, "a.fa", ">seq1 demo\nGATT\nACA\n")

	tests := []struct {
		name         string
		args         []string
		fileA, fileB string
		upper        bool
		wantA, wantB string
		wantErr      bool
	}{
		{name: "positional", args: []string{"GATTACA", "GCATGCU"}, wantA: "GATTACA", wantB: "GCATGCU"},
		{name: "file A then positional B", args: []string{"GCATGCU"}, fileA: fasta, wantA: "GATTACA", wantB: "GCATGCU"},
		{name: "positional A then file B", args: []string{"CAT"}, fileB: fasta, wantA: "CAT", wantB: "GATTACA"},
		{name: "both files", fileA: fasta, fileB: fasta, wantA: "GATTACA", wantB: "GATTACA"},
		{name: "empty sequences", args: []string{"", ""}, wantA: "", wantB: ""},
		{name: "uppercase", args: []string{"gat", "Cat"}, upper: true, wantA: "GAT", wantB: "CAT"},
		{name: "one missing", args: []string{"GATTACA"}, wantErr: true},
		{name: "none", wantErr: true},
		{name: "too many", args: []string{"A", "B"}, fileA: fasta, wantErr: true},
		{name: "missing file", fileA: filepath.Join(t.TempDir(), "nope.fa"), args: []string{"A"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := resolveSequences(tt.args, tt.fileA, tt.fileB, seqio.ReadOptions{Uppercase: tt.upper})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantB, b)
		})
	}
}

func TestAlignCmd_Text(t *testing.T) {
	out, err := execute(t, "align", "GATTACA", "GCATGCU", "--mode", "sw", "--color=false")
	require.NoError(t, err)

	want := "A      1 G-AT 3\n" +
		"         | ||\n" +
		"B      1 GCAT 4\n" +
		"\n" +
		"score=5 length=4 identity=75.0% gaps=1\n"
	assert.Equal(t, want, out)
}

func TestAlignCmd_TextWithMatrix(t *testing.T) {
	out, err := execute(t, "align", "CAT", "CT", "--match", "1", "--matrix", "--color=false")
	require.NoError(t, err)
	assert.Contains(t, out, "1*", "path cells are marked")
	assert.Contains(t, out, "score=1 length=3")
}

func TestAlignCmd_JSONWithMatrix(t *testing.T) {
	out, err := execute(t, "align", "CAT", "CT", "--match", "1", "--matrix", "--format", "json")
	require.NoError(t, err)

	var got alignOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, align.Config{Match: 1, Mismatch: -1, Gap: -1, Mode: align.Global}, got.Config)
	assert.Equal(t, int64(1), got.Result.Score)
	assert.Equal(t, "CAT", got.Result.AlignA)
	assert.Equal(t, "C-T", got.Result.AlignB)
	assert.Equal(t, [][]int64{{0, -1, -2}, {-1, 1, 0}, {-2, 0, 0}, {-3, -1, 1}}, got.Matrix)
}

func TestAlignCmd_YAML(t *testing.T) {
	out, err := execute(t, "align", "GATTACA", "GATTACA", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "score: 14\n")
	assert.Contains(t, out, "alignA: GATTACA\n")
	assert.NotContains(t, out, "matrix:")
}

func TestAlignCmd_FromFile(t *testing.T) {
	fasta := writeFile(t, "a.fa", ">a\ngattaca\n")

	out, err := execute(t, "align", "--file-a", fasta, "GATTACA", "--uppercase", "--color=false")
	require.NoError(t, err)
	assert.Contains(t, out, "score=14 length=7 identity=100.0% gaps=0")
}

func TestAlignCmd_LocalNoSimilarity(t *testing.T) {
	out, err := execute(t, "align", "AAAA", "TTTT", "--mode", "sw", "--format", "json")
	require.NoError(t, err)

	var got alignOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(0), got.Result.Score)
	assert.Empty(t, got.Result.Path)
	assert.Empty(t, got.Result.AlignA)
}

func TestAlignCmd_Errors(t *testing.T) {
	_, err := execute(t, "align", "GATTACA", "--mode", "sw")
	require.ErrorIs(t, err, errSequenceArgs)

	_, err = execute(t, "align", "A", "A", "--mode", "affine")
	require.ErrorIs(t, err, align.ErrUnknownMode)

	_, err = execute(t, "align", "A", "B", "C")
	require.Error(t, err)
}
