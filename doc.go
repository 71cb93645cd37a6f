// Package seqalign computes optimal pairwise alignments of two symbol
// sequences and serves them to command-line, batch and HTTP callers.
//
// 🚀 What is seqalign?
//
//	A small alignment toolkit built around one dynamic-programming core:
//		• Global alignment: Needleman-Wunsch ("nw")
//		• Local alignment: Smith-Waterman ("sw")
//		• Linear gap cost, int64 scores, reproducible tie-breaking
//		• Full score matrix exposed for visualization
//
// Packages:
//
//	align/   score matrix builder, traceback engine, scoring types
//	batch/   YAML job files and bounded concurrent alignment of many pairs
//	seqio/   plain-text and FASTA sequence readers
//	render/  text blocks, matrix tables, JSON and YAML reports
//	metrics/ Prometheus collector for alignment counts and latencies
//	server/  HTTP/JSON API over align and batch
//	cmd/seqalign/  the seqalign CLI
//
// Quick example:
//
//	res, _ := align.Align("GATTACA", "GCATGCU", align.Config{
//		Match: 2, Mismatch: -1, Gap: -1, Mode: align.Local,
//	})
//	// res.Score == 5, res.AlignA == "G-AT", res.AlignB == "GCAT"
//
//	go install github.com/katalvlaran/seqalign/cmd/seqalign@latest
package seqalign
