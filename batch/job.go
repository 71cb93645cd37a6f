package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/seqalign/align"
	"gopkg.in/yaml.v3"
)

// LoadJob decodes a YAML job. Unknown keys are rejected, pairs without an
// id get a random UUID, and a scoring block with a bad mode fails here
// rather than at Run time.
//
// Example file:
//
//	scoring:
//	  mode: sw
//	  gap: -2
//	pairs:
//	  - name: fragment
//	    a: GATTACA
//	    b: GCATGCU
func LoadJob(r io.Reader) (Job, error) {
	var job Job
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return Job{}, ErrNoPairs
		}
		return Job{}, fmt.Errorf("batch: decode job: %w", err)
	}
	if len(job.Pairs) == 0 {
		return Job{}, ErrNoPairs
	}
	if job.Scoring != nil && job.Scoring.Mode != nil {
		if _, err := job.Scoring.Apply(align.DefaultConfig()); err != nil {
			return Job{}, err
		}
	}
	for k := range job.Pairs {
		if job.Pairs[k].ID == "" {
			job.Pairs[k].ID = uuid.NewString()
		}
	}

	return job, nil
}

// LoadJobFile is LoadJob over the named file.
func LoadJobFile(path string) (Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return Job{}, err
	}
	defer f.Close()

	job, err := LoadJob(f)
	if err != nil {
		return Job{}, fmt.Errorf("%s: %w", path, err)
	}

	return job, nil
}
