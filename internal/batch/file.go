// Package batch evaluates many timekit operations from a YAML file
// concurrently, keeping results in input order.
package batch

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
)

// Job is one operation to evaluate.
type Job struct {
	Name string   `yaml:"name" json:"name"`
	Op   string   `yaml:"op"   json:"op"`
	Args []string `yaml:"args" json:"args"`
}

// File is the top-level shape of a batch file:
//
//	jobs:
//	  - name: launch
//	    op: rfc2822
//	    args: ["Tue, 26 Jan 2016 13:48:02 GMT"]
//	  - op: span
//	    args: ["2016-01-26T00:00:00Z", "2016-01-27T02:00:00Z"]
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadFile reads and decodes the batch file at path. A path of "-" reads
// standard input.
func LoadFile(path string) ([]Job, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}

	f, err := os.Open(path) //#nosec G304 -- path is an explicit user argument
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBatchFileInvalid, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads a batch document from r. Unknown keys are rejected so a
// misspelled field does not silently drop arguments. Jobs without a name are
// named "job-N" by position.
func Decode(r io.Reader) ([]Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.ErrBatchEmpty
		}
		return nil, fmt.Errorf("%w: %w", errors.ErrBatchFileInvalid, err)
	}

	if len(file.Jobs) == 0 {
		return nil, errors.ErrBatchEmpty
	}
	if len(file.Jobs) > constants.MaxBatchJobs {
		return nil, errors.Wrapf(errors.ErrBatchTooLarge, "%d jobs, limit %d", len(file.Jobs), constants.MaxBatchJobs)
	}

	for i := range file.Jobs {
		job := &file.Jobs[i]
		job.Op = strings.ToLower(strings.TrimSpace(job.Op))
		if job.Op == "" {
			return nil, errors.Wrapf(errors.ErrBatchFileInvalid, "job %d has no op", i+1)
		}
		if job.Name == "" {
			job.Name = fmt.Sprintf("job-%d", i+1)
		}
	}

	return file.Jobs, nil
}
