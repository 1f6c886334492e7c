package store

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yml
var seedCatalog []byte

// DefaultSeed returns the embedded job catalog
func DefaultSeed() ([]Job, error) {
	jobs, err := LoadSeed(bytes.NewReader(seedCatalog))
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded seed: %w", err)
	}
	return jobs, nil
}

// LoadSeed parses a YAML list of jobs. Every job must have an id, a title, a type and a provider,
// ids must be unique.
func LoadSeed(r io.Reader) ([]Job, error) {
	jobs := []Job{}
	if err := yaml.NewDecoder(r).Decode(&jobs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't decode seed: %w", err)
	}

	ids := make(map[string]bool, len(jobs))
	for i, job := range jobs {
		switch {
		case job.ID == "":
			return nil, fmt.Errorf("seed job #%d: missing id", i)
		case job.Title == "":
			return nil, fmt.Errorf("seed job %s: missing title", job.ID)
		case job.Type.String() == "":
			return nil, fmt.Errorf("seed job %s: missing type", job.ID)
		case job.ProviderUsername == "":
			return nil, fmt.Errorf("seed job %s: missing provider", job.ID)
		case ids[job.ID]:
			return nil, fmt.Errorf("seed job %s: duplicate id", job.ID)
		}
		ids[job.ID] = true
		if job.Skills == nil {
			jobs[i].Skills = Skills{}
		}
	}
	return jobs, nil
}
