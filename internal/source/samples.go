package source

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var embeddedSamples []byte

var ErrSampleNotFound = errors.New("sample not found")

type Sample struct {
	Name string `yaml:"name" json:"name"`
	Text string `yaml:"text" json:"text"`
}

// Slug is the URL-friendly form of the sample name.
func (s Sample) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(s.Name)), "-")
}

type sampleFile struct {
	Samples []Sample `yaml:"samples"`
}

type Samples []Sample

// LoadSamples reads the sample articles from path, or the built-in set when
// path is empty. If path cannot be loaded the built-in set is returned along
// with the error, so callers can log it and carry on.
func LoadSamples(path string) (Samples, error) {
	builtin, err := parseSamples(embeddedSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in samples: %w", err)
	}

	if path == "" {
		return builtin, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return builtin, fmt.Errorf("failed to read samples file: %w", err)
	}

	samples, err := parseSamples(data)
	if err != nil {
		return builtin, fmt.Errorf("failed to parse samples file %s: %w", path, err)
	}

	return samples, nil
}

func parseSamples(data []byte) (Samples, error) {
	var file sampleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	samples := make(Samples, 0, len(file.Samples))
	for _, s := range file.Samples {
		s.Name = strings.TrimSpace(s.Name)
		s.Text = strings.TrimSpace(s.Text)
		if s.Name == "" || s.Text == "" {
			continue
		}
		samples = append(samples, s)
	}

	if len(samples) == 0 {
		return nil, errors.New("no samples defined")
	}

	return samples, nil
}

// Find looks a sample up by name or slug, ignoring case.
func (s Samples) Find(name string) (Sample, error) {
	key := strings.TrimSpace(name)
	for _, sample := range s {
		if strings.EqualFold(sample.Name, key) || strings.EqualFold(sample.Slug(), key) {
			return sample, nil
		}
	}
	return Sample{}, fmt.Errorf("%w: %q", ErrSampleNotFound, name)
}

func (s Samples) Names() []string {
	names := make([]string, len(s))
	for i, sample := range s {
		names[i] = sample.Name
	}
	return names
}
