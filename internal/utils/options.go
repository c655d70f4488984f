package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumenkb/lumen-server/internal/catalog"
	"github.com/lumenkb/lumen-server/internal/knowledge"
	"github.com/lumenkb/lumen-server/internal/ragindex"
)

// Options is the deployment options file: the model catalog, the
// knowledge-base choices, and the index-layer configuration. Unlike the
// environment config it holds structured lists, so it lives in YAML.
type Options struct {
	Models    catalog.Options   `yaml:"models"`
	Knowledge knowledge.Options `yaml:"knowledge"`
	RagIndex  ragindex.Options  `yaml:"ragIndex"`
}

func LoadOptions(path string) (*Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file %s: %w", path, err)
	}
	var opts Options
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	if opts.RagIndex.Provider == "" {
		opts.RagIndex.Provider = "noop"
	}
	return &opts, nil
}
