package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed feeds.yaml
var defaultFeedsYAML []byte

// DefaultFeed is a single entry of the built-in feed list.
type DefaultFeed struct {
	URL      string `yaml:"url"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type defaultFeedsFile struct {
	Feeds []DefaultFeed `yaml:"feeds"`
}

// DefaultFeeds returns the built-in feed list embedded at build time.
// These feeds are seeded on first run when no subscriptions exist yet.
func DefaultFeeds() ([]DefaultFeed, error) {
	var file defaultFeedsFile
	if err := yaml.Unmarshal(defaultFeedsYAML, &file); err != nil {
		return nil, fmt.Errorf("DefaultFeeds: parse embedded feed list: %w", err)
	}
	return file.Feeds, nil
}
