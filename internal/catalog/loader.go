package catalog

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Load reads a catalog file (YAML or JSON with a top-level "jobs" list) and
// decodes it into a Catalog. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	items := v.Get("jobs")
	if items == nil {
		return nil, fmt.Errorf("catalog file %q has no jobs list", path)
	}

	var postings []*Posting
	cfg := &mapstructure.DecoderConfig{
		Result:  &postings,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding catalog items: %w", err)
	}

	c := &Catalog{Items: postings}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
