package cfg

import (
	"io"

	"github.com/bookingcom/nanobuckets/pkg/buckets"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// DEBUG makes the decoder reject unknown keys.
var DEBUG bool = false

const (
	OutputText = "text"
	OutputJSON = "json"

	ViewBuckets  = "buckets"
	ViewHardware = "hardware"
)

// Config is the nanobuckets tool config
type Config struct {
	// Exponent of the upper bound of the first bucket, [0, 2^floor).
	Floor uint `yaml:"floor"`
	// Region table. Empty means the reference table.
	Regions []buckets.Region `yaml:"regions"`

	// text or json
	Output string `yaml:"output"`
	// buckets or hardware
	View string `yaml:"view"`
	// Bucket indices to show as selected.
	Toggled []int `yaml:"toggled"`

	Logger zap.Config `yaml:"logger"`
}

// DefaultConfig gives a starter config that reproduces the reference buckets.
func DefaultConfig() Config {
	lc := zap.NewProductionConfig()
	lc.Encoding = "console"
	lc.OutputPaths = []string{"stderr"}

	return Config{
		Floor:   buckets.DefaultFloor,
		Regions: buckets.DefaultRegions(),
		Output:  OutputText,
		View:    ViewBuckets,
		Logger:  lc,
	}
}

// Parse reads the config from a supplied reader on top of the defaults.
func Parse(r io.Reader) (Config, error) {
	d := yaml.NewDecoder(r)
	d.SetStrict(DEBUG)

	c := DefaultConfig()
	c.Regions = nil

	err := d.Decode(&c)
	if err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	if len(c.Regions) == 0 {
		c.Regions = buckets.DefaultRegions()
	}

	return c, c.Validate()
}

// Validate checks the config values that the decoder cannot.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.Errorf("unknown output %q", c.Output)
	}

	switch c.View {
	case ViewBuckets, ViewHardware:
	default:
		return errors.Errorf("unknown view %q", c.View)
	}

	b, err := c.Builder()
	if err != nil {
		return err
	}

	for _, i := range c.Toggled {
		if i < 0 || i >= b.Len() {
			return errors.Errorf("toggled bucket %d is out of range [0, %d)", i, b.Len())
		}
	}

	return nil
}

// Builder returns the bucket builder for the configured region table.
func (c Config) Builder() (*buckets.Builder, error) {
	b, err := buckets.NewBuilder(c.Floor, c.Regions)
	if err != nil {
		return nil, errors.Wrap(err, "bad region table")
	}
	return b, nil
}

// Selection returns the configured toggles.
func (c Config) Selection() buckets.Selection {
	s := make(buckets.Selection, len(c.Toggled))
	for _, i := range c.Toggled {
		s.Set(i, true)
	}
	return s
}
