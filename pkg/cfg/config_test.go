package cfg

import (
	"strings"
	"testing"

	"github.com/bookingcom/nanobuckets/pkg/buckets"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	DEBUG = true

	var input = `
floor: 4
regions:
    - begin: 4
      end: 6
      count: 4
    - begin: 6
      end: 8
      count: 2
output: "json"
view: "hardware"
toggled: [0, 6]
logger:
    level: "debug"
    encoding: "json"
`

	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	expected := Config{
		Floor: 4,
		Regions: []buckets.Region{
			{Begin: 4, End: 6, Count: 4},
			{Begin: 6, End: 8, Count: 2},
		},
		Output:  OutputJSON,
		View:    ViewHardware,
		Toggled: []int{0, 6},
	}

	if diff := cmp.Diff(expected, got, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	if got.Logger.Level.String() != "debug" || got.Logger.Encoding != "json" {
		t.Errorf("logger config not decoded: level=%s encoding=%s", got.Logger.Level, got.Logger.Encoding)
	}

	if diff := cmp.Diff([]int{0, 6}, got.Selection().Indices()); diff != "" {
		t.Errorf("Selection() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	DEBUG = true

	got, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(DefaultConfig(), got, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	b, err := got.Builder()
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 63 {
		t.Errorf("Expected 63 buckets from defaults, got %d", b.Len())
	}
}

func TestParseErrors(t *testing.T) {
	DEBUG = true

	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"unknown key", "buckets: 10\n", nil},
		{"unknown output", "output: xml\n", nil},
		{"unknown view", "view: chart\n", nil},
		{"toggled out of range", "toggled: [63]\n", nil},
		{"negative toggle", "toggled: [-1]\n", nil},
		{"zero count", "regions:\n    - {begin: 79, end: 88, count: 0}\n", buckets.ErrBadCount},
		{"gap", "regions:\n    - {begin: 79, end: 88, count: 1}\n    - {begin: 90, end: 92, count: 1}\n", buckets.ErrGap},
		{"too many buckets", "floor: 0\nregions:\n    - {begin: 0, end: 64, count: 6148914691236517205}\n", buckets.ErrTooMany},
		{"uneven", "regions:\n    - {begin: 79, end: 88, count: 3}\n", buckets.ErrUneven},
	}

	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if tt.cause != nil && errors.Cause(err) != tt.cause {
			t.Errorf("%s: got %q, want cause %q", tt.name, err, tt.cause)
		}
	}
}
