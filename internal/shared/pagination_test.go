package shared

import (
	"errors"
	"net/url"
	"testing"
)

func TestParsePageQueryDefaults(t *testing.T) {
	page, err := ParsePageQuery(url.Values{})
	if err != nil {
		t.Fatalf("ParsePageQuery returned error: %v", err)
	}
	if page.Offset != 0 || page.Limit != 10 {
		t.Fatalf("defaults = %+v, want offset 0 limit 10", page)
	}
}

func TestParsePageQueryExplicitBounds(t *testing.T) {
	values := url.Values{"offset": {"20"}, "limit": {"5"}}
	page, err := ParsePageQuery(values)
	if err != nil {
		t.Fatalf("ParsePageQuery returned error: %v", err)
	}
	if page.Offset != 20 || page.Limit != 5 {
		t.Fatalf("got %+v, want offset 20 limit 5", page)
	}
}

func TestParsePageQueryRejectsBadBounds(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
		want   error
	}{
		{"negative offset", url.Values{"offset": {"-1"}}, ErrNegativeOffset},
		{"non-numeric offset", url.Values{"offset": {"abc"}}, ErrNegativeOffset},
		{"zero limit", url.Values{"limit": {"0"}}, ErrNonPositiveLimit},
		{"negative limit", url.Values{"limit": {"-5"}}, ErrNonPositiveLimit},
		{"non-numeric limit", url.Values{"limit": {"ten"}}, ErrNonPositiveLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePageQuery(tc.values); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
