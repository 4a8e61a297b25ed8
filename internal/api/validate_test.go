package api_test

import (
	"errors"
	"testing"

	"devlog/internal/api"
	"devlog/internal/logstore"
)

func TestValidateTailLines(t *testing.T) {
	cases := []struct {
		lines, max int
		ok         bool
	}{
		{1, 1000, true},
		{20, 1000, true},
		{1000, 1000, true},
		{0, 1000, false},
		{-5, 1000, false},
		{1001, 1000, false},
		{501, 500, false},
		{500, 500, true},
		// A bogus max falls back to the hard bound.
		{1000, 0, true},
		{1001, 0, false},
	}
	for _, tc := range cases {
		err := api.ValidateTailLines(tc.lines, tc.max)
		if tc.ok && err != nil {
			t.Fatalf("lines=%d max=%d: unexpected error %v", tc.lines, tc.max, err)
		}
		if !tc.ok {
			if !errors.Is(err, logstore.ErrInvalidInput) {
				t.Fatalf("lines=%d max=%d: expected ErrInvalidInput, got %v", tc.lines, tc.max, err)
			}
		}
	}
}

func TestValidateWriteText(t *testing.T) {
	if err := api.ValidateWriteText("note"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, text := range []string{"", "   ", "\n\t"} {
		if err := api.ValidateWriteText(text); !errors.Is(err, logstore.ErrInvalidInput) {
			t.Fatalf("text %q: expected ErrInvalidInput, got %v", text, err)
		}
	}
}

func TestValidateSearchQuery(t *testing.T) {
	if err := api.ValidateSearchQuery("error"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := api.ValidateSearchQuery(""); !errors.Is(err, logstore.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
