package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestFormatMessage(t *testing.T) {
	when := time.Date(2024, 11, 5, 9, 7, 33, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{name: "Slot at end", template: "Fix bug: {date}", expected: "Fix bug: 2024-11-05 09:07"},
		{name: "Slot at start", template: "{date} cleanup", expected: "2024-11-05 09:07 cleanup"},
		{name: "Non-ASCII template", template: "修复bug: {date}", expected: "修复bug: 2024-11-05 09:07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := FormatMessage(tt.template, when)
			second := FormatMessage(tt.template, when)
			if first != tt.expected {
				t.Errorf("FormatMessage(%q) = %q, expected %q", tt.template, first, tt.expected)
			}
			if first != second {
				t.Errorf("FormatMessage is not deterministic: %q vs %q", first, second)
			}
		})
	}
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{name: "Uniform defaults", catalog: DefaultUniformMessages()},
		{name: "Extended defaults", catalog: DefaultExtendedMessages()},
		{name: "Empty", catalog: Catalog{}, wantErr: true},
		{name: "Missing slot", catalog: Catalog{"no date here"}, wantErr: true},
		{name: "Two slots", catalog: Catalog{"{date} and {date}"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCatalog_Sizes(t *testing.T) {
	if n := len(DefaultUniformMessages()); n != 10 {
		t.Errorf("uniform catalog has %d templates, expected 10", n)
	}
	if n := len(DefaultExtendedMessages()); n != 20 {
		t.Errorf("extended catalog has %d templates, expected 20", n)
	}
}

func TestCatalog_DefaultsAreIndependent(t *testing.T) {
	a := DefaultExtendedMessages()
	a[0] = "changed {date}"
	if DefaultExtendedMessages()[0] == "changed {date}" {
		t.Fatal("default catalog shares backing storage between calls")
	}
}

func TestCatalog_Pick(t *testing.T) {
	when := time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)
	catalog := DefaultUniformMessages()
	rng := NewSource(10)

	for range 100 {
		msg := catalog.Pick(rng, when)
		if !strings.HasSuffix(msg, "2025-01-02 03:04") {
			t.Fatalf("message %q does not end with the formatted timestamp", msg)
		}
		if strings.Contains(msg, DateSlot) {
			t.Fatalf("message %q still contains the slot", msg)
		}
	}
}
