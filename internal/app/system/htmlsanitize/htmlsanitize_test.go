package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/octofit/internal/app/system/htmlsanitize"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "Tony Stark completed Running", "Tony Stark completed Running"},
		{"bold", "<b>Leg day</b>", "Leg day"},
		{"script dropped", "Morning run<script>alert('xss')</script>", "Morning run"},
		{"ampersand kept", "Sets & reps", "Sets & reps"},
		{"whitespace trimmed", "  <p>easy pace</p>  ", "easy pace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.StripTags(tt.in)
			if got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripTagsPtr(t *testing.T) {
	if got := htmlsanitize.StripTagsPtr(nil); got != nil {
		t.Errorf("expected nil, got %q", *got)
	}

	in := "<i>Recovery</i>"
	got := htmlsanitize.StripTagsPtr(&in)
	if got == nil || *got != "Recovery" {
		t.Errorf("got %v, want %q", got, "Recovery")
	}
}
