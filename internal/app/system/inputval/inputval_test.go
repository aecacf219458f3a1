package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"runner@example.com",
		"first.last@club.example.org",
		"swim+lane3@example.com",
		"Coach@Example.COM",
		"dev@localhost",
	}
	invalid := []string{
		"",
		" ",
		"runner",
		"runner@",
		"@example.com",
		"two@@example.com",
		".runner@example.com",
		"runner.@example.com",
		"run..ner@example.com",
		"runner@.example.com",
		"runner@example..com",
		"Runner <runner@example.com>",
		"<runner@example.com>",
		"run ner@example.com",
		"runner@exa mple.com",
		"runner@example.com\n",
	}

	for _, s := range valid {
		if !IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = true, want false", s)
		}
	}
}

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"64b7f0c2a1b2c3d4e5f60718", true},
		{"  64b7f0c2a1b2c3d4e5f60718 ", true},
		{"64B7F0C2A1B2C3D4E5F60718", true},
		{"64b7f0c2a1b2c3d4e5f6071", false},
		{"64b7f0c2a1b2c3d4e5f60718aa", false},
		{"zzb7f0c2a1b2c3d4e5f60718", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidObjectID(tt.in); got != tt.want {
			t.Errorf("IsValidObjectID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
