package normalize

import "testing"

func TestTrimmers(t *testing.T) {
	tests := []struct {
		fn   string
		in   string
		want string
	}{
		{"Email", "tony@stark.example", "tony@stark.example"},
		{"Email", "  Tony@Stark.EXAMPLE\t", "tony@stark.example"},
		{"Email", " ", ""},
		{"Name", "  Steve Rogers ", "Steve Rogers"},
		{"Name", "BRUCE BANNER", "BRUCE BANNER"},
		{"Name", "", ""},
		{"QueryParam", " Running ", "Running"},
		{"QueryParam", "running", "running"},
		{"QueryParam", "\n", ""},
	}

	fns := map[string]func(string) string{
		"Email":      Email,
		"Name":       Name,
		"QueryParam": QueryParam,
	}
	for _, tt := range tests {
		if got := fns[tt.fn](tt.in); got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.fn, tt.in, got, tt.want)
		}
	}
}

func TestRef(t *testing.T) {
	str := func(s string) *string { return &s }
	tests := []struct {
		name  string
		input *string
		want  *string
	}{
		{"nil", nil, nil},
		{"empty", str(""), nil},
		{"blank", str("   "), nil},
		{"trimmed", str("  507f1f77bcf86cd799439011  "), str("507f1f77bcf86cd799439011")},
		{"kept", str("team-marvel"), str("team-marvel")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ref(tt.input)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Ref() = %q, want nil", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("Ref() = %v, want %q", got, *tt.want)
			}
		})
	}
}
