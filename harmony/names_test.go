package harmony

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tomato", "#ff6347"},
		{"SteelBlue", "#4682b4"},
		{" white ", "#ffffff"},
		{"#3366CC", "#3366cc"},
		{"abc", "#aabbcc"},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.in)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, in := range []string{"", "notacolor", "bluish", "#12"} {
		if _, err := Resolve(in); !IsInvalidColor(err) {
			t.Errorf("Resolve(%q): expected invalid color error, got %v", in, err)
		}
	}
}
