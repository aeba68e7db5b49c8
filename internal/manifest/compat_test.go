package manifest

import "testing"

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		want       bool
		wantErr    bool
	}{
		{"empty constraint", "", "1.0.0", true, false},
		{"satisfied", ">= 1.0.0", "1.4.2", true, false},
		{"v prefix", "^1.2", "v1.3.0", true, false},
		{"too old", ">= 2.0.0", "1.9.9", false, false},
		{"dev build", ">= 2.0.0", "dev", true, false},
		{"bad constraint", "not a constraint !!", "1.0.0", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckRequires(tt.constraint, tt.version)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckRequires error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CheckRequires(%q, %q) = %v, want %v", tt.constraint, tt.version, got, tt.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("v1.2.3")
	if err != nil {
		t.Fatalf("ParseVersion: %v", err)
	}
	if v.Major() != 1 || v.Minor() != 2 || v.Patch() != 3 {
		t.Errorf("got %s", v)
	}
	if _, err := ParseVersion("latest"); err == nil {
		t.Error("expected error for non-semver version")
	}
}
