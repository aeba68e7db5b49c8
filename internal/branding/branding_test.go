package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "sampler" {
		t.Errorf("CLIName() = %q, want %q", got, "sampler")
	}
	if got := HomeDir(); got != ".sampler" {
		t.Errorf("HomeDir() = %q, want %q", got, ".sampler")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"HOME", "SAMPLER_HOME"},
		{"log_level", "SAMPLER_LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.suffix, func(t *testing.T) {
			if got := EnvVar(tt.suffix); got != tt.want {
				t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
			}
		})
	}
}
