package manifest

// BaseManifest contains fields shared by all manifest types.
type BaseManifest struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ProjectManifest declares a project provider.
type ProjectManifest struct {
	BaseManifest `yaml:",inline"`
	Namespace    string `yaml:"namespace" json:"namespace"`
	WelcomePage  string `yaml:"welcome_page,omitempty" json:"welcome_page,omitempty"`
	// Requires is a semver constraint on the sampler version, e.g. ">= 1.2".
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// CandidatesManifest lists fully-qualified sample type names to scan.
type CandidatesManifest struct {
	BaseManifest `yaml:",inline"`
	Candidates   []string `yaml:"candidates" json:"candidates"`
}

// ManifestType constants for the type discriminator field.
const (
	TypeProject    = "project"
	TypeCandidates = "candidates"
)

// ValidTypes contains all valid manifest type values.
var ValidTypes = []string{
	TypeProject,
	TypeCandidates,
}

// IsProjectFile reports whether a file name is a project manifest.
func IsProjectFile(name string) bool {
	switch name {
	case "project.yaml", "project.yml", "project.json":
		return true
	}
	return false
}
