package provider

import "sync"

// Metadata describes one registered project provider.
type Metadata struct {
	Name        string `json:"name"`                   // display name, e.g. "ControlsFX"
	Namespace   string `json:"namespace"`              // namespace key, e.g. "org.controlsfx.samples"
	WelcomePage string `json:"welcome_page,omitempty"` // optional landing sample
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"` // "builtin" or the manifest source name
}

// SourceBuiltin marks providers registered from compiled-in code.
const SourceBuiltin = "builtin"

var (
	mu         sync.Mutex
	registered []Metadata
)

// Register makes a compiled-in provider available. Registration order is
// preserved, so a later registration for the same namespace key wins when
// the index is built.
func Register(m Metadata) {
	if m.Source == "" {
		m.Source = SourceBuiltin
	}
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, m)
}

// Registered returns a copy of all compiled-in registrations in order.
func Registered() []Metadata {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Metadata, len(registered))
	copy(out, registered)
	return out
}

// Reset clears all compiled-in registrations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registered = nil
}
