// Package cli defines the Cobra command tree for the sampler CLI. Each file
// registers one top-level command with the root command. Commands assemble
// the provider index and candidate list, hand them to the catalog builder,
// and only handle flags and output formatting themselves.
package cli
