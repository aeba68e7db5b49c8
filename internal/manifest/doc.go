// Package manifest parses and validates the YAML manifests sampler reads
// from disk: project manifests, which register a provider without compiling
// it in, and candidate manifests, which list the sample type names to scan.
// Both are validated against an embedded JSON schema.
package manifest
