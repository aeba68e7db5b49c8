// Package provider collects project providers and indexes them by namespace
// key. Providers come from two places: compiled-in projects that call
// Register from an init function, and project manifests discovered on disk.
// BuildIndex turns the combined list into an immutable Index.
package provider
