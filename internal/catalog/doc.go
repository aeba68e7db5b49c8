// Package catalog builds the sample catalog. A Builder takes candidate type
// names, resolves and filters them, constructs the eligible ones, and files
// each visible sample under every project whose namespace key occurs in the
// sample's namespace.
package catalog
