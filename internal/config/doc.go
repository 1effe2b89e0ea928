// Package config provides configuration loading, merging, and validation
// facilities for the HR portal client and its development API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file (path taken from CONFIG or -c / -config)
//  2. Environment variables
//  3. Command-line flags
//
// The merged [StructuredConfig] is then projected onto a validated view:
// [GetClientConfig] for the CLI client and [GetServerConfig] for the
// development server. Both views fill unset values from the selected
// profile ("development" or "production").
package config
