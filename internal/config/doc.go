// Package config loads, merges, and validates the application configuration.
//
// Values are assembled from multiple sources; later sources override earlier
// non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] builds the server configuration and
// [GetClientConfig] the client-specific view of it.
package config
