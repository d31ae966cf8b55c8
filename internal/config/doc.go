// Package config provides configuration loading, merging, and validation
// facilities for the swift-codes server and the swiftctl client.
//
// Configuration is assembled from multiple sources; for every field the
// first source that provides a non-zero value wins:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
