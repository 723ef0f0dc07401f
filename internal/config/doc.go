// Package config provides configuration loading, merging, and validation
// facilities for the client and the webhook receiver.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetSheetHookConfig] for the webhook receiver. Both narrow the merged
// [StructuredConfig] and validate only the groups their binary needs.
package config
