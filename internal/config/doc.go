// Package config provides configuration loading, merging, and validation
// facilities for the call recorder service.
//
// Configuration is assembled from multiple sources; the first source that
// sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive the package defaults. The entry
// point is [GetStructuredConfig].
package config
