// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Legacy environment variables (JWT_SECRET, DB_URI, PORT)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON or YAML config file
//
// The main entry point is [GetStructuredConfig].
package config
