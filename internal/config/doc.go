// Package config provides configuration loading, merging, and validation
// facilities for the cf-cookie-client tools.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (CFCLIENT_*)
//  2. JSON config file (path taken from CFCLIENT_CONFIG)
//  3. Built-in defaults
//
// The main entry point is [GetConfig]. There are intentionally no
// command-line flags: the tools' CLI surface is interactive prompts only.
package config
