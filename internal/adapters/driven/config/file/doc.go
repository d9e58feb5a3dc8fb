// Package file provides the TOML file implementation of the config store.
// Configuration lives at ~/.aspect/config.toml and holds defaults the CLI
// would otherwise need on every invocation, such as the catalog path.
package file
