// Package types defines the core types and interfaces used throughout redirmap.
// This includes the Pair type for redirect entries, the FS filesystem
// interface, and the DocumentLocator and URLResolver capabilities that the
// validation and repair paths depend on.
package types
