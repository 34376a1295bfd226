// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading settings from a
// file.
//
// The `config.Settings` value is the single source of truth for the `app`
// package. Concrete implementations of the Loader, such as for HCL, are
// provided in separate packages.
package config
