// Package hcl provides the concrete HCL implementation of the settings
// Loader defined in the `config` package. It is responsible for file
// parsing, building the evaluation context for `${env.NAME}` references,
// and decoding the file into the format-agnostic model.
package hcl
