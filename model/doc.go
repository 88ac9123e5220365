// Package model contains the in-memory representation of workload
// definitions consumed by the kernsim runtime.
//
// A workload is typically loaded from a plain text or YAML document into the
// Workload and ProcessSpec structures. Validation lives here so that every
// entry point (loader, registry, facade) enforces the same invariants.
package model
