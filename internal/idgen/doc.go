// Package idgen wraps the UUID generator used for run identifiers so that it
// can be stubbed in tests. It lives under `internal` because callers should
// not rely on its exact behaviour or API - run identifiers are opaque strings.
package idgen
