// Package backend exposes the WL coloring operations behind a single
// Engine interface. An earlier design allowed selecting among multiple
// runtime implementations; this module carries only one, pure-Go
// implementation, so the seam exists for callers that depend on the
// interface without reintroducing a selector with nothing to select.
package backend
