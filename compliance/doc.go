// Package compliance tracks color-class membership and evaluates k-WL
// compliance: every subject's color class must have size at least k. It
// also provides the canonical partition key used to detect a WL fixed
// point independent of concrete color values.
package compliance
