// Package khash wraps the 64-bit non-cryptographic hash used as the WL
// color function: every coloring step reduces a feature buffer (or a single
// packed word) to a uint64 via xxhash.
package khash
