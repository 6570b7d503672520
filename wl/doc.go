// Package wl implements Weisfeiler-Lehman color refinement: an initial
// per-node hash of its feature buffer, one refinement step that folds in
// sorted neighbor colors, and iteration to a fixed point detected by
// comparing canonical partitions rather than raw color values.
package wl
