// Package anonymize drives the end-to-end blanking pipeline: build the
// graph, refine to an initial coloring, check whether any subject is
// already non-compliant, seed the necessary set from saturated classes,
// rank remaining candidates by distance from the subjects, and verify
// each one under the configured mode.
package anonymize
