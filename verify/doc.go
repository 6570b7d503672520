// Package verify decides which blanking-candidate nodes are necessary
// for k-WL compliance: for each candidate, flip its record to type
// "constant", recolor, check compliance, and restore it, in strict
// per-trial isolation. Sequential and parallel dispatch models share the
// same per-candidate trial.
package verify
