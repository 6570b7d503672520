// Package distance computes multi-source shortest-hop distances from the
// subject set over a graph's symmetric adjacency, used to rank blanking
// candidates and to bound incremental WL propagation.
package distance
