// Package cluster captures the fleet-placement rules a worker node needs to
// know about itself, without implementing the coordinator that would act on
// them.
//
// # Overview
//
// The system partitions four logical tables into P shards by
// ((id-1) mod P)+1, and replicates each partition across a fixed number of
// nodes using a circular placement rule: node N hosts partition N as its
// primary, plus the next replicationFactor-1 partitions going around the
// ring. A worker node treats every locally hosted file identically — the
// primary/replica distinction only matters to an external fleet-level audit
// and to the data generator that lays files out in the first place.
//
// This package exposes exactly those placement computations as pure
// functions. It intentionally does not model node membership, registration,
// health, or request routing — those belong to a coordinator process that
// sits outside this repository. A worker accepts the EXECUTE framing a
// coordinator would send but never itself routes cross-partition work or
// runs distributed transactions.
package cluster
