package bloom

/*

# Bloom filters

This package provides a classic, single bitset Bloom filter over any
comparable key type, together with the sizing functions used to build one.

Sizing is exposed as plain functions so that callers can plan storage
without building a filter. The filter itself does no locking; callers
sharing one across goroutines coordinate writers themselves.

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

Keys are not stored, so they can neither be enumerated nor removed. Clear is
the only way to turn a bit back off.

## Sizing

Given a capacity n and a target false positive rate p:

	m = ceil(-n * ln(p) / ln(2)^2)   OptimalBitCount
	n = round(m * ln(2)^2 / -ln(p))  OptimalCapacity
	k = ceil(m / n * ln(2))          OptimalHashCount

WithSize goes from a byte budget to a capacity first, then sizes exactly as
WithCapacity does. Invalid parameters are rejected at construction with a
*filter.Error wrapping one of this package's sentinels.

## Indexing

Each key is encoded to bytes (see appendKey) and hashed once into a pair
(h1, h2) by a HashSource built from the filter's SeedPair. The k bit
positions are then

	index_i = (h1 + i*h2) mod m,  i in [0, k)

so the cost of a query is two hash evaluations regardless of k. XXHash is
the default source, Murmur3 is available with WithHashing.

## Cardinality

ApproxCardinality inverts the expected fill of the bitset:

	n' = round(-(m/k) * ln(1 - ones/m))

The estimate degrades as the bitset fills, and is SaturatedCardinality once
every bit is set.

*/
