package probably

/*

# Single hash Bloom filter

This package provides a compact, fixed size, probabilistic set membership
filter.

- If the filter says "definitely not present", the item was never set (or
  the filter was cleared since).
- If the filter says "maybe present", the item may or may not have been set
  (false positives are possible).

## One hash, one bit

Classical Bloom filters derive k bit positions per item. This filter derives
exactly one:

	offset(item) = hash(item) mod capacity

The false positive rate is therefore the fraction of bits set, see
`FalsePositiveRate`. At capacity 1 every item collides once anything is set;
that is correct behaviour, not a bug.

## Hashing

Items are hashed by their content bytes. The default hasher is SipHash-2-4
with fixed keys, so a given item maps to the same offset for the lifetime of
a filter (and across filters built with the same options). `Murmur3Hasher`
is provided as a faster alternative; any deterministic `Hasher` will do.

## Capacity

The capacity is fixed at construction and must be positive. `New` panics on
a zero capacity: there is no valid offset for any item, so this is treated
as a programming error rather than a recoverable one.

## Concurrency

A `Filter` holds no locks. Wrap it with `NewSynchronized` to share it
between goroutines.

*/
