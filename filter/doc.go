package filter

/*

# Membership query filter capabilities

This package defines the small contracts shared by every membership query
filter in this module. A filter answers "is this key a member of the set?"
and may return false positives, but never false negatives.

Capabilities are split so that a concrete filter only implements what it can
actually support:

	Queryable[K]   Contains(K) bool
	Insertable[K]  Queryable[K] + Insert(K)
	Removable[K]   Queryable[K] + Remove(K)
	Clearable      Clear()

Host code should accept the narrowest interface it needs. A Bloom filter is
Insertable and Clearable but not Removable; a counting or cuckoo filter would
add Removable without any change to callers written against Insertable.

## Errors

Every fallible filter operation reports a *Error. All of them match
ErrOperationFailed with errors.Is, and carry the more specific cause (if any)
so that package level sentinels remain testable.

*/
