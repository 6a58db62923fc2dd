package wrap

// hashPrimes lists the bucket counts used as the table grows. The zero
// terminator means the table cannot grow any further; insertions after that
// keep working, only at higher load.
var hashPrimes = []uint64{
	521, 1031, 2053, 4099,
	8209, 16411, 32771, 65537, 131101, 262147,
	524309, 1048583, 2097169, 4194319, 8388617, 16777259,
	33554467, 67108879, 134217757, 268435459, 536870923, 1073741827,
	2147483659, 0,
}

// bucket is a single slot of the open-addressed table.
//
// A zero key marks a bucket that has never been occupied since the last
// rebuild ("unused"). A non-zero key with an empty chain marks a bucket
// whose records have all been removed ("stale"); the key is kept so probe
// sequences passing through the bucket stay repeatable until the next
// rebuild.
type bucket struct {
	key   Addr
	first *record
}

func hash1(key Addr, size uint64) uint64 {
	return uint64(key) % size
}

// hash2 is the probe increment. For prime size it is non-zero and below
// size, so the probe sequence visits every bucket.
func hash2(key Addr, size uint64) uint64 {
	return size - 2 - hash1(key, size)%(size-2)
}

// findBucket returns the bucket that is used, or should be used, for addr.
// The probe stops only at a bucket keyed by addr or an unused bucket; a
// stale bucket with a different key is skipped, never treated as a match or
// as the end of the sequence.
func (om *ObjectMap) findBucket(addr Addr) *bucket {
	h := hash1(addr, om.size)
	inc := hash2(addr, om.size)

	for om.buckets[h].key != 0 && om.buckets[h].key != addr {
		h = (h + inc) % om.size
	}

	return &om.buckets[h]
}

// reorganise rebuilds the table if it is running short of space. It is
// called after every insertion that consumed an unused or stale bucket.
func (om *ObjectMap) reorganise() {
	// Don't bother while more than 12% of the buckets are still unused.
	if om.unused > om.size>>3 {
		return
	}

	// If reclaiming the stale buckets at the current size would not make
	// 25% available, move to a bigger table when one exists.
	if om.unused+om.stale < om.size>>2 && hashPrimes[om.primeIdx+1] != 0 {
		om.primeIdx++
	}

	old := om.buckets

	om.size = hashPrimes[om.primeIdx]
	om.unused = om.size
	om.stale = 0
	om.buckets = make([]bucket, om.size)
	om.rebuilds++

	// Carry the occupied buckets over to the new table. Stale buckets are
	// dropped; their keys have no records left to find.
	for i := range old {
		ob := &old[i]
		if ob.key != 0 && ob.first != nil {
			*om.findBucket(ob.key) = *ob
			om.unused--
		}
	}
}
