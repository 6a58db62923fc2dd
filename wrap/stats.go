package wrap

// Stats is a point-in-time snapshot of the table's shape.
type Stats struct {
	Size     uint64 // bucket count, always the current prime
	Unused   uint64 // buckets never occupied since the last rebuild
	Stale    uint64 // emptied buckets keeping their key until the next rebuild
	Records  int    // records in chains, aliases included
	Rebuilds int    // grow/compact cycles since creation
}

// Stats reports the current table shape.
func (om *ObjectMap) Stats() Stats {
	return Stats{
		Size:     om.size,
		Unused:   om.unused,
		Stale:    om.stale,
		Records:  om.records,
		Rebuilds: om.rebuilds,
	}
}
