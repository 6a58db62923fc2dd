package wrap

// record is one (address, proxy) pair in a bucket's chain.
//
// A primary record is the proxy's map membership itself. An alias record is
// a secondary registration for a superclass address that differs from the
// primary address; it refers to the primary's proxy and owns nothing. An
// alias is never handed out of the map.
type record struct {
	alias bool
	share bool // share-bucket flag, captured from the proxy at creation
	proxy Proxy
	next  *record
}

func newPrimary(p Proxy) *record {
	return &record{share: p.SharesBucket(), proxy: p}
}

// newAlias builds an alias record for p. The share flag is inherited from
// the primary, so alias insertion follows the same eviction rules.
func newAlias(p Proxy) *record {
	return &record{alias: true, share: p.SharesBucket(), proxy: p}
}
