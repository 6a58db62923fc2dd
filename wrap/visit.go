package wrap

// Visit calls fn for the proxy of every primary record in the map. Alias
// records are skipped; an alias must never be exposed as a real object.
//
// Visit is meant for bulk operations such as a shutdown sweep, not for
// lookups. fn must not mutate the map; a sweeping caller should collect the
// proxies first and tear them down afterwards.
func (om *ObjectMap) Visit(fn func(Proxy)) {
	for i := range om.buckets {
		he := &om.buckets[i]
		if he.key == 0 {
			continue
		}

		for sw := he.first; sw != nil; sw = sw.next {
			if !sw.alias {
				fn(sw.proxy)
			}
		}
	}
}
