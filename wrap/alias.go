package wrap

// addAliases walks cur's superclass graph and registers an alias for every
// superclass whose cast address differs from the primary address. base is
// the proxy's own most-derived class and supplies the cast; the recursion
// always descends with the primary address, since the cast is computed
// directly from the most-derived object to each target superclass.
func (om *ObjectMap) addAliases(p Proxy, addr Addr, base, cur Class) {
	supers := cur.Supers()
	if len(supers) == 0 {
		return
	}

	// The first superclass can never need an alias of its own: a first
	// base is laid out at the start of the derived object. Its ancestors
	// still have to be processed.
	om.addAliases(p, addr, base, supers[0])

	for _, sup := range supers[1:] {
		om.addAliases(p, addr, base, sup)

		if supAddr := base.Cast(addr, sup); supAddr != addr {
			om.insert(newAlias(p), supAddr)
		}
	}
}

// removeAliases mirrors addAliases exactly, deleting instead of inserting.
// It keeps going when an alias is missing: during teardown races the table
// may already have lost entries, and the remaining ones still have to come
// out.
func (om *ObjectMap) removeAliases(p Proxy, addr Addr, base, cur Class) {
	supers := cur.Supers()
	if len(supers) == 0 {
		return
	}

	om.removeAliases(p, addr, base, supers[0])

	for _, sup := range supers[1:] {
		om.removeAliases(p, addr, base, sup)

		if supAddr := base.Cast(addr, sup); supAddr != addr {
			om.removeAt(p, supAddr)
		}
	}
}
