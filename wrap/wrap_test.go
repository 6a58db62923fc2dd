package wrap

// Test doubles for the map's collaborators. fakeClass models a native class
// hierarchy with per-superclass address deltas; fakeProxy records how the
// map drives the proxy lifecycle.

type fakeClass struct {
	name    string
	supers  []Class
	offsets map[Class]Addr // delta of each aliased ancestor, relative to the primary address
}

func newClass(name string, supers ...*fakeClass) *fakeClass {
	c := &fakeClass{name: name, offsets: make(map[Class]Addr)}
	for _, s := range supers {
		c.supers = append(c.supers, s)
	}
	return c
}

// setOffset declares that casting an instance of c to target displaces the
// address by delta bytes.
func (c *fakeClass) setOffset(target *fakeClass, delta Addr) {
	c.offsets[target] = delta
}

func (c *fakeClass) Name() string { return c.name }

func (c *fakeClass) Supers() []Class { return c.supers }

func (c *fakeClass) Cast(addr Addr, target Class) Addr {
	return addr + c.offsets[target]
}

// derivesFrom reports whether c is target or has target anywhere in its
// superclass graph.
func (c *fakeClass) derivesFrom(target Class) bool {
	if Class(c) == target {
		return true
	}
	for _, s := range c.supers {
		if s.(*fakeClass).derivesFrom(target) {
			return true
		}
	}
	return false
}

type fakeProxy struct {
	addr      Addr
	class     *fakeClass
	live      bool
	share     bool
	inMap     bool
	destroyed int
	onDestroy func(*fakeProxy)
}

func newProxy(addr Addr, class *fakeClass) *fakeProxy {
	return &fakeProxy{addr: addr, class: class, live: true}
}

func (p *fakeProxy) Addr() Addr              { return p.addr }
func (p *fakeProxy) Live() bool              { return p.live }
func (p *fakeProxy) InstanceOf(c Class) bool { return p.class.derivesFrom(c) }
func (p *fakeProxy) SharesBucket() bool      { return p.share }
func (p *fakeProxy) InMap() bool             { return p.inMap }
func (p *fakeProxy) SetInMap(v bool)         { p.inMap = v }

func (p *fakeProxy) NotifyDestroyed() {
	p.destroyed++
	if p.onDestroy != nil {
		p.onDestroy(p)
	}
}
