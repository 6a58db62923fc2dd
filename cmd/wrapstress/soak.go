package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/wrapkit/wrapkit/wrap"
	"github.com/wrapkit/wrapkit/wrap/arena"
	"github.com/wrapkit/wrapkit/wrap/bridge"
	"github.com/wrapkit/wrapkit/wrap/typedesc"
)

var (
	soakOps     int
	soakObjects int
	soakClasses int
	soakSeed    int64
	soakSlotSz  int
)

func init() {
	cmd := newSoakCmd()
	cmd.Flags().IntVar(&soakOps, "ops", 1_000_000, "Number of operations to run")
	cmd.Flags().IntVar(&soakObjects, "objects", 10_000, "Maximum number of live objects")
	cmd.Flags().IntVar(&soakClasses, "classes", 32, "Number of classes in the generated hierarchy")
	cmd.Flags().Int64Var(&soakSeed, "seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&soakSlotSz, "slot-size", 128, "Bytes of native storage per object")
	rootCmd.AddCommand(cmd)
}

func newSoakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "soak",
		Short: "Run a randomized workload against a shadow model",
		Long: `The soak command adopts, wraps, looks up and releases objects at
random, reusing freed native addresses so eviction and stale-bucket paths
get exercised, and cross-checks the identity map against a plain shadow
map after every operation.

Example:
  wrapstress soak
  wrapstress soak --ops 5000000 --objects 50000 --seed 42
  wrapstress soak --classes 64 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSoak()
		},
	}
}

// SoakReport is the machine-readable summary of a soak run.
type SoakReport struct {
	Seed      int64
	Ops       int
	Adopts    int
	Wraps     int
	Lookups   int
	Releases  int
	Evictions int
	Elapsed   time.Duration
	Final     wrap.Stats
}

// slot is one reusable piece of native storage and the shadow model's idea
// of what lives there.
type slot struct {
	addr wrap.Addr
	obj  *bridge.Object
}

func runSoak() error {
	seed := soakSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	printVerbose("seed %d\n", seed)

	classes := buildHierarchy(rng, soakClasses)

	a, err := arena.New(soakObjects * soakSlotSz)
	if err != nil {
		return fmt.Errorf("allocating native storage: %w", err)
	}
	defer a.Close()

	slots := make([]*slot, soakObjects)
	for i := range slots {
		raw, err := a.Alloc(soakSlotSz, 16)
		if err != nil {
			return fmt.Errorf("carving slot %d: %w", i, err)
		}
		slots[i] = &slot{addr: wrap.Addr(raw)}
	}

	br := bridge.New()
	rep := SoakReport{Seed: seed, Ops: soakOps}
	start := time.Now()

	for i := 0; i < soakOps; i++ {
		s := slots[rng.Intn(len(slots))]

		switch op := rng.Intn(10); {
		case op < 3: // adopt, possibly on top of a live occupant
			if s.obj != nil {
				rep.Evictions++
			}
			class := classes[rng.Intn(len(classes))]
			obj := br.Adopt(s.addr, class)
			obj.OnDestroy(func(*bridge.Object) { s.obj = nil })
			s.obj = obj
			rep.Adopts++

		case op < 5: // wrap through a random ancestor's displaced address
			if s.obj == nil {
				continue
			}
			class := s.obj.Class()
			base := randomAncestor(rng, class)
			got := br.Wrap(class.Cast(s.addr, base), base)
			if got != s.obj {
				return fmt.Errorf(
					"op %d: wrap at %#x through %s returned a different object",
					i, s.addr, base.Name())
			}
			br.Release(got)
			rep.Wraps++

		case op < 6: // release
			if s.obj == nil {
				continue
			}
			obj := s.obj
			if br.Release(obj) {
				s.obj = nil
			}
			rep.Releases++

		default: // lookup, checked against the shadow model
			class := classes[rng.Intn(len(classes))]
			got := br.Lookup(s.addr, class)
			want := s.obj
			if want != nil && !want.Class().DerivesFrom(class) {
				want = nil
			}
			if got != want {
				return fmt.Errorf(
					"op %d: lookup at %#x as %s disagrees with the shadow model",
					i, s.addr, class.Name())
			}
			rep.Lookups++
		}
	}

	for _, s := range slots {
		for s.obj != nil {
			obj := s.obj
			if br.Release(obj) {
				s.obj = nil
			}
		}
	}

	rep.Elapsed = time.Since(start)
	rep.Final = br.Stats()

	if err := br.Shutdown(); err != nil {
		return fmt.Errorf("closing bridge: %w", err)
	}

	if jsonOut {
		return printJSON(rep)
	}

	printInfo("soak passed: %d ops in %s (seed %d)\n", rep.Ops, rep.Elapsed.Round(time.Millisecond), rep.Seed)
	printInfo("  adopts=%d wraps=%d lookups=%d releases=%d evictions=%d\n",
		rep.Adopts, rep.Wraps, rep.Lookups, rep.Releases, rep.Evictions)
	printInfo("  table size=%d unused=%d stale=%d rebuilds=%d\n",
		rep.Final.Size, rep.Final.Unused, rep.Final.Stale, rep.Final.Rebuilds)
	return nil
}

// buildHierarchy generates n classes where later classes randomly derive
// from earlier ones, secondary bases sitting at displaced offsets the way
// multiply-inheriting native layouts do.
func buildHierarchy(rng *rand.Rand, n int) []*typedesc.Type {
	classes := make([]*typedesc.Type, 0, n)

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("C%03d", i)

		nbases := 0
		if len(classes) > 0 {
			nbases = rng.Intn(3)
		}
		if nbases > len(classes) {
			nbases = len(classes)
		}

		bases := make([]typedesc.Base, nbases)
		for j := range bases {
			bases[j] = typedesc.Base{Type: classes[rng.Intn(len(classes))]}
			if j > 0 {
				bases[j].Offset = int64(16 * j)
			}
		}

		classes = append(classes, typedesc.New(name, bases...))
	}

	return classes
}

// randomAncestor walks random base edges from t, returning t itself when it
// has no bases.
func randomAncestor(rng *rand.Rand, t *typedesc.Type) *typedesc.Type {
	for {
		supers := t.Supers()
		if len(supers) == 0 || rng.Intn(2) == 0 {
			return t
		}
		t = supers[rng.Intn(len(supers))].(*typedesc.Type)
	}
}
