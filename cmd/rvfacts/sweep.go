package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/bits"

	"github.com/schollz/progressbar/v3"
	"github.com/tinyrange/rvfacts/internal/riscv/csr"
	"github.com/tinyrange/rvfacts/internal/riscv/isa"
	"github.com/tinyrange/rvfacts/internal/riscv/trap"
)

// maxReported bounds the violations printed before giving up.
const maxReported = 20

type sweeper struct {
	out        io.Writer
	violations int
}

func (s *sweeper) failf(format string, args ...any) {
	s.violations++
	if s.violations <= maxReported {
		fmt.Fprintf(s.out, "violation: "+format+"\n", args...)
	}
}

// extensionSets covers every combination of the extensions the resolver
// looks at.
var extensionSets = []isa.Extensions{
	isa.ParseExtensions("I"),
	isa.ParseExtensions("IU"),
	isa.ParseExtensions("IS"),
	isa.ParseExtensions("ISU"),
}

const (
	// Twice the widest register, so wrapped cause codes are covered.
	sweepCauses = 128
	pendingBits = 12
)

func runSweep(args []string, out io.Writer) error {
	fs := newFlagSet("sweep", "")
	quiet := fs.Bool("quiet", false, "do not draw a progress bar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	total := int64(csr.NumCSRs) +
		int64(len(extensionSets)*sweepCauses) +
		int64(1<<pendingBits)

	var pb *progressbar.ProgressBar
	if *quiet {
		pb = progressbar.DefaultSilent(total)
	} else {
		pb = progressbar.Default(total, "sweep")
	}
	defer pb.Close()

	s := &sweeper{out: out}
	s.csrs(pb)
	s.delegation(pb)
	s.arbiter(pb)

	slog.Debug("sweep finished", "checks", total, "violations", s.violations)
	if s.violations > 0 {
		return fmt.Errorf("sweep: %d invariant violations", s.violations)
	}
	fmt.Fprintf(out, "sweep: %d inputs checked, no violations\n", total)
	return nil
}

func (s *sweeper) csrs(pb *progressbar.ProgressBar) {
	for a := csr.Address(0); a < csr.NumCSRs; a++ {
		if got, want := csr.RequiredPrivilege(a), isa.PrivilegeMode((a>>8)&3); got != want {
			s.failf("csr 0x%03x: privilege %s, want %s", uint16(a), got, want)
		}
		if got, want := csr.IsReadOnly(a), a>>10 == 3; got != want {
			s.failf("csr 0x%03x: read-only %v, want %v", uint16(a), got, want)
		}
		name := csr.Name(a)
		if name == "" {
			s.failf("csr 0x%03x: empty name", uint16(a))
		}
		if a.Known() {
			if back, ok := csr.Lookup(name); !ok || back != a {
				s.failf("csr %s: lookup gives 0x%03x", name, uint16(back))
			}
		}
		pb.Add(1)
	}

	if csr.Name(csr.Invalid) == "" || csr.Invalid.Valid() {
		s.failf("invalid CSR sentinel is usable")
	}
	if csr.BundleFor(isa.Hypervisor).Valid() {
		s.failf("hypervisor bundle is valid")
	}
}

// delegation checks every cause code against single-bit and saturated
// delegation registers for each extension combination.
func (s *sweeper) delegation(pb *progressbar.ProgressBar) {
	for _, ext := range extensionSets {
		for cause := uint(0); cause < sweepCauses; cause++ {
			bit := uint64(1) << (cause % 64)
			for _, m := range []uint64{0, bit, ^bit, ^uint64(0)} {
				for _, sd := range []uint64{0, bit, ^bit, ^uint64(0)} {
					s.checkDestination(cause, m, sd, ext)
				}
			}
			pb.Add(1)
		}
	}
}

func (s *sweeper) checkDestination(cause uint, m, sd uint64, ext isa.Extensions) {
	got := trap.DestinedPrivilege(cause, m, sd, ext)

	// The test bit wraps at the register width.
	bit := uint64(1) << (cause % 64)
	want := isa.Machine
	switch {
	case !ext.Has(isa.ExtU), m&bit == 0:
	case !ext.Has(isa.ExtS):
		want = isa.User
	case sd&bit == 0:
		want = isa.Supervisor
	default:
		want = isa.User
	}

	if got != want {
		s.failf("cause %d ext %s mdeleg %#x sdeleg %#x: %s, want %s", cause, ext, m, sd, got, want)
	}
	if got == isa.Hypervisor {
		s.failf("cause %d routed to hypervisor", cause)
	}

	// A 32-bit hart sees the low half of each register and wraps at 32.
	m32, sd32 := uint32(m), uint32(sd)
	got32 := trap.DestinedPrivilege(cause, m32, sd32, ext)
	if want32 := trap.DestinedPrivilege(cause%32, uint64(m32), uint64(sd32), ext); got32 != want32 {
		s.failf("cause %d ext %s mdeleg %#x sdeleg %#x: rv32 %s, want %s", cause, ext, m32, sd32, got32, want32)
	}
}

func (s *sweeper) arbiter(pb *progressbar.ProgressBar) {
	rank := make(map[trap.Interrupt]int)
	for i, intr := range trap.PriorityOrder {
		rank[intr] = i
	}

	var standard uint64
	for _, intr := range trap.Interrupts() {
		standard |= intr.Mask()
	}

	for pending := uint64(0); pending < 1<<pendingBits; pending++ {
		i, ok := trap.HighestPriorityInterrupt(pending)
		if ok != (pending&standard != 0) {
			s.failf("pending %#x: found %v", pending, ok)
		}
		if ok {
			if pending&i.Mask() == 0 {
				s.failf("pending %#x: chose %s which is not pending", pending, i.Short())
			}
			for rest := pending & standard &^ i.Mask(); rest != 0; rest &= rest - 1 {
				other := trap.Interrupt(bits.TrailingZeros64(rest))
				if rank[other] < rank[i] {
					s.failf("pending %#x: chose %s over %s", pending, i.Short(), other.Short())
				}
			}
		}
		pb.Add(1)
	}
}
