package hart

import (
	"fmt"
	"log/slog"

	"github.com/tinyrange/rvfacts/internal/riscv/csr"
	"github.com/tinyrange/rvfacts/internal/riscv/isa"
	"github.com/tinyrange/rvfacts/internal/riscv/trap"
)

// SetPending raises or clears the pending bit of an interrupt source, as a
// timer, software IPI or interrupt controller would.
func (h *Hart[X]) SetPending(i trap.Interrupt, pending bool) {
	mask := X(i.Mask()) & h.interrupts
	if pending {
		h.regs[csr.Mip] |= mask
	} else {
		h.regs[csr.Mip] &^= mask
	}
}

// interruptsEnabled reports whether interrupts destined for level dest may
// be taken at the current privilege. Traps to a more privileged level are
// always enabled, traps to the current level follow its xIE bit, and traps
// to a less privileged level wait until the hart drops to it.
func (h *Hart[X]) interruptsEnabled(dest isa.PrivilegeMode) bool {
	switch {
	case dest > h.priv:
		return true
	case dest < h.priv:
		return false
	default:
		return h.regs[csr.Mstatus]&X(isa.StatusIE(dest)) != 0
	}
}

// PendingInterrupt returns the interrupt that should be taken before the
// next instruction, if any.
func (h *Hart[X]) PendingInterrupt() (trap.Interrupt, bool) {
	pending := h.regs[csr.Mip] & h.regs[csr.Mie]
	if pending == 0 {
		return 0, false
	}

	d := h.Delegation()
	var enabled X
	for _, i := range trap.Interrupts() {
		if h.interruptsEnabled(trap.Route(i, d, h.ext)) {
			enabled |= X(i.Mask())
		}
	}
	return trap.HighestPriorityInterrupt(pending & enabled)
}

// TakeInterrupt takes the pending interrupt, if any, and returns it with the
// privilege level now handling it.
func (h *Hart[X]) TakeInterrupt() (trap.Interrupt, isa.PrivilegeMode, bool) {
	i, ok := h.PendingInterrupt()
	if !ok {
		return 0, h.priv, false
	}
	return i, h.Trap(i, 0), true
}

// Trap enters the handler for cause. The current pc is saved as the
// exception pc, tval is recorded, the destination level's interrupt enable
// is stacked and the pc moves to its trap vector. It returns the level that
// took the trap.
func (h *Hart[X]) Trap(cause trap.Cause, tval X) isa.PrivilegeMode {
	dest := trap.Route(cause, h.Delegation(), h.ext)
	// Traps never move to a less privileged mode.
	if dest < h.priv {
		dest = h.priv
	}
	b := csr.BundleFor(dest)

	h.regs[b.EPC] = h.pc
	h.regs[b.Cause] = trap.EncodeCause[X](cause)
	h.regs[b.TVal] = tval

	s := h.regs[csr.Mstatus]
	ie, pie := X(isa.StatusIE(dest)), X(isa.StatusPIE(dest))
	if s&ie != 0 {
		s |= pie
	} else {
		s &^= pie
	}
	s &^= ie

	switch dest {
	case isa.Machine:
		s = (s &^ X(isa.StatusMPP)) | X(h.priv)<<isa.StatusMPPShift
	case isa.Supervisor:
		if h.priv == isa.Supervisor {
			s |= X(isa.StatusSPP)
		} else {
			s &^= X(isa.StatusSPP)
		}
	}
	h.regs[csr.Mstatus] = s

	from := h.priv
	h.priv = dest

	tvec := h.regs[b.TVec]
	base := tvec &^ X(isa.TvecModeMask)
	if isa.TvecMode(tvec&X(isa.TvecModeMask)) == isa.TvecVectored && cause.IsInterrupt() {
		h.pc = base + 4*X(cause.Code())
	} else {
		h.pc = base
	}

	slog.Debug("hart: trap",
		"cause", cause,
		"from", from,
		"to", dest,
		"epc", uint64(h.regs[b.EPC]),
		"pc", uint64(h.pc),
	)
	return dest
}

// Return performs xRET for privilege level from (MRET, SRET or URET).
func (h *Hart[X]) Return(from isa.PrivilegeMode) error {
	if h.priv < from {
		return fmt.Errorf("%w: %sret in %s mode", ErrPrivilege, from.Letter(), h.priv)
	}
	if !h.supports(from) {
		return fmt.Errorf("%w: %s mode is not implemented", ErrPrivilege, from)
	}
	s := h.regs[csr.Mstatus]
	if from == isa.Supervisor && h.priv == isa.Supervisor && s&X(isa.StatusTSR) != 0 {
		return fmt.Errorf("%w: sret trapped by mstatus.TSR", ErrPrivilege)
	}

	ie, pie := X(isa.StatusIE(from)), X(isa.StatusPIE(from))
	if s&pie != 0 {
		s |= ie
	} else {
		s &^= ie
	}
	s |= pie

	next := isa.User
	switch from {
	case isa.Machine:
		next = isa.PrivilegeMode((uint64(s) & isa.StatusMPP) >> isa.StatusMPPShift)
		s = (s &^ X(isa.StatusMPP)) | X(h.lowestPrivSet)<<isa.StatusMPPShift
		if next != isa.Machine {
			s &^= X(isa.StatusMPRV)
		}
	case isa.Supervisor:
		if s&X(isa.StatusSPP) != 0 {
			next = isa.Supervisor
		}
		s &^= X(isa.StatusSPP)
	}
	h.regs[csr.Mstatus] = s

	b := csr.BundleFor(from)
	prev := h.priv
	h.priv = next
	h.pc = h.regs[b.EPC]

	slog.Debug("hart: return", "ret", from.Letter()+"ret", "from", prev, "to", next, "pc", uint64(h.pc))
	return nil
}
