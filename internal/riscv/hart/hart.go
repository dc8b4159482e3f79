// Package hart models the trap machinery of a single RISC-V hart: the trap
// CSRs of every implemented privilege level, CSR access control, interrupt
// polling, trap entry and xRET. It does not decode or execute instructions;
// an execution core drives it.
//
// A Hart is not safe for concurrent use. Each emulated hart is expected to be
// owned by one goroutine.
package hart

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tinyrange/rvfacts/internal/config"
	"github.com/tinyrange/rvfacts/internal/riscv/csr"
	"github.com/tinyrange/rvfacts/internal/riscv/isa"
	"github.com/tinyrange/rvfacts/internal/riscv/trap"
)

var (
	ErrPrivilege     = errors.New("privileged instruction not permitted")
	ErrWidthMismatch = errors.New("config xlen does not match register width")
)

// Writable mstatus bits, and the subsets visible through sstatus/ustatus.
// These are vars so that they convert to 32-bit registers by truncation.
var (
	mstatusWritable = isa.StatusUIE | isa.StatusSIE | isa.StatusMIE |
		isa.StatusUPIE | isa.StatusSPIE | isa.StatusMPIE |
		isa.StatusSPP | isa.StatusMPP | isa.StatusFS | isa.StatusMPRV |
		isa.StatusSUM | isa.StatusMXR | isa.StatusTVM | isa.StatusTW | isa.StatusTSR
	sstatusWritable = isa.StatusUIE | isa.StatusSIE | isa.StatusUPIE | isa.StatusSPIE |
		isa.StatusSPP | isa.StatusFS | isa.StatusSUM | isa.StatusMXR
	sstatusVisible  = sstatusWritable | isa.StatusXS | isa.StatusUXL
	ustatusWritable = isa.StatusUIE | isa.StatusUPIE
)

// Hart holds the trap state of one hart with register width X.
type Hart[X trap.Register] struct {
	priv isa.PrivilegeMode
	ext  isa.Extensions
	xlen isa.XlenMode
	pc   X

	// CSR storage. Views (sstatus, sie, uip, ...) are derived from the
	// machine registers and never stored.
	regs map[csr.Address]X

	// Writable masks, fixed by the extension vector.
	interrupts    X // interrupts whose level exists
	lowerIntr     X // interrupts below machine level
	medelegMask   X
	midelegMask   X
	sedelegMask   X
	sidelegMask   X
	fixedStatus   X // read-only UXL/SXL fields
	statusSD      X
	epcAlignMask  X
	lowestPrivSet isa.PrivilegeMode
}

// New builds a hart from a config. The config's xlen must match X.
func New[X trap.Register](cfg config.Hart) (*Hart[X], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	xlen, err := cfg.Xlen()
	if err != nil {
		return nil, err
	}
	if w := trap.Width[X](); uint(xlen.Bits()) != w {
		return nil, fmt.Errorf("%w: config has %d bits, register has %d", ErrWidthMismatch, xlen.Bits(), w)
	}
	priv, err := cfg.PrivilegeMode()
	if err != nil {
		return nil, err
	}
	if err := checkWidth[X](cfg); err != nil {
		return nil, err
	}

	h := &Hart[X]{
		priv: priv,
		ext:  cfg.Extensions(),
		xlen: xlen,
		pc:   X(cfg.PC),
		regs: make(map[csr.Address]X),
	}
	h.computeMasks()

	for _, a := range h.implemented() {
		h.regs[a] = 0
	}
	h.regs[csr.Mhartid] = X(cfg.HartID)

	initial := []struct {
		addr csr.Address
		val  config.Reg
	}{
		{csr.Mstatus, cfg.Mstatus},
		{csr.Medeleg, cfg.Medeleg},
		{csr.Mideleg, cfg.Mideleg},
		{csr.Mie, cfg.Mie},
		{csr.Mtvec, cfg.Mtvec},
		{csr.Mepc, cfg.Mepc},
		{csr.Mcause, cfg.Mcause},
		{csr.Mtval, cfg.Mtval},
		{csr.Sedeleg, cfg.Sedeleg},
		{csr.Sideleg, cfg.Sideleg},
		{csr.Stvec, cfg.Stvec},
		{csr.Sepc, cfg.Sepc},
		{csr.Scause, cfg.Scause},
		{csr.Stval, cfg.Stval},
		{csr.Utvec, cfg.Utvec},
		{csr.Uepc, cfg.Uepc},
		{csr.Ucause, cfg.Ucause},
		{csr.Utval, cfg.Utval},
	}
	for _, r := range initial {
		if !h.has(r.addr) {
			if r.val != 0 {
				return nil, fmt.Errorf("%w: %s is not implemented by %s", config.ErrInvalidConfig, csr.Name(r.addr), h.ext)
			}
			continue
		}
		h.write(r.addr, X(r.val))
	}
	// Pending bits come from devices, so every implemented level may be set.
	h.regs[csr.Mip] = X(cfg.Mip) & h.interrupts

	slog.Debug("hart: created", "hartid", uint64(cfg.HartID), "isa", h.ext, "xlen", xlen.Bits(), "priv", priv)
	return h, nil
}

// checkWidth rejects register values that do not fit in X.
func checkWidth[X trap.Register](cfg config.Hart) error {
	regs := []struct {
		name string
		val  config.Reg
	}{
		{"hartid", cfg.HartID}, {"pc", cfg.PC},
		{"mstatus", cfg.Mstatus}, {"medeleg", cfg.Medeleg}, {"mideleg", cfg.Mideleg},
		{"mie", cfg.Mie}, {"mip", cfg.Mip}, {"mtvec", cfg.Mtvec}, {"mepc", cfg.Mepc},
		{"mcause", cfg.Mcause}, {"mtval", cfg.Mtval},
		{"sedeleg", cfg.Sedeleg}, {"sideleg", cfg.Sideleg}, {"stvec", cfg.Stvec},
		{"sepc", cfg.Sepc}, {"scause", cfg.Scause}, {"stval", cfg.Stval},
		{"utvec", cfg.Utvec}, {"uepc", cfg.Uepc}, {"ucause", cfg.Ucause}, {"utval", cfg.Utval},
	}
	for _, r := range regs {
		if uint64(X(r.val)) != uint64(r.val) {
			return fmt.Errorf("%w: %s %#x does not fit in %d bits", config.ErrInvalidConfig, r.name, uint64(r.val), trap.Width[X]())
		}
	}
	return nil
}

func (h *Hart[X]) computeMasks() {
	hasS, hasU := h.ext.Has(isa.ExtS), h.ext.Has(isa.ExtU)

	var interrupts, lower, sideleg uint64
	for _, i := range trap.Interrupts() {
		switch i.Privilege() {
		case isa.Machine:
			interrupts |= i.Mask()
		case isa.Supervisor:
			if hasS {
				interrupts |= i.Mask()
				lower |= i.Mask()
			}
		case isa.User:
			if hasU {
				interrupts |= i.Mask()
				lower |= i.Mask()
				sideleg |= i.Mask()
			}
		}
	}

	var medeleg, sedeleg uint64
	for _, e := range trap.Exceptions() {
		switch e {
		case trap.EcallFromM:
		case trap.EcallFromS:
			medeleg |= 1 << e.Code()
		default:
			medeleg |= 1 << e.Code()
			sedeleg |= 1 << e.Code()
		}
	}

	h.interrupts = X(interrupts)
	h.lowerIntr = X(lower)
	if hasU {
		h.medelegMask = X(medeleg)
		h.midelegMask = X(lower)
	}
	if hasS {
		h.sedelegMask = X(sedeleg)
		h.sidelegMask = X(sideleg)
	}

	h.statusSD = X(1) << (trap.Width[X]() - 1)
	if h.xlen == isa.XL64 {
		var fixed uint64
		if hasU {
			fixed |= uint64(isa.XL64) << isa.StatusUXLShift
		}
		if hasS {
			fixed |= uint64(isa.XL64) << isa.StatusSXLShift
		}
		h.fixedStatus = X(fixed)
	}

	h.epcAlignMask = ^X(1)
	if !h.ext.Has(isa.ExtC) {
		h.epcAlignMask = ^X(3)
	}

	h.lowestPrivSet = isa.Machine
	if hasU {
		h.lowestPrivSet = isa.User
	}
}

// implemented lists the CSRs this hart provides.
func (h *Hart[X]) implemented() []csr.Address {
	out := []csr.Address{
		csr.Mvendorid, csr.Marchid, csr.Mimpid, csr.Mhartid,
		csr.Mstatus, csr.Misa, csr.Medeleg, csr.Mideleg, csr.Mie, csr.Mtvec,
		csr.Mscratch, csr.Mepc, csr.Mcause, csr.Mtval, csr.Mip,
	}
	if h.ext.Has(isa.ExtS) {
		out = append(out,
			csr.Sstatus, csr.Sedeleg, csr.Sideleg, csr.Sie, csr.Stvec,
			csr.Sscratch, csr.Sepc, csr.Scause, csr.Stval, csr.Sip, csr.Satp,
		)
	}
	if h.ext.Has(isa.ExtU) {
		out = append(out,
			csr.Ustatus, csr.Uie, csr.Utvec, csr.Uscratch,
			csr.Uepc, csr.Ucause, csr.Utval, csr.Uip,
		)
	}
	return out
}

func (h *Hart[X]) has(a csr.Address) bool {
	_, ok := h.regs[a]
	return ok
}

// Privilege returns the current privilege level.
func (h *Hart[X]) Privilege() isa.PrivilegeMode { return h.priv }

// Extensions returns the hart's extension vector.
func (h *Hart[X]) Extensions() isa.Extensions { return h.ext }

// PC returns the program counter.
func (h *Hart[X]) PC() X { return h.pc }

// SetPC sets the program counter, for example after retiring an instruction.
func (h *Hart[X]) SetPC(pc X) { h.pc = pc }

// Delegation returns a snapshot of the delegation registers.
func (h *Hart[X]) Delegation() trap.Delegation[X] {
	return trap.Delegation[X]{
		Mideleg: h.regs[csr.Mideleg],
		Medeleg: h.regs[csr.Medeleg],
		Sideleg: h.regs[csr.Sideleg],
		Sedeleg: h.regs[csr.Sedeleg],
	}
}

// ReadCSR reads a CSR as an instruction running at the current privilege
// would. Errors mean the instruction must raise an illegal instruction
// exception; see AsException.
func (h *Hart[X]) ReadCSR(a csr.Address) (X, error) {
	if err := csr.CheckAccess(a, h.priv, false); err != nil {
		return 0, err
	}
	if !h.has(a) {
		return 0, fmt.Errorf("%w: %s", csr.ErrUnknownCSR, csr.Name(a))
	}
	return h.read(a), nil
}

// WriteCSR writes a CSR as an instruction running at the current privilege
// would. WARL fields silently keep legal values.
func (h *Hart[X]) WriteCSR(a csr.Address, v X) error {
	if err := csr.CheckAccess(a, h.priv, true); err != nil {
		return err
	}
	if !h.has(a) {
		return fmt.Errorf("%w: %s", csr.ErrUnknownCSR, csr.Name(a))
	}
	h.write(a, v)
	return nil
}

func (h *Hart[X]) status() X {
	return h.regs[csr.Mstatus] | h.fixedStatus
}

func (h *Hart[X]) read(a csr.Address) X {
	switch a {
	case csr.Mstatus:
		return h.status()
	case csr.Sstatus:
		return h.status() & (X(sstatusVisible) | h.statusSD)
	case csr.Ustatus:
		return h.status() & X(ustatusWritable)
	case csr.Misa:
		return X(h.ext.Misa(h.xlen))
	case csr.Sie:
		return h.regs[csr.Mie] & h.regs[csr.Mideleg]
	case csr.Sip:
		return h.regs[csr.Mip] & h.regs[csr.Mideleg]
	case csr.Uie:
		return h.regs[csr.Mie] & h.userDelegated()
	case csr.Uip:
		return h.regs[csr.Mip] & h.userDelegated()
	default:
		return h.regs[a]
	}
}

// userDelegated is the set of interrupts delegated all the way to U mode.
func (h *Hart[X]) userDelegated() X {
	if !h.ext.Has(isa.ExtS) {
		return h.regs[csr.Mideleg]
	}
	return h.regs[csr.Mideleg] & h.regs[csr.Sideleg]
}

func (h *Hart[X]) write(a csr.Address, v X) {
	switch a {
	case csr.Mstatus:
		h.writeStatus(v, X(mstatusWritable))
	case csr.Sstatus:
		h.writeStatus(v, X(sstatusWritable))
	case csr.Ustatus:
		h.writeStatus(v, X(ustatusWritable))
	case csr.Misa:
		// Extensions are fixed for the lifetime of a hart.
	case csr.Medeleg:
		h.regs[a] = v & h.medelegMask
	case csr.Mideleg:
		h.regs[a] = v & h.midelegMask
	case csr.Sedeleg:
		h.regs[a] = v & h.sedelegMask
	case csr.Sideleg:
		h.regs[a] = v & h.sidelegMask
	case csr.Mie:
		h.regs[a] = v & h.interrupts
	case csr.Sie:
		h.setMasked(csr.Mie, v, h.regs[csr.Mideleg])
	case csr.Uie:
		h.setMasked(csr.Mie, v, h.userDelegated())
	case csr.Mip:
		// Machine-level pending bits are driven by devices only.
		h.setMasked(csr.Mip, v, h.lowerIntr)
	case csr.Sip:
		soft := X(trap.SupervisorSoftware.Mask() | trap.UserSoftware.Mask())
		h.setMasked(csr.Mip, v, soft&h.regs[csr.Mideleg])
	case csr.Uip:
		h.setMasked(csr.Mip, v, X(trap.UserSoftware.Mask())&h.userDelegated())
	case csr.Mtvec, csr.Stvec, csr.Utvec:
		// Only direct and vectored modes exist.
		h.regs[a] = v &^ 0x2
	case csr.Mepc, csr.Sepc, csr.Uepc:
		h.regs[a] = v & h.epcAlignMask
	default:
		h.regs[a] = v
	}
}

func (h *Hart[X]) setMasked(a csr.Address, v, mask X) {
	h.regs[a] = (h.regs[a] &^ mask) | (v & mask)
}

func (h *Hart[X]) writeStatus(v, mask X) {
	s := (h.regs[csr.Mstatus] &^ mask) | (v & mask)

	// MPP is WARL: only implemented privilege levels may be stored.
	mpp := isa.PrivilegeMode((uint64(s) & isa.StatusMPP) >> isa.StatusMPPShift)
	if !h.supports(mpp) {
		s = (s &^ X(isa.StatusMPP)) | X(h.lowestPrivSet)<<isa.StatusMPPShift
	}
	if !h.ext.Has(isa.ExtS) {
		s &^= X(isa.StatusSPP | isa.StatusSIE | isa.StatusSPIE)
	}
	if !h.ext.Has(isa.ExtU) {
		s &^= X(isa.StatusUIE | isa.StatusUPIE)
	}

	if uint64(s)&isa.StatusFS == isa.StatusFS {
		s |= h.statusSD
	} else {
		s &^= h.statusSD
	}
	h.regs[csr.Mstatus] = s
}

func (h *Hart[X]) supports(p isa.PrivilegeMode) bool {
	switch p {
	case isa.Machine:
		return true
	case isa.Supervisor:
		return h.ext.Has(isa.ExtS)
	case isa.User:
		return h.ext.Has(isa.ExtU)
	default:
		return false
	}
}

// AsException maps a CSR access or xRET error to the exception the
// instruction must raise.
func AsException(err error) (trap.Exception, bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, csr.ErrUnknownCSR),
		errors.Is(err, csr.ErrPrivilege),
		errors.Is(err, csr.ErrReadOnly),
		errors.Is(err, ErrPrivilege):
		return trap.IllegalInstruction, true
	default:
		return 0, false
	}
}

// Snapshot returns the hart's state as a config.
func (h *Hart[X]) Snapshot() config.Hart {
	reg := func(a csr.Address) config.Reg { return config.Reg(uint64(h.read(a))) }
	return config.Hart{
		ISA:       h.ext.String(),
		XLEN:      h.xlen.Bits(),
		Privilege: h.priv.String(),
		HartID:    reg(csr.Mhartid),
		PC:        config.Reg(uint64(h.pc)),

		Mstatus: config.Reg(uint64(h.regs[csr.Mstatus])),
		Medeleg: reg(csr.Medeleg),
		Mideleg: reg(csr.Mideleg),
		Mie:     reg(csr.Mie),
		Mip:     reg(csr.Mip),
		Mtvec:   reg(csr.Mtvec),
		Mepc:    reg(csr.Mepc),
		Mcause:  reg(csr.Mcause),
		Mtval:   reg(csr.Mtval),

		Sedeleg: reg(csr.Sedeleg),
		Sideleg: reg(csr.Sideleg),
		Stvec:   reg(csr.Stvec),
		Sepc:    reg(csr.Sepc),
		Scause:  reg(csr.Scause),
		Stval:   reg(csr.Stval),

		Utvec:  reg(csr.Utvec),
		Uepc:   reg(csr.Uepc),
		Ucause: reg(csr.Ucause),
		Utval:  reg(csr.Utval),
	}
}
