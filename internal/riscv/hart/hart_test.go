package hart

import (
	"errors"
	"testing"

	"github.com/tinyrange/rvfacts/internal/config"
	"github.com/tinyrange/rvfacts/internal/riscv/csr"
	"github.com/tinyrange/rvfacts/internal/riscv/isa"
	"github.com/tinyrange/rvfacts/internal/riscv/trap"
)

const (
	mtvec = 0x8000_0000
	stvec = 0x8020_0000
	entry = 0x8040_0000
)

// linuxConfig mirrors what OpenSBI leaves behind before jumping to a
// supervisor kernel: supervisor interrupts and the usual exceptions
// delegated, supervisor interrupts enabled.
func linuxConfig(priv string) config.Hart {
	cfg := config.Default()
	cfg.Privilege = priv
	cfg.Mideleg = 0x222
	cfg.Medeleg = 0xb109
	cfg.Mie = 0xaaa
	cfg.Mstatus = config.Reg(isa.StatusSIE)
	cfg.Mtvec = mtvec
	cfg.Stvec = stvec
	cfg.PC = entry
	return cfg
}

func newHart(t *testing.T, cfg config.Hart) *Hart[uint64] {
	t.Helper()
	h, err := New[uint64](cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h
}

func mustRead[X trap.Register](t *testing.T, h *Hart[X], a csr.Address) X {
	t.Helper()
	v, err := h.ReadCSR(a)
	if err != nil {
		t.Fatalf("ReadCSR(%s): %v", a, err)
	}
	return v
}

func TestEcallFromSupervisorGoesToMachine(t *testing.T) {
	h := newHart(t, linuxConfig("supervisor"))

	if dest := h.Trap(trap.EcallFromS, 0); dest != isa.Machine {
		t.Fatalf("expected machine, got %v", dest)
	}
	if h.Privilege() != isa.Machine || h.PC() != mtvec {
		t.Fatalf("priv=%v pc=%#x", h.Privilege(), h.PC())
	}
	if got := mustRead(t, h, csr.Mepc); got != entry {
		t.Fatalf("mepc = %#x", got)
	}
	if got := mustRead(t, h, csr.Mcause); got != uint64(trap.EcallFromS) {
		t.Fatalf("mcause = %#x", got)
	}
	status := mustRead(t, h, csr.Mstatus)
	if mpp := (status & isa.StatusMPP) >> isa.StatusMPPShift; mpp != uint64(isa.Supervisor) {
		t.Fatalf("MPP = %d, want supervisor", mpp)
	}

	h.SetPC(mustRead(t, h, csr.Mepc) + 4)
	if err := h.WriteCSR(csr.Mepc, h.PC()); err != nil {
		t.Fatalf("WriteCSR(mepc): %v", err)
	}
	if err := h.Return(isa.Machine); err != nil {
		t.Fatalf("mret: %v", err)
	}
	if h.Privilege() != isa.Supervisor || h.PC() != entry+4 {
		t.Fatalf("after mret priv=%v pc=%#x", h.Privilege(), h.PC())
	}
	after := uint64(h.Snapshot().Mstatus)
	if after&isa.StatusMPP != 0 {
		t.Fatalf("MPP not reset after mret: %#x", after)
	}
	if after&isa.StatusMPIE == 0 {
		t.Fatalf("MPIE not set after mret: %#x", after)
	}
}

func TestEcallFromUserDelegated(t *testing.T) {
	h := newHart(t, linuxConfig("user"))

	if dest := h.Trap(trap.EcallFromU, 0); dest != isa.Supervisor {
		t.Fatalf("expected supervisor, got %v", dest)
	}
	if h.PC() != stvec {
		t.Fatalf("pc = %#x", h.PC())
	}
	if got := mustRead(t, h, csr.Scause); got != uint64(trap.EcallFromU) {
		t.Fatalf("scause = %#x", got)
	}
	if got := mustRead(t, h, csr.Sepc); got != entry {
		t.Fatalf("sepc = %#x", got)
	}
	status := mustRead(t, h, csr.Sstatus)
	if status&isa.StatusSPP != 0 {
		t.Fatal("SPP should record user mode")
	}
	if status&isa.StatusSIE != 0 || status&isa.StatusSPIE == 0 {
		t.Fatalf("SIE not stacked into SPIE: %#x", status)
	}

	if err := h.Return(isa.Supervisor); err != nil {
		t.Fatalf("sret: %v", err)
	}
	if h.Privilege() != isa.User || h.PC() != entry {
		t.Fatalf("after sret priv=%v pc=%#x", h.Privilege(), h.PC())
	}
	if h.Snapshot().Mstatus&config.Reg(isa.StatusSIE) == 0 {
		t.Fatal("SIE not restored by sret")
	}
}

func TestTrapNeverLowersPrivilege(t *testing.T) {
	h := newHart(t, linuxConfig("machine"))

	// Breakpoints are delegated, but a trap taken in M mode stays there.
	if dest := h.Trap(trap.Breakpoint, 0x1234); dest != isa.Machine {
		t.Fatalf("expected machine, got %v", dest)
	}
	if got := mustRead(t, h, csr.Mtval); got != 0x1234 {
		t.Fatalf("mtval = %#x", got)
	}
	status := mustRead(t, h, csr.Mstatus)
	if mpp := (status & isa.StatusMPP) >> isa.StatusMPPShift; mpp != uint64(isa.Machine) {
		t.Fatalf("MPP = %d, want machine", mpp)
	}
}

func TestDelegatedInterrupt(t *testing.T) {
	h := newHart(t, linuxConfig("user"))

	if _, ok := h.PendingInterrupt(); ok {
		t.Fatal("nothing should be pending")
	}

	h.SetPending(trap.SupervisorTimer, true)
	i, dest, ok := h.TakeInterrupt()
	if !ok || i != trap.SupervisorTimer || dest != isa.Supervisor {
		t.Fatalf("TakeInterrupt = %v, %v, %v", i, dest, ok)
	}
	if got := mustRead(t, h, csr.Scause); got != 1<<63|5 {
		t.Fatalf("scause = %#x", got)
	}
	if h.PC() != stvec {
		t.Fatalf("pc = %#x", h.PC())
	}

	// SIE is now clear, so the still-pending timer must wait.
	if _, ok := h.PendingInterrupt(); ok {
		t.Fatal("interrupt taken with SIE clear")
	}
}

func TestVectoredInterrupt(t *testing.T) {
	cfg := linuxConfig("user")
	cfg.Stvec = stvec | 1
	h := newHart(t, cfg)

	h.SetPending(trap.SupervisorExternal, true)
	if _, _, ok := h.TakeInterrupt(); !ok {
		t.Fatal("expected an interrupt")
	}
	if want := uint64(stvec + 4*9); h.PC() != want {
		t.Fatalf("pc = %#x, want %#x", h.PC(), want)
	}

	// Exceptions always use the base address.
	h2 := newHart(t, cfg)
	h2.Trap(trap.LoadPageFault, 0)
	if h2.PC() != stvec {
		t.Fatalf("exception pc = %#x", h2.PC())
	}
}

func TestInterruptEnables(t *testing.T) {
	cfg := linuxConfig("supervisor")
	cfg.Mstatus = 0
	h := newHart(t, cfg)

	// Delegated to the current level with SIE clear: masked.
	h.SetPending(trap.SupervisorTimer, true)
	if i, ok := h.PendingInterrupt(); ok {
		t.Fatalf("unexpected %v", i)
	}

	// Machine interrupts preempt supervisor mode regardless of MIE.
	h.SetPending(trap.MachineTimer, true)
	if i, ok := h.PendingInterrupt(); !ok || i != trap.MachineTimer {
		t.Fatalf("expected machine timer, got %v, %v", i, ok)
	}

	if dest := h.Trap(trap.MachineTimer, 0); dest != isa.Machine {
		t.Fatalf("expected machine, got %v", dest)
	}

	// In M mode with MIE clear nothing is taken, and the supervisor timer
	// is delegated below the current level.
	if i, ok := h.PendingInterrupt(); ok {
		t.Fatalf("unexpected %v", i)
	}
	if err := h.WriteCSR(csr.Mstatus, isa.StatusMIE); err != nil {
		t.Fatalf("WriteCSR(mstatus): %v", err)
	}
	if i, ok := h.PendingInterrupt(); !ok || i != trap.MachineTimer {
		t.Fatalf("expected machine timer, got %v, %v", i, ok)
	}
	h.SetPending(trap.MachineTimer, false)
	if i, ok := h.PendingInterrupt(); ok {
		t.Fatalf("unexpected %v", i)
	}
}

func TestPriorityBetweenPending(t *testing.T) {
	h := newHart(t, linuxConfig("user"))
	h.SetPending(trap.SupervisorTimer, true)
	h.SetPending(trap.SupervisorExternal, true)
	h.SetPending(trap.MachineSoftware, true)

	if i, ok := h.PendingInterrupt(); !ok || i != trap.MachineSoftware {
		t.Fatalf("expected machine software, got %v, %v", i, ok)
	}
	h.SetPending(trap.MachineSoftware, false)
	if i, ok := h.PendingInterrupt(); !ok || i != trap.SupervisorExternal {
		t.Fatalf("expected supervisor external, got %v, %v", i, ok)
	}
}

func TestCSRAccessControl(t *testing.T) {
	cfg := linuxConfig("supervisor")
	cfg.Mie = 0x888
	h := newHart(t, cfg)

	_, err := h.ReadCSR(csr.Mstatus)
	if !errors.Is(err, csr.ErrPrivilege) {
		t.Fatalf("expected ErrPrivilege, got %v", err)
	}
	if e, ok := AsException(err); !ok || e != trap.IllegalInstruction {
		t.Fatalf("AsException = %v, %v", e, ok)
	}

	if err := h.WriteCSR(csr.Cycle, 1); !errors.Is(err, csr.ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if _, err := h.ReadCSR(csr.Cycle); !errors.Is(err, csr.ErrUnknownCSR) {
		t.Fatalf("expected ErrUnknownCSR, got %v", err)
	}
	if _, ok := AsException(nil); ok {
		t.Fatal("nil error is not an exception")
	}
	if _, ok := AsException(errors.New("other")); ok {
		t.Fatal("unrelated error is not an exception")
	}

	status := mustRead(t, h, csr.Sstatus)
	if status&isa.StatusSIE == 0 {
		t.Fatalf("sstatus = %#x, expected SIE", status)
	}
	if uxl := (status >> isa.StatusUXLShift) & 3; uxl != uint64(isa.XL64) {
		t.Fatalf("UXL = %d", uxl)
	}
	if status&isa.StatusMPP != 0 {
		t.Fatal("sstatus must not expose MPP")
	}

	// sie only reaches the delegated bits of mie.
	if err := h.WriteCSR(csr.Sie, ^uint64(0)); err != nil {
		t.Fatalf("WriteCSR(sie): %v", err)
	}
	if got := mustRead(t, h, csr.Sie); got != 0x222 {
		t.Fatalf("sie = %#x", got)
	}
	if got := h.Snapshot().Mie; got != 0xaaa {
		t.Fatalf("mie = %#x", uint64(got))
	}

	// Only the supervisor software bit is writable through sip.
	if err := h.WriteCSR(csr.Sip, ^uint64(0)); err != nil {
		t.Fatalf("WriteCSR(sip): %v", err)
	}
	if got := mustRead(t, h, csr.Sip); got != 0x2 {
		t.Fatalf("sip = %#x", got)
	}
}

func TestMachineWARL(t *testing.T) {
	h := newHart(t, linuxConfig("machine"))

	tests := []struct {
		addr  csr.Address
		write uint64
		want  uint64
	}{
		{csr.Mip, ^uint64(0), 0x333},
		{csr.Mie, ^uint64(0), 0xbbb},
		{csr.Mideleg, ^uint64(0), 0x333},
		{csr.Medeleg, ^uint64(0), 0xb3ff},
		{csr.Sedeleg, ^uint64(0), 0xb1ff},
		{csr.Sideleg, ^uint64(0), 0x111},
		{csr.Mtvec, 0x8000_0003, 0x8000_0001},
		{csr.Mepc, 0x8000_0003, 0x8000_0002},
		{csr.Misa, 0, isa.ParseExtensions("IMAFDCSU").Misa(isa.XL64)},
		{csr.Mscratch, 0xdead_beef, 0xdead_beef},
	}
	for _, tt := range tests {
		if err := h.WriteCSR(tt.addr, tt.write); err != nil {
			t.Fatalf("WriteCSR(%s): %v", tt.addr, err)
		}
		if got := mustRead(t, h, tt.addr); got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.addr, got, tt.want)
		}
	}

	// Hypervisor is not a legal MPP value.
	if err := h.WriteCSR(csr.Mstatus, uint64(isa.Hypervisor)<<isa.StatusMPPShift); err != nil {
		t.Fatal(err)
	}
	if mpp := (mustRead(t, h, csr.Mstatus) & isa.StatusMPP) >> isa.StatusMPPShift; mpp != uint64(isa.User) {
		t.Fatalf("MPP = %d", mpp)
	}

	if err := h.WriteCSR(csr.Mstatus, isa.StatusFS); err != nil {
		t.Fatal(err)
	}
	if mustRead(t, h, csr.Mstatus)&isa.StatusSD64 == 0 {
		t.Fatal("SD not set with dirty FS")
	}
}

func TestMachineOnlyHart(t *testing.T) {
	cfg := config.Default()
	cfg.ISA = "IMAC"
	cfg.Medeleg = 0xffff
	cfg.Mideleg = 0xffff
	h := newHart(t, cfg)

	if got := mustRead(t, h, csr.Medeleg); got != 0 {
		t.Fatalf("medeleg = %#x", got)
	}
	if dest := h.Trap(trap.EcallFromM, 0); dest != isa.Machine {
		t.Fatalf("expected machine, got %v", dest)
	}
	if _, err := h.ReadCSR(csr.Sstatus); !errors.Is(err, csr.ErrUnknownCSR) {
		t.Fatalf("expected ErrUnknownCSR, got %v", err)
	}
	if err := h.Return(isa.Supervisor); !errors.Is(err, ErrPrivilege) {
		t.Fatalf("expected ErrPrivilege, got %v", err)
	}
	if err := h.Return(isa.Machine); err != nil {
		t.Fatalf("mret: %v", err)
	}
	if h.Privilege() != isa.Machine {
		t.Fatalf("mret without U mode must stay in machine mode, got %v", h.Privilege())
	}

	cfg.Stvec = stvec
	if _, err := New[uint64](cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestReturnChecks(t *testing.T) {
	h := newHart(t, linuxConfig("user"))
	err := h.Return(isa.Supervisor)
	if !errors.Is(err, ErrPrivilege) {
		t.Fatalf("expected ErrPrivilege, got %v", err)
	}
	if e, ok := AsException(err); !ok || e != trap.IllegalInstruction {
		t.Fatalf("AsException = %v, %v", e, ok)
	}

	cfg := linuxConfig("supervisor")
	cfg.Mstatus = config.Reg(isa.StatusSIE | isa.StatusTSR)
	h = newHart(t, cfg)
	if err := h.Return(isa.Supervisor); !errors.Is(err, ErrPrivilege) {
		t.Fatalf("expected ErrPrivilege with TSR, got %v", err)
	}
}

func TestHart32(t *testing.T) {
	cfg := linuxConfig("user")
	cfg.XLEN = 32
	cfg.Mtvec = 0
	cfg.PC = 0x1000

	if _, err := New[uint64](cfg); !errors.Is(err, ErrWidthMismatch) {
		t.Fatalf("expected ErrWidthMismatch, got %v", err)
	}

	h, err := New[uint32](cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.SetPending(trap.SupervisorExternal, true)
	if _, dest, ok := h.TakeInterrupt(); !ok || dest != isa.Supervisor {
		t.Fatalf("TakeInterrupt = %v, %v", dest, ok)
	}
	if got := mustRead(t, h, csr.Scause); got != 1<<31|9 {
		t.Fatalf("scause = %#x", got)
	}
	if got := mustRead(t, h, csr.Sstatus); uint64(got)>>isa.StatusUXLShift != 0 {
		t.Fatalf("32-bit sstatus has UXL: %#x", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	h := newHart(t, linuxConfig("user"))
	h.SetPending(trap.SupervisorSoftware, true)
	h.Trap(trap.LoadPageFault, 0xdead_0000)

	snap := h.Snapshot()
	if snap.Privilege != "supervisor" || snap.Stval != 0xdead_0000 || snap.Scause != 13 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, data)
	}
	h2 := newHart(t, cfg)
	if got := h2.Snapshot(); got != snap {
		t.Fatalf("snapshot mismatch:\n%+v\n%+v", got, snap)
	}
}

func TestHart32RejectsWideValues(t *testing.T) {
	tests := []struct {
		name string
		set  func(*config.Hart)
	}{
		{"pc", func(c *config.Hart) { c.PC = 0x1_0000_1000 }},
		{"stvec", func(c *config.Hart) { c.Stvec = 0x1_8020_0000 }},
		{"mip", func(c *config.Hart) { c.Mip = 1 << 40 }},
		{"hartid", func(c *config.Hart) { c.HartID = 1 << 32 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := linuxConfig("user")
			cfg.XLEN = 32
			cfg.Mtvec = 0
			tt.set(&cfg)

			if _, err := New[uint32](cfg); !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	// The same values are fine on a 64-bit hart.
	cfg := linuxConfig("user")
	cfg.PC = 0x1_0000_1000
	newHart(t, cfg)
}
