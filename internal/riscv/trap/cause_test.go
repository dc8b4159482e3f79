package trap

import (
	"errors"
	"testing"

	"github.com/tinyrange/rvfacts/internal/riscv/isa"
)

func TestEncodeCause(t *testing.T) {
	if got := EncodeCause[uint64](MachineTimer); got != 1<<63|7 {
		t.Fatalf("EncodeCause64(MTI) = %#x", got)
	}
	if got := EncodeCause[uint32](SupervisorExternal); got != 1<<31|9 {
		t.Fatalf("EncodeCause32(SEI) = %#x", got)
	}
	if got := EncodeCause[uint64](LoadPageFault); got != 13 {
		t.Fatalf("EncodeCause64(load page fault) = %#x", got)
	}
}

func TestDecodeCause(t *testing.T) {
	for _, i := range Interrupts() {
		c, err := DecodeCause(EncodeCause[uint32](i))
		if err != nil || c != Cause(i) {
			t.Fatalf("DecodeCause(%v) = %v, %v", i, c, err)
		}
	}
	for _, e := range Exceptions() {
		c, err := DecodeCause(EncodeCause[uint64](e))
		if err != nil || c != Cause(e) {
			t.Fatalf("DecodeCause(%v) = %v, %v", e, c, err)
		}
	}

	for _, v := range []uint64{10, 14, 16, 1<<63 | 2, 1<<63 | 16, 1<<63 | 1<<40} {
		if _, err := DecodeCause(v); !errors.Is(err, ErrUnknownCause) {
			t.Errorf("DecodeCause(%#x): expected ErrUnknownCause, got %v", v, err)
		}
	}
}

func TestInterruptFacts(t *testing.T) {
	tests := []struct {
		i     Interrupt
		priv  isa.PrivilegeMode
		short string
	}{
		{UserSoftware, isa.User, "usi"},
		{SupervisorTimer, isa.Supervisor, "sti"},
		{MachineExternal, isa.Machine, "mei"},
		{MachineSoftware, isa.Machine, "msi"},
	}
	for _, tt := range tests {
		if tt.i.Privilege() != tt.priv {
			t.Errorf("%v.Privilege() = %v, want %v", tt.i, tt.i.Privilege(), tt.priv)
		}
		if tt.i.Short() != tt.short {
			t.Errorf("%v.Short() = %q, want %q", tt.i, tt.i.Short(), tt.short)
		}
		p, err := ParseInterrupt(tt.short)
		if err != nil || p != tt.i {
			t.Errorf("ParseInterrupt(%q) = %v, %v", tt.short, p, err)
		}
	}
	if MachineExternal.Mask() != 1<<11 {
		t.Fatal("unexpected MEIP mask")
	}
}

func TestParseCauses(t *testing.T) {
	if i, err := ParseInterrupt("7"); err != nil || i != MachineTimer {
		t.Fatalf("ParseInterrupt(7) = %v, %v", i, err)
	}
	if _, err := ParseInterrupt("2"); !errors.Is(err, ErrUnknownCause) {
		t.Fatalf("expected ErrUnknownCause, got %v", err)
	}
	if e, err := ParseException("0xd"); err != nil || e != LoadPageFault {
		t.Fatalf("ParseException(0xd) = %v, %v", e, err)
	}
	if _, err := ParseException("14"); !errors.Is(err, ErrUnknownCause) {
		t.Fatalf("expected ErrUnknownCause, got %v", err)
	}
}

func TestEcallFrom(t *testing.T) {
	if EcallFrom(isa.User) != EcallFromU || EcallFrom(isa.Supervisor) != EcallFromS || EcallFrom(isa.Machine) != EcallFromM {
		t.Fatal("EcallFrom mismatch")
	}
}

func TestCauseSpacesAreDistinct(t *testing.T) {
	var a Cause = UserSoftware
	var b Cause = InstructionAddressMisaligned
	if a.Code() != b.Code() {
		t.Fatal("expected shared code")
	}
	if a == b {
		t.Fatal("interrupt and exception with the same code must not compare equal")
	}
}
