package trap

import "github.com/tinyrange/rvfacts/internal/riscv/isa"

// bitSet reports whether bit n of v is set, with n taken modulo the
// register width.
func bitSet[X Register](v X, n uint) bool {
	return (v>>(n%Width[X]()))&1 == 1
}

// DestinedPrivilege returns the privilege level that must handle a trap with
// exception code cause, given the machine and supervisor delegation
// registers for the trap's kind (mideleg/sideleg for interrupts,
// medeleg/sedeleg for exceptions). The result is always User, Supervisor or
// Machine.
func DestinedPrivilege[X Register](cause uint, mdeleg, sdeleg X, ext isa.Extensions) isa.PrivilegeMode {
	// Without U mode there is no S mode either, so M mode takes it.
	if !ext.Has(isa.ExtU) {
		return isa.Machine
	}

	// M mode takes anything it hasn't delegated.
	if !bitSet(mdeleg, cause) {
		return isa.Machine
	}

	// Delegated with no S mode to receive it.
	if !ext.Has(isa.ExtS) {
		return isa.User
	}

	// S mode takes anything it hasn't delegated further.
	if !bitSet(sdeleg, cause) {
		return isa.Supervisor
	}

	return isa.User
}

// Delegation is a snapshot of the four delegation registers of a hart.
type Delegation[X Register] struct {
	Mideleg X
	Medeleg X
	Sideleg X
	Sedeleg X
}

// For returns the machine and supervisor delegation registers that apply to c.
func (d Delegation[X]) For(c Cause) (mdeleg, sdeleg X) {
	if c.IsInterrupt() {
		return d.Mideleg, d.Sideleg
	}
	return d.Medeleg, d.Sedeleg
}

// Route returns the privilege level that handles c.
func Route[X Register](c Cause, d Delegation[X], ext isa.Extensions) isa.PrivilegeMode {
	mdeleg, sdeleg := d.For(c)
	return DestinedPrivilege(c.Code(), mdeleg, sdeleg, ext)
}
