package csr

import "github.com/tinyrange/rvfacts/internal/riscv/isa"

// TrapCSRs is the set of CSRs a privilege level uses to take traps.
// Fields holding Invalid do not exist at that level.
type TrapCSRs struct {
	Status Address
	Cause  Address
	EPC    Address
	TVec   Address
	TVal   Address
	IP     Address
	IE     Address
	IDeleg Address
	EDeleg Address
}

// Valid reports whether the bundle describes an implemented level. A bundle
// can be valid while individual fields (such as User's delegation
// registers) are Invalid.
func (t TrapCSRs) Valid() bool {
	return t.Status.Valid()
}

// Addresses returns the fields in declaration order.
func (t TrapCSRs) Addresses() []Address {
	return []Address{t.Status, t.Cause, t.EPC, t.TVec, t.TVal, t.IP, t.IE, t.IDeleg, t.EDeleg}
}

var invalidTrapCSRs = TrapCSRs{
	Status: Invalid,
	Cause:  Invalid,
	EPC:    Invalid,
	TVec:   Invalid,
	TVal:   Invalid,
	IP:     Invalid,
	IE:     Invalid,
	IDeleg: Invalid,
	EDeleg: Invalid,
}

var trapCSRsForPrivilege = [4]TrapCSRs{
	isa.User: {
		Status: Ustatus,
		Cause:  Ucause,
		EPC:    Uepc,
		TVec:   Utvec,
		TVal:   Utval,
		IP:     Uip,
		IE:     Uie,
		// There are no uideleg/uedeleg registers.
		IDeleg: Invalid,
		EDeleg: Invalid,
	},
	isa.Supervisor: {
		Status: Sstatus,
		Cause:  Scause,
		EPC:    Sepc,
		TVec:   Stvec,
		TVal:   Stval,
		IP:     Sip,
		IE:     Sie,
		IDeleg: Sideleg,
		EDeleg: Sedeleg,
	},
	isa.Hypervisor: invalidTrapCSRs,
	isa.Machine: {
		Status: Mstatus,
		Cause:  Mcause,
		EPC:    Mepc,
		TVec:   Mtvec,
		TVal:   Mtval,
		IP:     Mip,
		IE:     Mie,
		IDeleg: Mideleg,
		EDeleg: Medeleg,
	},
}

// BundleFor returns the trap CSRs of a privilege level. Hypervisor, and any
// value outside the four levels, yields a bundle of Invalid addresses.
func BundleFor(p isa.PrivilegeMode) TrapCSRs {
	if int(p) >= len(trapCSRsForPrivilege) {
		return invalidTrapCSRs
	}
	return trapCSRsForPrivilege[p]
}
