// Package isa holds static facts about the RISC-V instruction set: privilege
// levels, extension vectors, instruction encodings, register names and the
// layout of the status registers.
package isa

import (
	"fmt"
	"strings"
)

// Versions of the RISC-V specifications these facts describe.
const (
	PrivilegedSpecDate   = "20190608"
	UnprivilegedSpecDate = "20191213"
)

// PrivilegeMode is a RISC-V privilege level. The numeric value matches the
// two-bit field used in CSR addresses and in the xPP status fields.
type PrivilegeMode uint8

const (
	User       PrivilegeMode = 0
	Supervisor PrivilegeMode = 1
	Hypervisor PrivilegeMode = 2 // reserved; no CSRs are defined for it
	Machine    PrivilegeMode = 3
)

func (p PrivilegeMode) String() string {
	switch p {
	case User:
		return "user"
	case Supervisor:
		return "supervisor"
	case Hypervisor:
		return "hypervisor"
	case Machine:
		return "machine"
	default:
		return fmt.Sprintf("PrivilegeMode(%d)", uint8(p))
	}
}

// Letter returns the single-letter abbreviation used in CSR names (u, s, h, m).
func (p PrivilegeMode) Letter() string {
	switch p {
	case User:
		return "u"
	case Supervisor:
		return "s"
	case Hypervisor:
		return "h"
	case Machine:
		return "m"
	default:
		return "?"
	}
}

// ParsePrivilege accepts a full name or single letter, case-insensitive.
func ParsePrivilege(s string) (PrivilegeMode, error) {
	switch strings.ToLower(s) {
	case "u", "user":
		return User, nil
	case "s", "supervisor":
		return Supervisor, nil
	case "h", "hypervisor":
		return Hypervisor, nil
	case "m", "machine":
		return Machine, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPrivilege, s)
}

// XlenMode is the encoding of the MXL/SXL/UXL fields.
type XlenMode uint8

const (
	XlenNone XlenMode = 0
	XL32     XlenMode = 1
	XL64     XlenMode = 2
	XL128    XlenMode = 3
)

// Bits returns the register width in bits, or 0 for XlenNone.
func (x XlenMode) Bits() int {
	switch x {
	case XL32:
		return 32
	case XL64:
		return 64
	case XL128:
		return 128
	default:
		return 0
	}
}

// XlenForBits maps a register width to its XlenMode.
func XlenForBits(bits int) (XlenMode, error) {
	switch bits {
	case 32:
		return XL32, nil
	case 64:
		return XL64, nil
	case 128:
		return XL128, nil
	}
	return XlenNone, fmt.Errorf("%w: %d", ErrInvalidXlen, bits)
}
