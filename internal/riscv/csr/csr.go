// Package csr describes the RISC-V control and status register address
// space. Access rules are derived purely from the address bits: bits 8-9
// give the lowest privilege level allowed to touch a CSR and a top nibble of
// 0b11xx marks it read-only.
package csr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tinyrange/rvfacts/internal/riscv/isa"
)

// Address is a 12-bit CSR number.
type Address uint16

// NumCSRs is the size of the CSR address space.
const NumCSRs = 0x1000

// Invalid marks a CSR that does not exist. It lies outside the 12-bit
// address space, so it can never collide with a real CSR.
const Invalid Address = 0x1000

var (
	ErrUnknownCSR = errors.New("unknown CSR")
	ErrPrivilege  = errors.New("insufficient privilege for CSR")
	ErrReadOnly   = errors.New("write to read-only CSR")
)

var (
	nameTable [NumCSRs]string
	byName    = make(map[string]Address, len(known))
)

func init() {
	for _, k := range known {
		nameTable[k.addr] = k.name
		byName[k.name] = k.addr
	}
}

// Valid reports whether a lies inside the CSR address space.
func (a Address) Valid() bool { return a < NumCSRs }

// Known reports whether a has a standard name.
func (a Address) Known() bool { return a.Valid() && nameTable[a] != "" }

func (a Address) String() string { return Name(a) }

// Name returns the canonical lowercase mnemonic of a CSR. Addresses without
// a name yield a diagnostic string carrying the number instead.
func Name(a Address) string {
	if !a.Valid() {
		return fmt.Sprintf("(invalid CSR #%d)", uint16(a))
	}
	if n := nameTable[a]; n != "" {
		return n
	}
	return fmt.Sprintf("(unknown CSR #0x%03x)", uint16(a))
}

// Lookup finds a CSR by its mnemonic, case-insensitively.
func Lookup(name string) (Address, bool) {
	a, ok := byName[strings.ToLower(name)]
	return a, ok
}

// ParseAddress accepts either a CSR mnemonic or a numeric address in any
// base understood by strconv (0x300, 768, 0o1400).
func ParseAddress(s string) (Address, error) {
	if a, ok := Lookup(s); ok {
		return a, nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return Invalid, fmt.Errorf("%w: %q", ErrUnknownCSR, s)
	}
	if n >= NumCSRs {
		return Invalid, fmt.Errorf("%w: %#x out of range", ErrUnknownCSR, n)
	}
	return Address(n), nil
}

// RequiredPrivilege returns the lowest privilege level that may access a.
// It applies to every address, named or not.
func RequiredPrivilege(a Address) isa.PrivilegeMode {
	return isa.PrivilegeMode((a >> 8) & 0x3)
}

// IsReadOnly reports whether a is in one of the read-only ranges.
func IsReadOnly(a Address) bool {
	return a&0xC00 == 0xC00
}

// CheckAccess decides whether code running at priv may read (or write, if
// write is set) a. A nil result means the access is allowed; otherwise the
// caller should raise an illegal instruction exception.
func CheckAccess(a Address, priv isa.PrivilegeMode, write bool) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCSR, Name(a))
	}
	if priv < RequiredPrivilege(a) {
		return fmt.Errorf("%w: %s requires %s mode, have %s", ErrPrivilege, Name(a), RequiredPrivilege(a), priv)
	}
	if write && IsReadOnly(a) {
		return fmt.Errorf("%w: %s", ErrReadOnly, Name(a))
	}
	return nil
}
