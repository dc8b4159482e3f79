package isa

import (
	"fmt"
	"strings"
)

// Extension identifies one ISA letter. ExtA is bit 0 of the vector, ExtZ bit 25.
type Extension uint8

const (
	ExtA Extension = iota // Atomic
	ExtB
	ExtC // Compressed
	ExtD // Double-precision float
	ExtE // RV32E base
	ExtF // Single-precision float
	ExtG
	ExtH // Hypervisor
	ExtI // Integer base
	ExtJ
	ExtK
	ExtL
	ExtM // Multiply/Divide
	ExtN // User-level interrupts
	ExtO
	ExtP
	ExtQ // Quad-precision float
	ExtR
	ExtS // Supervisor mode
	ExtT
	ExtU // User mode
	ExtV // Vector
	ExtW
	ExtX // Non-standard extensions
	ExtY
	ExtZ

	numExtensions = 26
)

// ExtensionFromLetter converts an uppercase ASCII letter into an Extension.
// Anything else is rejected; Extensions.Has never sees an unchecked letter.
func ExtensionFromLetter(letter byte) (Extension, error) {
	if letter < 'A' || letter > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExtension, letter)
	}
	return Extension(letter - 'A'), nil
}

// Letter returns the uppercase letter for e.
func (e Extension) Letter() byte {
	if e >= numExtensions {
		return '?'
	}
	return 'A' + byte(e)
}

func (e Extension) String() string { return string(e.Letter()) }

// Extensions is the set of implemented ISA extensions, one bit per letter.
// It has the same layout as the low 26 bits of misa.
type Extensions uint32

const extensionMask Extensions = 1<<numExtensions - 1

// ParseExtensions builds an extension vector from an ISA string such as
// "rv64imafdcsu". Every ASCII letter sets its bit, case-insensitively, and
// all other characters are ignored. The function never fails.
//
// Note that the "rv" prefix contributes R and V like any other letter; pass
// only the extension part when that matters.
func ParseExtensions(isa string) Extensions {
	var v Extensions
	for i := 0; i < len(isa); i++ {
		c := isa[i]
		switch {
		case c >= 'a' && c <= 'z':
			v |= 1 << (c - 'a')
		case c >= 'A' && c <= 'Z':
			v |= 1 << (c - 'A')
		}
	}
	return v
}

// ExtensionsFromMisa extracts the extension bits of a misa value.
func ExtensionsFromMisa(misa uint64) Extensions {
	return Extensions(misa) & extensionMask
}

// Has reports whether e is present. Values outside A..Z report false.
func (v Extensions) Has(e Extension) bool {
	if e >= numExtensions {
		return false
	}
	return v&(1<<e) != 0
}

// With returns v with the given extensions added.
func (v Extensions) With(exts ...Extension) Extensions {
	for _, e := range exts {
		if e < numExtensions {
			v |= 1 << e
		}
	}
	return v
}

// Without returns v with the given extensions removed.
func (v Extensions) Without(exts ...Extension) Extensions {
	for _, e := range exts {
		if e < numExtensions {
			v &^= 1 << e
		}
	}
	return v
}

// Misa encodes v as a misa register value for the given width. MXL occupies
// the top two bits of the register; for XL128 (which does not fit in 64
// bits) and XlenNone only the extension bits are returned.
func (v Extensions) Misa(xlen XlenMode) uint64 {
	misa := uint64(v & extensionMask)
	switch xlen {
	case XL32:
		misa |= uint64(xlen) << 30
	case XL64:
		misa |= uint64(xlen) << 62
	}
	return misa
}

// String lists the present extensions in alphabetical order, e.g. "ACDFIMSU".
func (v Extensions) String() string {
	var sb strings.Builder
	for e := Extension(0); e < numExtensions; e++ {
		if v.Has(e) {
			sb.WriteByte(e.Letter())
		}
	}
	return sb.String()
}
