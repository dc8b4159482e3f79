// Package trap decides where RISC-V traps go: which privilege level handles
// a given cause under the current delegation settings, and which of several
// pending interrupts is taken first.
//
// Interrupt and exception codes overlap numerically (0 is both the user
// software interrupt and a misaligned instruction fetch), so they are kept
// in two distinct types that share only the Cause interface.
package trap

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/tinyrange/rvfacts/internal/riscv/isa"
)

var ErrUnknownCause = errors.New("unknown trap cause")

// Register is an emulated register width. RV128 has no native Go integer
// type and is not supported.
type Register interface {
	~uint32 | ~uint64
}

// Width returns the number of bits in X.
func Width[X Register]() uint {
	return uint(bits.Len64(uint64(^X(0))))
}

// Cause is either an Interrupt or an Exception.
type Cause interface {
	// Code is the exception code as written to xcause, without the
	// interrupt bit.
	Code() uint
	IsInterrupt() bool
	String() string
}

// Interrupt is an interrupt exception code.
type Interrupt uint8

const (
	UserSoftware       Interrupt = 0
	SupervisorSoftware Interrupt = 1
	MachineSoftware    Interrupt = 3
	UserTimer          Interrupt = 4
	SupervisorTimer    Interrupt = 5
	MachineTimer       Interrupt = 7
	UserExternal       Interrupt = 8
	SupervisorExternal Interrupt = 9
	MachineExternal    Interrupt = 11
)

var interruptNames = map[Interrupt]string{
	UserSoftware:       "user software interrupt",
	SupervisorSoftware: "supervisor software interrupt",
	MachineSoftware:    "machine software interrupt",
	UserTimer:          "user timer interrupt",
	SupervisorTimer:    "supervisor timer interrupt",
	MachineTimer:       "machine timer interrupt",
	UserExternal:       "user external interrupt",
	SupervisorExternal: "supervisor external interrupt",
	MachineExternal:    "machine external interrupt",
}

func (i Interrupt) Code() uint        { return uint(i) }
func (i Interrupt) IsInterrupt() bool { return true }

func (i Interrupt) String() string {
	if n, ok := interruptNames[i]; ok {
		return n
	}
	return fmt.Sprintf("interrupt %d", uint8(i))
}

// Defined reports whether i is one of the standard interrupts.
func (i Interrupt) Defined() bool {
	_, ok := interruptNames[i]
	return ok
}

// Privilege returns the level the interrupt source belongs to. The low two
// bits of a standard interrupt code are the privilege level.
func (i Interrupt) Privilege() isa.PrivilegeMode {
	return isa.PrivilegeMode(i & 0x3)
}

// Mask returns the bit of i in mip, mie and mideleg.
func (i Interrupt) Mask() uint64 {
	return 1 << i
}

// Exception is a synchronous exception code.
type Exception uint8

const (
	InstructionAddressMisaligned Exception = 0
	InstructionAccessFault       Exception = 1
	IllegalInstruction           Exception = 2
	Breakpoint                   Exception = 3
	LoadAddressMisaligned        Exception = 4
	LoadAccessFault              Exception = 5
	StoreAMOAddressMisaligned    Exception = 6
	StoreAMOAccessFault          Exception = 7
	EcallFromU                   Exception = 8
	EcallFromS                   Exception = 9
	EcallFromM                   Exception = 11
	InstructionPageFault         Exception = 12
	LoadPageFault                Exception = 13
	StoreAMOPageFault            Exception = 15
)

var exceptionNames = map[Exception]string{
	InstructionAddressMisaligned: "instruction address misaligned",
	InstructionAccessFault:       "instruction access fault",
	IllegalInstruction:           "illegal instruction",
	Breakpoint:                   "breakpoint",
	LoadAddressMisaligned:        "load address misaligned",
	LoadAccessFault:              "load access fault",
	StoreAMOAddressMisaligned:    "store/AMO address misaligned",
	StoreAMOAccessFault:          "store/AMO access fault",
	EcallFromU:                   "environment call from U-mode",
	EcallFromS:                   "environment call from S-mode",
	EcallFromM:                   "environment call from M-mode",
	InstructionPageFault:         "instruction page fault",
	LoadPageFault:                "load page fault",
	StoreAMOPageFault:            "store/AMO page fault",
}

func (e Exception) Code() uint        { return uint(e) }
func (e Exception) IsInterrupt() bool { return false }

func (e Exception) String() string {
	if n, ok := exceptionNames[e]; ok {
		return n
	}
	return fmt.Sprintf("exception %d", uint8(e))
}

// Defined reports whether e is one of the standard exceptions.
func (e Exception) Defined() bool {
	_, ok := exceptionNames[e]
	return ok
}

// EcallFrom returns the environment call exception raised at privilege p.
func EcallFrom(p isa.PrivilegeMode) Exception {
	return EcallFromU + Exception(p)
}

// Interrupts lists the standard interrupts in code order.
func Interrupts() []Interrupt {
	return []Interrupt{
		UserSoftware, SupervisorSoftware, MachineSoftware,
		UserTimer, SupervisorTimer, MachineTimer,
		UserExternal, SupervisorExternal, MachineExternal,
	}
}

// Exceptions lists the standard exceptions in code order.
func Exceptions() []Exception {
	return []Exception{
		InstructionAddressMisaligned, InstructionAccessFault, IllegalInstruction,
		Breakpoint, LoadAddressMisaligned, LoadAccessFault,
		StoreAMOAddressMisaligned, StoreAMOAccessFault,
		EcallFromU, EcallFromS, EcallFromM,
		InstructionPageFault, LoadPageFault, StoreAMOPageFault,
	}
}

// EncodeCause returns the xcause register value for c: the exception code
// with the most significant bit set for interrupts.
func EncodeCause[X Register](c Cause) X {
	v := X(c.Code())
	if c.IsInterrupt() {
		v |= X(1) << (Width[X]() - 1)
	}
	return v
}

// DecodeCause splits an xcause value back into an Interrupt or Exception.
// Reserved and custom codes are reported with ErrUnknownCause.
func DecodeCause[X Register](v X) (Cause, error) {
	top := Width[X]() - 1
	interrupt := v>>top != 0
	code := uint64(v &^ (X(1) << top))

	if interrupt {
		i := Interrupt(code)
		if code > 0xff || !i.Defined() {
			return nil, fmt.Errorf("%w: interrupt code %d", ErrUnknownCause, code)
		}
		return i, nil
	}
	e := Exception(code)
	if code > 0xff || !e.Defined() {
		return nil, fmt.Errorf("%w: exception code %d", ErrUnknownCause, code)
	}
	return e, nil
}

// ParseInterrupt accepts a numeric code or a short name such as "mti" or
// "sei".
func ParseInterrupt(s string) (Interrupt, error) {
	for _, i := range Interrupts() {
		if s == i.Short() {
			return i, nil
		}
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil && Interrupt(n).Defined() {
		return Interrupt(n), nil
	}
	return 0, fmt.Errorf("%w: interrupt %q", ErrUnknownCause, s)
}

// ParseException accepts a numeric exception code.
func ParseException(s string) (Exception, error) {
	if n, err := strconv.ParseUint(s, 0, 8); err == nil && Exception(n).Defined() {
		return Exception(n), nil
	}
	return 0, fmt.Errorf("%w: exception %q", ErrUnknownCause, s)
}

// Short returns the three letter mnemonic of i as used in mip (usi, mti...).
func (i Interrupt) Short() string {
	var kind string
	switch i &^ 0x3 {
	case 0:
		kind = "s"
	case 4:
		kind = "t"
	case 8:
		kind = "e"
	default:
		return fmt.Sprintf("i%d", uint8(i))
	}
	return i.Privilege().Letter() + kind + "i"
}
