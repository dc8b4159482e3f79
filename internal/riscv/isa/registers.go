package isa

import "fmt"

// NumRegs is the number of integer registers.
const NumRegs = 32

var abiNames = [NumRegs]string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

// RegName returns the ABI name of an integer register, or its xN name when
// flat is set. Out-of-range numbers produce a diagnostic string.
func RegName(reg uint, flat bool) string {
	if reg >= NumRegs {
		return fmt.Sprintf("(invalid register #%d)", reg)
	}
	if flat {
		return fmt.Sprintf("x%d", reg)
	}
	return abiNames[reg]
}
