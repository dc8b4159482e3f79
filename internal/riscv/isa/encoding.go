package isa

import "fmt"

// Quadrant is the value of the low two bits of an instruction. Quadrants 0-2
// hold 16-bit compressed instructions; Uncompressed marks 32-bit and longer.
type Quadrant uint8

const (
	Q0           Quadrant = 0b00
	Q1           Quadrant = 0b01
	Q2           Quadrant = 0b10
	Uncompressed Quadrant = 0b11
)

func (q Quadrant) String() string {
	switch q {
	case Q0:
		return "Q0"
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Uncompressed:
		return "uncompressed"
	default:
		return fmt.Sprintf("Quadrant(%d)", uint8(q))
	}
}

// QuadrantOf returns the quadrant of an encoded instruction.
func QuadrantOf(insn uint32) Quadrant {
	return Quadrant(insn & 0x3)
}

// IsCompressed reports whether insn is a 16-bit compressed instruction.
func IsCompressed(insn uint32) bool {
	return insn&0x3 != 0x3
}

// InstructionLength returns the length of insn in bytes: 2 for compressed
// instructions and 4 otherwise. The 48, 64 and 80 bit encodings are not
// recognised and also report 4, so callers must not treat 4 as a maximum.
func InstructionLength(insn uint32) int {
	if IsCompressed(insn) {
		return 2
	}
	return 4
}

// MajorOpcode is bits 2-6 of an uncompressed instruction.
type MajorOpcode uint8

const (
	OpLoad      MajorOpcode = 0b00000
	OpLoadFP    MajorOpcode = 0b00001
	OpCustom0   MajorOpcode = 0b00010
	OpMiscMem   MajorOpcode = 0b00011
	OpOpImm     MajorOpcode = 0b00100
	OpAuipc     MajorOpcode = 0b00101
	OpOpImm32   MajorOpcode = 0b00110
	OpLong48a   MajorOpcode = 0b00111
	OpStore     MajorOpcode = 0b01000
	OpStoreFP   MajorOpcode = 0b01001
	OpCustom1   MajorOpcode = 0b01010
	OpAmo       MajorOpcode = 0b01011
	OpOp        MajorOpcode = 0b01100
	OpLui       MajorOpcode = 0b01101
	OpOp32      MajorOpcode = 0b01110
	OpLong64    MajorOpcode = 0b01111
	OpMadd      MajorOpcode = 0b10000
	OpMsub      MajorOpcode = 0b10001
	OpNmsub     MajorOpcode = 0b10010
	OpNmadd     MajorOpcode = 0b10011
	OpOpFP      MajorOpcode = 0b10100
	OpReserved0 MajorOpcode = 0b10101
	OpCustom2   MajorOpcode = 0b10110
	OpLong48b   MajorOpcode = 0b10111
	OpBranch    MajorOpcode = 0b11000
	OpJalr      MajorOpcode = 0b11001
	OpReserved1 MajorOpcode = 0b11010
	OpJal       MajorOpcode = 0b11011
	OpSystem    MajorOpcode = 0b11100
	OpReserved2 MajorOpcode = 0b11101
	OpCustom3   MajorOpcode = 0b11110
	OpLong80    MajorOpcode = 0b11111
)

var majorOpcodeNames = [32]string{
	"LOAD", "LOAD-FP", "custom-0", "MISC-MEM", "OP-IMM", "AUIPC", "OP-IMM-32", "48b",
	"STORE", "STORE-FP", "custom-1", "AMO", "OP", "LUI", "OP-32", "64b",
	"MADD", "MSUB", "NMSUB", "NMADD", "OP-FP", "reserved", "custom-2", "48b",
	"BRANCH", "JALR", "reserved", "JAL", "SYSTEM", "reserved", "custom-3", "80b",
}

func (op MajorOpcode) String() string {
	if int(op) < len(majorOpcodeNames) {
		return majorOpcodeNames[op]
	}
	return fmt.Sprintf("MajorOpcode(%d)", uint8(op))
}

// MajorOpcodeOf returns the major opcode of an uncompressed instruction. The
// second result is false for compressed instructions, which have no major
// opcode field.
func MajorOpcodeOf(insn uint32) (MajorOpcode, bool) {
	if IsCompressed(insn) {
		return 0, false
	}
	return MajorOpcode((insn >> 2) & 0x1f), true
}

// Funct3 returns bits 12-14 of an uncompressed instruction.
func Funct3(insn uint32) uint32 { return (insn >> 12) & 0x7 }

// Funct7 returns bits 25-31 of an uncompressed instruction.
func Funct7(insn uint32) uint32 { return insn >> 25 }
