package isa

// mstatus fields. The lower privilege status registers (sstatus, ustatus)
// are restricted views of the same bits.
const (
	StatusUIE  uint64 = 1 << 0
	StatusSIE  uint64 = 1 << 1
	StatusHIE  uint64 = 1 << 2
	StatusMIE  uint64 = 1 << 3
	StatusUPIE uint64 = 1 << 4
	StatusSPIE uint64 = 1 << 5
	StatusHPIE uint64 = 1 << 6
	StatusMPIE uint64 = 1 << 7
	StatusSPP  uint64 = 1 << 8
	StatusHPP  uint64 = 3 << 9
	StatusMPP  uint64 = 3 << 11
	StatusFS   uint64 = 3 << 13
	StatusXS   uint64 = 3 << 15
	StatusMPRV uint64 = 1 << 17
	StatusSUM  uint64 = 1 << 18
	StatusMXR  uint64 = 1 << 19
	StatusTVM  uint64 = 1 << 20
	StatusTW   uint64 = 1 << 21
	StatusTSR  uint64 = 1 << 22
	StatusUXL  uint64 = 3 << 32
	StatusSXL  uint64 = 3 << 34

	StatusSD32 uint64 = 1 << 31
	StatusSD64 uint64 = 1 << 63
)

// mstatus field positions.
const (
	StatusSPPShift = 8
	StatusHPPShift = 9
	StatusMPPShift = 11
	StatusFSShift  = 13
	StatusXSShift  = 15
	StatusUXLShift = 32
	StatusSXLShift = 34
)

// StatusIE returns the xIE bit of mstatus for a privilege level.
func StatusIE(p PrivilegeMode) uint64 { return 1 << p }

// StatusPIE returns the xPIE bit of mstatus for a privilege level.
func StatusPIE(p PrivilegeMode) uint64 { return 1 << (4 + p) }

// FloatingPointState is the encoding of the FS field.
type FloatingPointState uint8

const (
	FSOff     FloatingPointState = 0
	FSInitial FloatingPointState = 1
	FSClean   FloatingPointState = 2
	FSDirty   FloatingPointState = 3
)

// ExtensionState is the encoding of the XS field.
type ExtensionState uint8

const (
	XSAllOff             ExtensionState = 0
	XSNoneDirtyNoneClean ExtensionState = 1
	XSNoneDirtySomeClean ExtensionState = 2
	XSSomeDirty          ExtensionState = 3
)

// PagingMode is the satp MODE field.
type PagingMode uint8

const (
	Bare PagingMode = 0
	Sv32 PagingMode = 1
	Sv39 PagingMode = 8
	Sv48 PagingMode = 9
	Sv57 PagingMode = 10
	Sv64 PagingMode = 11
)

// PTEBit is a flag in a page table entry.
type PTEBit uint8

const (
	PTEValid    PTEBit = 1 << 0
	PTERead     PTEBit = 1 << 1
	PTEWrite    PTEBit = 1 << 2
	PTEExecute  PTEBit = 1 << 3
	PTEUser     PTEBit = 1 << 4
	PTEGlobal   PTEBit = 1 << 5
	PTEAccessed PTEBit = 1 << 6
	PTEDirty    PTEBit = 1 << 7
)

// TvecMode is the MODE field of xtvec.
type TvecMode uint8

const (
	TvecDirect   TvecMode = 0
	TvecVectored TvecMode = 1
)

const (
	TvecModeMask uint64 = 0x3
	TvecBaseMask uint64 = ^TvecModeMask
)
