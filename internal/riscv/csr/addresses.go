package csr

// Addresses of the standard CSRs.
const (
	// User trap setup and handling, user floating point.
	Ustatus  Address = 0x000
	Fflags   Address = 0x001
	Frm      Address = 0x002
	Fcsr     Address = 0x003
	Uie      Address = 0x004
	Utvec    Address = 0x005
	Uscratch Address = 0x040
	Uepc     Address = 0x041
	Ucause   Address = 0x042
	Utval    Address = 0x043
	Uip      Address = 0x044

	// User counters and timers.
	Cycle         Address = 0xC00
	Time          Address = 0xC01
	Instret       Address = 0xC02
	Hpmcounter3   Address = 0xC03
	Hpmcounter4   Address = 0xC04
	Hpmcounter5   Address = 0xC05
	Hpmcounter6   Address = 0xC06
	Hpmcounter7   Address = 0xC07
	Hpmcounter8   Address = 0xC08
	Hpmcounter9   Address = 0xC09
	Hpmcounter10  Address = 0xC0A
	Hpmcounter11  Address = 0xC0B
	Hpmcounter12  Address = 0xC0C
	Hpmcounter13  Address = 0xC0D
	Hpmcounter14  Address = 0xC0E
	Hpmcounter15  Address = 0xC0F
	Hpmcounter16  Address = 0xC10
	Hpmcounter17  Address = 0xC11
	Hpmcounter18  Address = 0xC12
	Hpmcounter19  Address = 0xC13
	Hpmcounter20  Address = 0xC14
	Hpmcounter21  Address = 0xC15
	Hpmcounter22  Address = 0xC16
	Hpmcounter23  Address = 0xC17
	Hpmcounter24  Address = 0xC18
	Hpmcounter25  Address = 0xC19
	Hpmcounter26  Address = 0xC1A
	Hpmcounter27  Address = 0xC1B
	Hpmcounter28  Address = 0xC1C
	Hpmcounter29  Address = 0xC1D
	Hpmcounter30  Address = 0xC1E
	Hpmcounter31  Address = 0xC1F
	Cycleh        Address = 0xC80
	Timeh         Address = 0xC81
	Instreth      Address = 0xC82
	Hpmcounter3h  Address = 0xC83
	Hpmcounter4h  Address = 0xC84
	Hpmcounter5h  Address = 0xC85
	Hpmcounter6h  Address = 0xC86
	Hpmcounter7h  Address = 0xC87
	Hpmcounter8h  Address = 0xC88
	Hpmcounter9h  Address = 0xC89
	Hpmcounter10h Address = 0xC8A
	Hpmcounter11h Address = 0xC8B
	Hpmcounter12h Address = 0xC8C
	Hpmcounter13h Address = 0xC8D
	Hpmcounter14h Address = 0xC8E
	Hpmcounter15h Address = 0xC8F
	Hpmcounter16h Address = 0xC90
	Hpmcounter17h Address = 0xC91
	Hpmcounter18h Address = 0xC92
	Hpmcounter19h Address = 0xC93
	Hpmcounter20h Address = 0xC94
	Hpmcounter21h Address = 0xC95
	Hpmcounter22h Address = 0xC96
	Hpmcounter23h Address = 0xC97
	Hpmcounter24h Address = 0xC98
	Hpmcounter25h Address = 0xC99
	Hpmcounter26h Address = 0xC9A
	Hpmcounter27h Address = 0xC9B
	Hpmcounter28h Address = 0xC9C
	Hpmcounter29h Address = 0xC9D
	Hpmcounter30h Address = 0xC9E
	Hpmcounter31h Address = 0xC9F

	// Supervisor.
	Sstatus    Address = 0x100
	Sedeleg    Address = 0x102
	Sideleg    Address = 0x103
	Sie        Address = 0x104
	Stvec      Address = 0x105
	Scounteren Address = 0x106
	Sscratch   Address = 0x140
	Sepc       Address = 0x141
	Scause     Address = 0x142
	Stval      Address = 0x143
	Sip        Address = 0x144
	Satp       Address = 0x180

	// Machine information.
	Mvendorid Address = 0xF11
	Marchid   Address = 0xF12
	Mimpid    Address = 0xF13
	Mhartid   Address = 0xF14

	// Machine trap setup and handling.
	Mstatus    Address = 0x300
	Misa       Address = 0x301
	Medeleg    Address = 0x302
	Mideleg    Address = 0x303
	Mie        Address = 0x304
	Mtvec      Address = 0x305
	Mcounteren Address = 0x306
	Mscratch   Address = 0x340
	Mepc       Address = 0x341
	Mcause     Address = 0x342
	Mtval      Address = 0x343
	Mip        Address = 0x344

	// Physical memory protection.
	Pmpcfg0   Address = 0x3A0
	Pmpcfg1   Address = 0x3A1
	Pmpcfg2   Address = 0x3A2
	Pmpcfg3   Address = 0x3A3
	Pmpaddr0  Address = 0x3B0
	Pmpaddr1  Address = 0x3B1
	Pmpaddr2  Address = 0x3B2
	Pmpaddr3  Address = 0x3B3
	Pmpaddr4  Address = 0x3B4
	Pmpaddr5  Address = 0x3B5
	Pmpaddr6  Address = 0x3B6
	Pmpaddr7  Address = 0x3B7
	Pmpaddr8  Address = 0x3B8
	Pmpaddr9  Address = 0x3B9
	Pmpaddr10 Address = 0x3BA
	Pmpaddr11 Address = 0x3BB
	Pmpaddr12 Address = 0x3BC
	Pmpaddr13 Address = 0x3BD
	Pmpaddr14 Address = 0x3BE
	Pmpaddr15 Address = 0x3BF

	// Machine counters, counter setup.
	Mcycle         Address = 0xB00
	Minstret       Address = 0xB02
	Mhpmcounter3   Address = 0xB03
	Mhpmcounter4   Address = 0xB04
	Mhpmcounter5   Address = 0xB05
	Mhpmcounter6   Address = 0xB06
	Mhpmcounter7   Address = 0xB07
	Mhpmcounter8   Address = 0xB08
	Mhpmcounter9   Address = 0xB09
	Mhpmcounter10  Address = 0xB0A
	Mhpmcounter11  Address = 0xB0B
	Mhpmcounter12  Address = 0xB0C
	Mhpmcounter13  Address = 0xB0D
	Mhpmcounter14  Address = 0xB0E
	Mhpmcounter15  Address = 0xB0F
	Mhpmcounter16  Address = 0xB10
	Mhpmcounter17  Address = 0xB11
	Mhpmcounter18  Address = 0xB12
	Mhpmcounter19  Address = 0xB13
	Mhpmcounter20  Address = 0xB14
	Mhpmcounter21  Address = 0xB15
	Mhpmcounter22  Address = 0xB16
	Mhpmcounter23  Address = 0xB17
	Mhpmcounter24  Address = 0xB18
	Mhpmcounter25  Address = 0xB19
	Mhpmcounter26  Address = 0xB1A
	Mhpmcounter27  Address = 0xB1B
	Mhpmcounter28  Address = 0xB1C
	Mhpmcounter29  Address = 0xB1D
	Mhpmcounter30  Address = 0xB1E
	Mhpmcounter31  Address = 0xB1F
	Mcycleh        Address = 0xB80
	Minstreth      Address = 0xB82
	Mhpmcounter3h  Address = 0xB83
	Mhpmcounter4h  Address = 0xB84
	Mhpmcounter5h  Address = 0xB85
	Mhpmcounter6h  Address = 0xB86
	Mhpmcounter7h  Address = 0xB87
	Mhpmcounter8h  Address = 0xB88
	Mhpmcounter9h  Address = 0xB89
	Mhpmcounter10h Address = 0xB8A
	Mhpmcounter11h Address = 0xB8B
	Mhpmcounter12h Address = 0xB8C
	Mhpmcounter13h Address = 0xB8D
	Mhpmcounter14h Address = 0xB8E
	Mhpmcounter15h Address = 0xB8F
	Mhpmcounter16h Address = 0xB90
	Mhpmcounter17h Address = 0xB91
	Mhpmcounter18h Address = 0xB92
	Mhpmcounter19h Address = 0xB93
	Mhpmcounter20h Address = 0xB94
	Mhpmcounter21h Address = 0xB95
	Mhpmcounter22h Address = 0xB96
	Mhpmcounter23h Address = 0xB97
	Mhpmcounter24h Address = 0xB98
	Mhpmcounter25h Address = 0xB99
	Mhpmcounter26h Address = 0xB9A
	Mhpmcounter27h Address = 0xB9B
	Mhpmcounter28h Address = 0xB9C
	Mhpmcounter29h Address = 0xB9D
	Mhpmcounter30h Address = 0xB9E
	Mhpmcounter31h Address = 0xB9F
	Mcountinhibit  Address = 0x320
	Mhpmevent3     Address = 0x323
	Mhpmevent4     Address = 0x324
	Mhpmevent5     Address = 0x325
	Mhpmevent6     Address = 0x326
	Mhpmevent7     Address = 0x327
	Mhpmevent8     Address = 0x328
	Mhpmevent9     Address = 0x329
	Mhpmevent10    Address = 0x32A
	Mhpmevent11    Address = 0x32B
	Mhpmevent12    Address = 0x32C
	Mhpmevent13    Address = 0x32D
	Mhpmevent14    Address = 0x32E
	Mhpmevent15    Address = 0x32F
	Mhpmevent16    Address = 0x330
	Mhpmevent17    Address = 0x331
	Mhpmevent18    Address = 0x332
	Mhpmevent19    Address = 0x333
	Mhpmevent20    Address = 0x334
	Mhpmevent21    Address = 0x335
	Mhpmevent22    Address = 0x336
	Mhpmevent23    Address = 0x337
	Mhpmevent24    Address = 0x338
	Mhpmevent25    Address = 0x339
	Mhpmevent26    Address = 0x33A
	Mhpmevent27    Address = 0x33B
	Mhpmevent28    Address = 0x33C
	Mhpmevent29    Address = 0x33D
	Mhpmevent30    Address = 0x33E
	Mhpmevent31    Address = 0x33F

	// Debug and trace.
	Tselect   Address = 0x7A0
	Tdata1    Address = 0x7A1
	Tdata2    Address = 0x7A2
	Tdata3    Address = 0x7A3
	Dcsr      Address = 0x7B0
	Dpc       Address = 0x7B1
	Dscratch0 Address = 0x7B2
	Dscratch1 Address = 0x7B3
)
