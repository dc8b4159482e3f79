package csr

// known lists every named CSR with its canonical mnemonic.
var known = []struct {
	addr Address
	name string
}{
	{Ustatus, "ustatus"},
	{Fflags, "fflags"},
	{Frm, "frm"},
	{Fcsr, "fcsr"},
	{Uie, "uie"},
	{Utvec, "utvec"},
	{Uscratch, "uscratch"},
	{Uepc, "uepc"},
	{Ucause, "ucause"},
	{Utval, "utval"},
	{Uip, "uip"},
	{Cycle, "cycle"},
	{Time, "time"},
	{Instret, "instret"},
	{Hpmcounter3, "hpmcounter3"},
	{Hpmcounter4, "hpmcounter4"},
	{Hpmcounter5, "hpmcounter5"},
	{Hpmcounter6, "hpmcounter6"},
	{Hpmcounter7, "hpmcounter7"},
	{Hpmcounter8, "hpmcounter8"},
	{Hpmcounter9, "hpmcounter9"},
	{Hpmcounter10, "hpmcounter10"},
	{Hpmcounter11, "hpmcounter11"},
	{Hpmcounter12, "hpmcounter12"},
	{Hpmcounter13, "hpmcounter13"},
	{Hpmcounter14, "hpmcounter14"},
	{Hpmcounter15, "hpmcounter15"},
	{Hpmcounter16, "hpmcounter16"},
	{Hpmcounter17, "hpmcounter17"},
	{Hpmcounter18, "hpmcounter18"},
	{Hpmcounter19, "hpmcounter19"},
	{Hpmcounter20, "hpmcounter20"},
	{Hpmcounter21, "hpmcounter21"},
	{Hpmcounter22, "hpmcounter22"},
	{Hpmcounter23, "hpmcounter23"},
	{Hpmcounter24, "hpmcounter24"},
	{Hpmcounter25, "hpmcounter25"},
	{Hpmcounter26, "hpmcounter26"},
	{Hpmcounter27, "hpmcounter27"},
	{Hpmcounter28, "hpmcounter28"},
	{Hpmcounter29, "hpmcounter29"},
	{Hpmcounter30, "hpmcounter30"},
	{Hpmcounter31, "hpmcounter31"},
	{Cycleh, "cycleh"},
	{Timeh, "timeh"},
	{Instreth, "instreth"},
	{Hpmcounter3h, "hpmcounter3h"},
	{Hpmcounter4h, "hpmcounter4h"},
	{Hpmcounter5h, "hpmcounter5h"},
	{Hpmcounter6h, "hpmcounter6h"},
	{Hpmcounter7h, "hpmcounter7h"},
	{Hpmcounter8h, "hpmcounter8h"},
	{Hpmcounter9h, "hpmcounter9h"},
	{Hpmcounter10h, "hpmcounter10h"},
	{Hpmcounter11h, "hpmcounter11h"},
	{Hpmcounter12h, "hpmcounter12h"},
	{Hpmcounter13h, "hpmcounter13h"},
	{Hpmcounter14h, "hpmcounter14h"},
	{Hpmcounter15h, "hpmcounter15h"},
	{Hpmcounter16h, "hpmcounter16h"},
	{Hpmcounter17h, "hpmcounter17h"},
	{Hpmcounter18h, "hpmcounter18h"},
	{Hpmcounter19h, "hpmcounter19h"},
	{Hpmcounter20h, "hpmcounter20h"},
	{Hpmcounter21h, "hpmcounter21h"},
	{Hpmcounter22h, "hpmcounter22h"},
	{Hpmcounter23h, "hpmcounter23h"},
	{Hpmcounter24h, "hpmcounter24h"},
	{Hpmcounter25h, "hpmcounter25h"},
	{Hpmcounter26h, "hpmcounter26h"},
	{Hpmcounter27h, "hpmcounter27h"},
	{Hpmcounter28h, "hpmcounter28h"},
	{Hpmcounter29h, "hpmcounter29h"},
	{Hpmcounter30h, "hpmcounter30h"},
	{Hpmcounter31h, "hpmcounter31h"},
	{Sstatus, "sstatus"},
	{Sedeleg, "sedeleg"},
	{Sideleg, "sideleg"},
	{Sie, "sie"},
	{Stvec, "stvec"},
	{Scounteren, "scounteren"},
	{Sscratch, "sscratch"},
	{Sepc, "sepc"},
	{Scause, "scause"},
	{Stval, "stval"},
	{Sip, "sip"},
	{Satp, "satp"},
	{Mvendorid, "mvendorid"},
	{Marchid, "marchid"},
	{Mimpid, "mimpid"},
	{Mhartid, "mhartid"},
	{Mstatus, "mstatus"},
	{Misa, "misa"},
	{Medeleg, "medeleg"},
	{Mideleg, "mideleg"},
	{Mie, "mie"},
	{Mtvec, "mtvec"},
	{Mcounteren, "mcounteren"},
	{Mscratch, "mscratch"},
	{Mepc, "mepc"},
	{Mcause, "mcause"},
	{Mtval, "mtval"},
	{Mip, "mip"},
	{Pmpcfg0, "pmpcfg0"},
	{Pmpcfg1, "pmpcfg1"},
	{Pmpcfg2, "pmpcfg2"},
	{Pmpcfg3, "pmpcfg3"},
	{Pmpaddr0, "pmpaddr0"},
	{Pmpaddr1, "pmpaddr1"},
	{Pmpaddr2, "pmpaddr2"},
	{Pmpaddr3, "pmpaddr3"},
	{Pmpaddr4, "pmpaddr4"},
	{Pmpaddr5, "pmpaddr5"},
	{Pmpaddr6, "pmpaddr6"},
	{Pmpaddr7, "pmpaddr7"},
	{Pmpaddr8, "pmpaddr8"},
	{Pmpaddr9, "pmpaddr9"},
	{Pmpaddr10, "pmpaddr10"},
	{Pmpaddr11, "pmpaddr11"},
	{Pmpaddr12, "pmpaddr12"},
	{Pmpaddr13, "pmpaddr13"},
	{Pmpaddr14, "pmpaddr14"},
	{Pmpaddr15, "pmpaddr15"},
	{Mcycle, "mcycle"},
	{Minstret, "minstret"},
	{Mhpmcounter3, "mhpmcounter3"},
	{Mhpmcounter4, "mhpmcounter4"},
	{Mhpmcounter5, "mhpmcounter5"},
	{Mhpmcounter6, "mhpmcounter6"},
	{Mhpmcounter7, "mhpmcounter7"},
	{Mhpmcounter8, "mhpmcounter8"},
	{Mhpmcounter9, "mhpmcounter9"},
	{Mhpmcounter10, "mhpmcounter10"},
	{Mhpmcounter11, "mhpmcounter11"},
	{Mhpmcounter12, "mhpmcounter12"},
	{Mhpmcounter13, "mhpmcounter13"},
	{Mhpmcounter14, "mhpmcounter14"},
	{Mhpmcounter15, "mhpmcounter15"},
	{Mhpmcounter16, "mhpmcounter16"},
	{Mhpmcounter17, "mhpmcounter17"},
	{Mhpmcounter18, "mhpmcounter18"},
	{Mhpmcounter19, "mhpmcounter19"},
	{Mhpmcounter20, "mhpmcounter20"},
	{Mhpmcounter21, "mhpmcounter21"},
	{Mhpmcounter22, "mhpmcounter22"},
	{Mhpmcounter23, "mhpmcounter23"},
	{Mhpmcounter24, "mhpmcounter24"},
	{Mhpmcounter25, "mhpmcounter25"},
	{Mhpmcounter26, "mhpmcounter26"},
	{Mhpmcounter27, "mhpmcounter27"},
	{Mhpmcounter28, "mhpmcounter28"},
	{Mhpmcounter29, "mhpmcounter29"},
	{Mhpmcounter30, "mhpmcounter30"},
	{Mhpmcounter31, "mhpmcounter31"},
	{Mcycleh, "mcycleh"},
	{Minstreth, "minstreth"},
	{Mhpmcounter3h, "mhpmcounter3h"},
	{Mhpmcounter4h, "mhpmcounter4h"},
	{Mhpmcounter5h, "mhpmcounter5h"},
	{Mhpmcounter6h, "mhpmcounter6h"},
	{Mhpmcounter7h, "mhpmcounter7h"},
	{Mhpmcounter8h, "mhpmcounter8h"},
	{Mhpmcounter9h, "mhpmcounter9h"},
	{Mhpmcounter10h, "mhpmcounter10h"},
	{Mhpmcounter11h, "mhpmcounter11h"},
	{Mhpmcounter12h, "mhpmcounter12h"},
	{Mhpmcounter13h, "mhpmcounter13h"},
	{Mhpmcounter14h, "mhpmcounter14h"},
	{Mhpmcounter15h, "mhpmcounter15h"},
	{Mhpmcounter16h, "mhpmcounter16h"},
	{Mhpmcounter17h, "mhpmcounter17h"},
	{Mhpmcounter18h, "mhpmcounter18h"},
	{Mhpmcounter19h, "mhpmcounter19h"},
	{Mhpmcounter20h, "mhpmcounter20h"},
	{Mhpmcounter21h, "mhpmcounter21h"},
	{Mhpmcounter22h, "mhpmcounter22h"},
	{Mhpmcounter23h, "mhpmcounter23h"},
	{Mhpmcounter24h, "mhpmcounter24h"},
	{Mhpmcounter25h, "mhpmcounter25h"},
	{Mhpmcounter26h, "mhpmcounter26h"},
	{Mhpmcounter27h, "mhpmcounter27h"},
	{Mhpmcounter28h, "mhpmcounter28h"},
	{Mhpmcounter29h, "mhpmcounter29h"},
	{Mhpmcounter30h, "mhpmcounter30h"},
	{Mhpmcounter31h, "mhpmcounter31h"},
	{Mcountinhibit, "mcountinhibit"},
	{Mhpmevent3, "mhpmevent3"},
	{Mhpmevent4, "mhpmevent4"},
	{Mhpmevent5, "mhpmevent5"},
	{Mhpmevent6, "mhpmevent6"},
	{Mhpmevent7, "mhpmevent7"},
	{Mhpmevent8, "mhpmevent8"},
	{Mhpmevent9, "mhpmevent9"},
	{Mhpmevent10, "mhpmevent10"},
	{Mhpmevent11, "mhpmevent11"},
	{Mhpmevent12, "mhpmevent12"},
	{Mhpmevent13, "mhpmevent13"},
	{Mhpmevent14, "mhpmevent14"},
	{Mhpmevent15, "mhpmevent15"},
	{Mhpmevent16, "mhpmevent16"},
	{Mhpmevent17, "mhpmevent17"},
	{Mhpmevent18, "mhpmevent18"},
	{Mhpmevent19, "mhpmevent19"},
	{Mhpmevent20, "mhpmevent20"},
	{Mhpmevent21, "mhpmevent21"},
	{Mhpmevent22, "mhpmevent22"},
	{Mhpmevent23, "mhpmevent23"},
	{Mhpmevent24, "mhpmevent24"},
	{Mhpmevent25, "mhpmevent25"},
	{Mhpmevent26, "mhpmevent26"},
	{Mhpmevent27, "mhpmevent27"},
	{Mhpmevent28, "mhpmevent28"},
	{Mhpmevent29, "mhpmevent29"},
	{Mhpmevent30, "mhpmevent30"},
	{Mhpmevent31, "mhpmevent31"},
	{Tselect, "tselect"},
	{Tdata1, "tdata1"},
	{Tdata2, "tdata2"},
	{Tdata3, "tdata3"},
	{Dcsr, "dcsr"},
	{Dpc, "dpc"},
	{Dscratch0, "dscratch0"},
	{Dscratch1, "dscratch1"},
}
