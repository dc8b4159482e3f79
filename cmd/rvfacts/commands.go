package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/tinyrange/rvfacts/internal/config"
	"github.com/tinyrange/rvfacts/internal/riscv/csr"
	"github.com/tinyrange/rvfacts/internal/riscv/hart"
	"github.com/tinyrange/rvfacts/internal/riscv/isa"
	"github.com/tinyrange/rvfacts/internal/riscv/trap"
)

func newFlagSet(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "USAGE:\n  rvfacts %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return v, nil
}

func runCSR(args []string, out io.Writer) error {
	fs := newFlagSet("csr", "<name|address>...")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	t := newTable("NAME", "ADDRESS", "PRIVILEGE", "ACCESS")
	for _, arg := range fs.Args() {
		a, err := csr.ParseAddress(arg)
		if err != nil {
			return err
		}
		access := "read/write"
		if csr.IsReadOnly(a) {
			access = "read-only"
		}
		t.add(csr.Name(a), fmt.Sprintf("0x%03x", uint16(a)), csr.RequiredPrivilege(a).String(), access)
	}
	return t.write(out)
}

func runBundle(args []string, out io.Writer) error {
	fs := newFlagSet("bundle", "<u|s|h|m>")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	p, err := isa.ParsePrivilege(fs.Arg(0))
	if err != nil {
		return err
	}

	b := csr.BundleFor(p)
	if !b.Valid() {
		fmt.Fprintf(out, "%s mode has no trap CSRs\n", p)
		return nil
	}

	t := newTable("ROLE", "CSR", "ADDRESS")
	roles := []string{"status", "cause", "epc", "tvec", "tval", "ip", "ie", "ideleg", "edeleg"}
	for i, a := range b.Addresses() {
		if !a.Valid() {
			t.add(roles[i], "-", "-")
			continue
		}
		t.add(roles[i], csr.Name(a), fmt.Sprintf("0x%03x", uint16(a)))
	}
	return t.write(out)
}

func parseCause(s string, interrupt bool) (trap.Cause, error) {
	if interrupt {
		return trap.ParseInterrupt(s)
	}
	return trap.ParseException(s)
}

func runRoute(args []string, out io.Writer) error {
	fs := newFlagSet("route", "<cause>")
	isaFlag := fs.String("isa", "IMAFDCSU", "ISA string describing the implemented extensions")
	mdeleg := fs.String("mdeleg", "0", "machine delegation register (medeleg or mideleg)")
	sdeleg := fs.String("sdeleg", "0", "supervisor delegation register (sedeleg or sideleg)")
	interrupt := fs.Bool("interrupt", false, "cause is an interrupt (name such as mti, or code)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	c, err := parseCause(fs.Arg(0), *interrupt)
	if err != nil {
		return err
	}
	m, err := parseUint(*mdeleg, 64)
	if err != nil {
		return err
	}
	s, err := parseUint(*sdeleg, 64)
	if err != nil {
		return err
	}

	ext := isa.ParseExtensions(*isaFlag)
	dest := trap.DestinedPrivilege(c.Code(), m, s, ext)
	fmt.Fprintf(out, "%s (code %d) -> %s\n", c, c.Code(), dest)
	return nil
}

func runArbitrate(args []string, out io.Writer) error {
	fs := newFlagSet("arbitrate", "<pending-mask>")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	pending, err := parseUint(fs.Arg(0), 64)
	if err != nil {
		return err
	}

	i, ok := trap.HighestPriorityInterrupt(pending)
	if !ok {
		fmt.Fprintln(out, "none")
		return nil
	}
	fmt.Fprintf(out, "%s (%s, code %d)\n", i.Short(), i, i.Code())
	return nil
}

func runInsn(args []string, out io.Writer) error {
	fs := newFlagSet("insn", "<word>...")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	t := newTable("WORD", "QUADRANT", "LENGTH", "OPCODE")
	for _, arg := range fs.Args() {
		v, err := parseUint(arg, 32)
		if err != nil {
			return err
		}
		insn := uint32(v)
		opcode := "-"
		if op, ok := isa.MajorOpcodeOf(insn); ok {
			opcode = op.String()
		}
		t.add(fmt.Sprintf("0x%08x", insn), isa.QuadrantOf(insn).String(), strconv.Itoa(isa.InstructionLength(insn)), opcode)
	}
	return t.write(out)
}

func runExt(args []string, out io.Writer) error {
	fs := newFlagSet("ext", "<isa>")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	v := isa.ParseExtensions(fs.Arg(0))
	fmt.Fprintf(out, "extensions: %s\n", v)
	fmt.Fprintf(out, "misa (rv32): %#x\n", v.Misa(isa.XL32))
	fmt.Fprintf(out, "misa (rv64): %#x\n", v.Misa(isa.XL64))
	return nil
}

func runHart(args []string, out io.Writer) error {
	fs := newFlagSet("hart", "")
	configFile := fs.String("config", "", "hart configuration file (YAML); defaults apply when empty")
	interrupt := fs.String("interrupt", "", "raise this interrupt and take it if enabled")
	exception := fs.String("exception", "", "raise this exception")
	tval := fs.String("tval", "0", "trap value recorded with the exception")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *interrupt != "" && *exception != "" {
		return fmt.Errorf("%w: -interrupt and -exception are exclusive", errUsage)
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	} else if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	tv, err := parseUint(*tval, 64)
	if err != nil {
		return err
	}

	if cfg.XLEN == 32 {
		return deliver[uint32](cfg, *interrupt, *exception, tv, out)
	}
	return deliver[uint64](cfg, *interrupt, *exception, tv, out)
}

func deliver[X trap.Register](cfg config.Hart, interrupt, exception string, tval uint64, out io.Writer) error {
	h, err := hart.New[X](cfg)
	if err != nil {
		return err
	}

	switch {
	case interrupt != "":
		i, err := trap.ParseInterrupt(interrupt)
		if err != nil {
			return err
		}
		h.SetPending(i, true)
		taken, dest, ok := h.TakeInterrupt()
		if !ok {
			fmt.Fprintf(out, "# %s pending but not taken\n", i)
		} else {
			fmt.Fprintf(out, "# took %s in %s mode\n", taken, dest)
		}
	case exception != "":
		e, err := trap.ParseException(exception)
		if err != nil {
			return err
		}
		dest := h.Trap(e, X(tval))
		fmt.Fprintf(out, "# took %s in %s mode\n", e, dest)
	}

	data, err := h.Snapshot().Marshal()
	if err != nil {
		return fmt.Errorf("marshal hart state: %w", err)
	}
	_, err = out.Write(data)
	return err
}
