package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var errUsage = errors.New("invalid usage")

type command struct {
	name    string
	summary string
	run     func(args []string, out io.Writer) error
}

func commands() []command {
	return []command{
		{"csr", "describe CSRs by name or address", runCSR},
		{"bundle", "print the trap CSR bundle of a privilege level", runBundle},
		{"route", "resolve the privilege level a trap is destined for", runRoute},
		{"arbitrate", "pick the interrupt to take from a pending mask", runArbitrate},
		{"insn", "classify instruction words", runInsn},
		{"ext", "decode an ISA string into an extension vector", runExt},
		{"hart", "deliver a trap to a configured hart and print its state", runHart},
		{"sweep", "check resolver invariants over their input space", runSweep},
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, `rvfacts - RISC-V privilege facts, trap routing and interrupt arbitration

USAGE:
  rvfacts [-v] <command> [flags] [args]

COMMANDS:
`)
		for _, c := range commands() {
			fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
		}
		fmt.Fprintf(w, `
FLAGS:
  -v             Log debug output to stderr

EXAMPLES:
  rvfacts csr mstatus 0x141 cycleh      Show address, privilege and access of CSRs
  rvfacts bundle s                      Trap CSRs used by supervisor mode
  rvfacts route -mdeleg 0xb109 8        Where an ecall from U-mode ends up
  rvfacts route -interrupt -mdeleg 0x222 sti
  rvfacts arbitrate 0xaa                Highest priority interrupt in mip&mie
  rvfacts insn 0x00000073 0x4501        Quadrant, length and opcode
  rvfacts ext rv64imafdc                Extension letters and misa
  rvfacts hart -config hart.yml -exception 2
  rvfacts sweep                         Exhaustive invariant checks
`)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rvfacts", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log debug output to stderr")
	fs.Usage = usage(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if fs.NArg() < 1 {
		fs.Usage()
		return errUsage
	}

	name := fs.Arg(0)
	for _, c := range commands() {
		if c.name == name {
			return c.run(fs.Args()[1:], out)
		}
	}
	fs.Usage()
	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "rvfacts: %v\n", err)
		}
		os.Exit(1)
	}
}
