// Package config loads hart descriptions: the ISA string, register width,
// starting privilege and initial trap CSR contents.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/rvfacts/internal/riscv/isa"
)

// Environment variables that override values from a config file.
const (
	EnvISA       = "RVFACTS_ISA"
	EnvXLEN      = "RVFACTS_XLEN"
	EnvPrivilege = "RVFACTS_PRIVILEGE"
)

// maxConfigSize bounds how much of a config file is read.
const maxConfigSize = 1024 * 1024

var ErrInvalidConfig = errors.New("invalid hart config")

// Reg is a register value. In YAML it may be written as an integer in any
// base (0x222, 0b101, 546) or as a quoted string of the same.
type Reg uint64

func (r *Reg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a register value", value.Line)
	}
	s := strings.ReplaceAll(value.Value, "_", "")
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return fmt.Errorf("line %d: parse register value %q: %w", value.Line, value.Value, err)
	}
	*r = Reg(n)
	return nil
}

func (r Reg) MarshalYAML() (any, error) {
	return fmt.Sprintf("%#x", uint64(r)), nil
}

// Hart describes one hart.
type Hart struct {
	ISA       string `yaml:"isa"`
	XLEN      int    `yaml:"xlen"`
	Privilege string `yaml:"privilege"`
	HartID    Reg    `yaml:"hartid,omitempty"`
	PC        Reg    `yaml:"pc,omitempty"`

	Mstatus Reg `yaml:"mstatus,omitempty"`
	Medeleg Reg `yaml:"medeleg,omitempty"`
	Mideleg Reg `yaml:"mideleg,omitempty"`
	Mie     Reg `yaml:"mie,omitempty"`
	Mip     Reg `yaml:"mip,omitempty"`
	Mtvec   Reg `yaml:"mtvec,omitempty"`
	Mepc    Reg `yaml:"mepc,omitempty"`
	Mcause  Reg `yaml:"mcause,omitempty"`
	Mtval   Reg `yaml:"mtval,omitempty"`

	Sedeleg Reg `yaml:"sedeleg,omitempty"`
	Sideleg Reg `yaml:"sideleg,omitempty"`
	Stvec   Reg `yaml:"stvec,omitempty"`
	Sepc    Reg `yaml:"sepc,omitempty"`
	Scause  Reg `yaml:"scause,omitempty"`
	Stval   Reg `yaml:"stval,omitempty"`

	Utvec  Reg `yaml:"utvec,omitempty"`
	Uepc   Reg `yaml:"uepc,omitempty"`
	Ucause Reg `yaml:"ucause,omitempty"`
	Utval  Reg `yaml:"utval,omitempty"`
}

// Default returns an RV64GC hart starting in machine mode with nothing
// delegated.
func Default() Hart {
	return Hart{
		ISA:       "IMAFDCSU",
		XLEN:      64,
		Privilege: "machine",
	}
}

// Parse decodes a YAML hart description on top of Default, then applies
// environment overrides and validates the result.
func Parse(data []byte) (Hart, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Hart{}, fmt.Errorf("parse hart config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Hart{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Hart{}, err
	}
	return cfg, nil
}

// Load reads a hart description from path.
func Load(path string) (Hart, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Hart{}, fmt.Errorf("stat hart config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Hart{}, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrInvalidConfig, path, info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Hart{}, fmt.Errorf("read hart config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Hart{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("loaded hart config", "path", path, "isa", cfg.ISA, "xlen", cfg.XLEN, "privilege", cfg.Privilege)
	return cfg, nil
}

// ApplyEnv replaces fields with the values of the RVFACTS_* environment
// variables that are set.
func (h *Hart) ApplyEnv() error {
	// env caches the environment on first use; pick up later changes.
	env.Load()

	h.ISA = env.Str(EnvISA, h.ISA)
	h.Privilege = env.Str(EnvPrivilege, h.Privilege)
	if s := env.Str(EnvXLEN, ""); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvXLEN, s, isa.ErrInvalidXlen)
		}
		h.XLEN = n
	}
	return nil
}

// Extensions returns the extension vector described by ISA.
func (h Hart) Extensions() isa.Extensions {
	return isa.ParseExtensions(h.ISA)
}

// Xlen returns the register width mode.
func (h Hart) Xlen() (isa.XlenMode, error) {
	return isa.XlenForBits(h.XLEN)
}

// PrivilegeMode returns the starting privilege level.
func (h Hart) PrivilegeMode() (isa.PrivilegeMode, error) {
	return isa.ParsePrivilege(h.Privilege)
}

// Validate checks that the description names a hart that can exist.
func (h Hart) Validate() error {
	x, err := h.Xlen()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if x == isa.XL128 {
		return fmt.Errorf("%w: 128-bit harts are not supported", ErrInvalidConfig)
	}

	p, err := h.PrivilegeMode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	ext := h.Extensions()
	switch p {
	case isa.Hypervisor:
		return fmt.Errorf("%w: hypervisor mode is not implemented", ErrInvalidConfig)
	case isa.Supervisor:
		if !ext.Has(isa.ExtS) {
			return fmt.Errorf("%w: supervisor privilege without S in %q", ErrInvalidConfig, h.ISA)
		}
	case isa.User:
		if !ext.Has(isa.ExtU) {
			return fmt.Errorf("%w: user privilege without U in %q", ErrInvalidConfig, h.ISA)
		}
	}
	if ext.Has(isa.ExtS) && !ext.Has(isa.ExtU) {
		return fmt.Errorf("%w: S mode requires U mode in %q", ErrInvalidConfig, h.ISA)
	}
	return nil
}

// Marshal encodes h as YAML.
func (h Hart) Marshal() ([]byte, error) {
	return yaml.Marshal(h)
}
