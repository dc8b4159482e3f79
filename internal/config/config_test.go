package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tinyrange/rvfacts/internal/riscv/isa"
)

const linuxHart = `
isa: rv64imafdcsu
xlen: 64
privilege: supervisor
mideleg: 0x222
medeleg: "0xb1_09"
mie: 0b1010101010
stvec: 0x80200000
mtvec: 2147483648
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(linuxHart))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Mideleg != 0x222 {
		t.Errorf("mideleg = %#x", uint64(cfg.Mideleg))
	}
	if cfg.Medeleg != 0xb109 {
		t.Errorf("medeleg = %#x", uint64(cfg.Medeleg))
	}
	if cfg.Mie != 0b1010101010 {
		t.Errorf("mie = %#x", uint64(cfg.Mie))
	}
	if cfg.Stvec != 0x80200000 || cfg.Mtvec != 0x80000000 {
		t.Errorf("tvec = %#x/%#x", uint64(cfg.Stvec), uint64(cfg.Mtvec))
	}
	p, err := cfg.PrivilegeMode()
	if err != nil || p != isa.Supervisor {
		t.Errorf("privilege = %v, %v", p, err)
	}
	if !cfg.Extensions().Has(isa.ExtS) {
		t.Errorf("expected S in %s", cfg.Extensions())
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("mideleg: 0x20\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.XLEN != 64 || cfg.ISA != "IMAFDCSU" || cfg.Privilege != "machine" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad register", "mideleg: zap\n"},
		{"register is a list", "mideleg: [1, 2]\n"},
		{"bad xlen", "xlen: 16\n"},
		{"rv128", "xlen: 128\n"},
		{"bad privilege", "privilege: root\n"},
		{"hypervisor", "privilege: h\n"},
		{"supervisor without S", "isa: imacu\nprivilege: s\n"},
		{"user without U", "isa: imac\nprivilege: u\n"},
		{"S without U", "isa: imacs\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Fatalf("expected error for %q", tt.doc)
			}
		})
	}

	_, err := Parse([]byte("xlen: 16\n"))
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, isa.ErrInvalidXlen) {
		t.Fatalf("expected wrapped ErrInvalidXlen, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvISA, "IMAC")
	t.Setenv(EnvXLEN, "32")
	t.Setenv(EnvPrivilege, "m")

	cfg, err := Parse([]byte(linuxHart))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ISA != "IMAC" || cfg.XLEN != 32 || cfg.Privilege != "m" {
		t.Fatalf("environment not applied: %+v", cfg)
	}
}

func TestApplyEnvAfterEarlierRead(t *testing.T) {
	if _, err := Parse([]byte(linuxHart)); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	t.Setenv(EnvPrivilege, "user")
	cfg, err := Parse([]byte(linuxHart))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Privilege != "user" {
		t.Fatalf("privilege = %q, want user", cfg.Privilege)
	}
}

func TestApplyEnvBadXlen(t *testing.T) {
	t.Setenv(EnvXLEN, "sixty-four")

	_, err := Parse([]byte(linuxHart))
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, isa.ErrInvalidXlen) {
		t.Fatalf("expected ErrInvalidConfig for bad %s, got %v", EnvXLEN, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hart.yml")
	if err := os.WriteFile(path, []byte(linuxHart), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mideleg != 0x222 {
		t.Fatalf("mideleg = %#x", uint64(cfg.Mideleg))
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(linuxHart))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "0x222") {
		t.Fatalf("expected hex register in output:\n%s", data)
	}
	if strings.Contains(string(data), "sepc") {
		t.Fatalf("zero registers should be omitted:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal): %v", err)
	}
	if back != cfg {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}
