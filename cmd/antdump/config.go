package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/antlink/internal/transport"
)

type dumpConfig struct {
	Port        string
	Baud        int
	Input       string
	Probe       bool
	ReadTimeout time.Duration
	LogLevel    string
}

type fileConfig struct {
	Port        string `toml:"port"`
	Baud        int    `toml:"baud"`
	Input       string `toml:"input"`
	Probe       bool   `toml:"probe"`
	ReadTimeout string `toml:"read_timeout"`
	LogLevel    string `toml:"log_level"`
}

func defaultDumpConfig() dumpConfig {
	return dumpConfig{
		Baud:        transport.DefaultBaudRate,
		ReadTimeout: 300 * time.Millisecond,
	}
}

func loadDumpConfig(path string) (dumpConfig, error) {
	cfg := defaultDumpConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load antdump config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return dumpConfig{}, fmt.Errorf("load antdump config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("port") {
		cfg.Port = strings.TrimSpace(raw.Port)
	}
	if meta.IsDefined("baud") {
		cfg.Baud = raw.Baud
	}
	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("probe") {
		cfg.Probe = raw.Probe
	}
	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return dumpConfig{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.ReadTimeout = d
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}

func (c dumpConfig) validate() error {
	if c.Port == "" && c.Input == "" {
		return fmt.Errorf("one of port or input is required")
	}
	if c.Port != "" && c.Input != "" {
		return fmt.Errorf("port and input are mutually exclusive")
	}
	if c.Input != "" && c.Probe {
		return fmt.Errorf("probe requires a serial port")
	}
	if c.Port != "" && c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate: %d", c.Baud)
	}
	return nil
}

// parseCapture reads a hex dump. Whitespace, ':' and '-' separators are
// ignored, as is anything after '#' on a line.
func parseCapture(text string) ([]byte, error) {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			field = strings.TrimPrefix(strings.ToLower(field), "0x")
			field = strings.NewReplacer(":", "", "-", "").Replace(field)
			sb.WriteString(field)
		}
	}
	out, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("parse capture: %w", err)
	}
	return out, nil
}
