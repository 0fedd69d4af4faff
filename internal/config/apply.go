package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"combo/internal/combo"
	"combo/internal/combo/services/registry"
	"combo/internal/domain"
)

// Apply populates c with the configured options: ungrouped options first,
// then each group in order. The configured initial selection is committed
// last so it wins over per-option flags.
func Apply(cfg *Config, c *combo.Combo) {
	for _, opt := range cfg.Options {
		addEntry(c, opt)
	}
	for _, g := range cfg.Groups {
		c.Group(g.Label)
		for _, opt := range g.Options {
			addEntry(c, opt)
		}
	}
	if cfg.Select != "" {
		c.Select(cfg.Select)
	}
}

func addEntry(c *combo.Combo, opt OptionEntry) {
	value, text := domain.Key(opt.Value), opt.Text
	if value == "" {
		value = text
	}
	if text == "" {
		text = value
	}
	if value == "" {
		return
	}

	if opt.Selected {
		c.Add(value, text, registry.Selected())
		return
	}
	c.Add(value, text)
}

// ParseLines reads options one per line: "value<TAB>text", or just "text"
// which doubles as the value. Blank lines are skipped.
func ParseLines(r io.Reader) ([]OptionEntry, error) {
	var entries []OptionEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if value, text, ok := strings.Cut(line, "\t"); ok {
			entries = append(entries, OptionEntry{Value: value, Text: text})
			continue
		}
		entries = append(entries, OptionEntry{Value: line, Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return entries, nil
}
