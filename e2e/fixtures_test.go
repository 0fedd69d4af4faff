//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigOption is a function that configures the picker config written for a test
type ConfigOption func(*configOptions)

type configOptions struct {
	placeholder string
	search      bool
	keepOpen    bool
	selected    string
}

// WithPlaceholder sets the label shown while nothing is selected
func WithPlaceholder(text string) ConfigOption {
	return func(opts *configOptions) {
		opts.placeholder = text
	}
}

// WithSearch enables the filter input
func WithSearch() ConfigOption {
	return func(opts *configOptions) {
		opts.search = true
	}
}

// WithKeepOpen keeps the picker running after a selection
func WithKeepOpen() ConfigOption {
	return func(opts *configOptions) {
		opts.keepOpen = true
	}
}

// WithSelected selects a value at start
func WithSelected(value string) ConfigOption {
	return func(opts *configOptions) {
		opts.selected = value
	}
}

// CreateTestWorkspace creates a temporary directory used as $HOME for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFruitConfig writes a TOML picker config with one ungrouped option and
// two groups. Values carry a "fruit:" or "veg:" prefix so the printed result
// can be told apart from the rendered option text.
func (tf *TUITestFramework) WriteFruitConfig(options ...ConfigOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	opts := &configOptions{}
	for _, opt := range options {
		opt(opts)
	}

	var b strings.Builder
	if opts.placeholder != "" {
		fmt.Fprintf(&b, "placeholder = %q\n", opts.placeholder)
	}
	fmt.Fprintf(&b, "search = %t\n", opts.search)
	if opts.selected != "" {
		fmt.Fprintf(&b, "select = %q\n", opts.selected)
	}
	fmt.Fprintf(&b, "\n[ui]\nheight = 8\nwidth = 40\nmouse = false\nkeep_open = %t\n", opts.keepOpen)
	b.WriteString(`
[[options]]
value = "none"
text = "Nothing"

[[groups]]
label = "Fruit"
options = [
  { value = "fruit:apple", text = "Apple" },
  { value = "fruit:banana", text = "Banana" },
  { value = "fruit:cherry", text = "Cherry" },
]

[[groups]]
label = "Vegetables"
options = [
  { value = "veg:kale", text = "Kale" },
]
`)

	path := filepath.Join(tf.workspace, "picker.toml")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}
