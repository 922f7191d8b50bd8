package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conftree/go-conftree/interop"
	"github.com/conftree/go-conftree/setting"
)

func loadFile(file string) (*setting.Setting, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	var root *setting.Setting
	switch filepath.Ext(file) {
	case ".toml":
		root, err = interop.FromTOML(data)
	default:
		root, err = interop.FromYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return root, nil
}

func saveFile(file string, root *setting.Setting) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(file) {
	case ".toml":
		data, err = interop.ToTOML(root)
	default:
		data, err = interop.ToYAML(root)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", file, err)
	}
	return nil
}

// resolve looks up path in root; "." names the root itself.
func resolve(root *setting.Setting, path string) (*setting.Setting, error) {
	if path == "." {
		return root, nil
	}
	return root.Lookup(path)
}
