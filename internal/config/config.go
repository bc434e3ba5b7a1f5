// Package config resolves the immutable session configuration from CLI
// flags, the environment, and an optional sift.toml defaults file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is built once at startup and passed through traversal, runner
// and resolver. It never changes during a session.
type Config struct {
	TestPath string // root of the fixture tree, absolute
	Color    bool   // decorate report output
	Editor   string // editor command for the 'e' resolution
}

type fileConfig struct {
	Editor editorSection `toml:"editor"`
	Output outputSection `toml:"output"`
}

type editorSection struct {
	Command string `toml:"command"`
}

type outputSection struct {
	Color string `toml:"color"` // auto|on|off
}

// Resolve builds the session Config. Precedence for the editor command:
// --editor flag, then $EDITOR, then sift.toml. Color: --no-color forces
// off; otherwise sift.toml may pin on/off; "auto" follows stdoutIsTTY.
func Resolve(testPath string, noColor bool, editorFlag string, stdoutIsTTY bool) (Config, error) {
	abs, err := filepath.Abs(testPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve test path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("test path does not exist: %s", testPath)
		}
		return Config{}, fmt.Errorf("failed to stat test path: %w", err)
	}
	if !info.IsDir() {
		return Config{}, fmt.Errorf("test path is not a directory: %s", testPath)
	}

	var defaults fileConfig
	if path, ok, err := findSiftToml(abs); err != nil {
		return Config{}, err
	} else if ok {
		if _, err := toml.DecodeFile(path, &defaults); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	}

	editorCmd := editorFlag
	if editorCmd == "" {
		editorCmd = os.Getenv("EDITOR")
	}
	if editorCmd == "" {
		editorCmd = defaults.Editor.Command
	}

	color := stdoutIsTTY
	switch defaults.Output.Color {
	case "on":
		color = true
	case "off":
		color = false
	case "", "auto":
		// keep terminal detection
	default:
		return Config{}, fmt.Errorf("sift.toml: unknown [output].color value %q", defaults.Output.Color)
	}
	if noColor {
		color = false
	}

	return Config{
		TestPath: abs,
		Color:    color,
		Editor:   editorCmd,
	}, nil
}

// findSiftToml walks up from startDir looking for a sift.toml.
func findSiftToml(startDir string) (string, bool, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, "sift.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
