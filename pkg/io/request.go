package io

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/kolam"
)

// RequestFile is a synthesis request loaded from TOML. Zero values mean
// "not set" so callers can layer flags on top.
type RequestFile struct {
	kolam.Request

	// Prompt is free text analyzed into guidance hints.
	Prompt string `toml:"prompt,omitempty"`

	// Guidance is a raw hint record, validated before use.
	Guidance map[string]any `toml:"guidance,omitempty"`

	Render RenderSection `toml:"render,omitempty"`
}

// RenderSection holds optional output settings.
type RenderSection struct {
	Formats []string `toml:"formats,omitempty"`
	Style   string   `toml:"style,omitempty"`
	VizType string   `toml:"viz,omitempty"`
	Output  string   `toml:"output,omitempty"`
}

// LoadRequestFile decodes a TOML request file. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func LoadRequestFile(path string) (RequestFile, error) {
	if err := kerrors.ValidatePath(path); err != nil {
		return RequestFile{}, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return RequestFile{}, kerrors.Wrap(kerrors.ErrCodeFileNotFound, err, "request file %s not found", path)
	}

	var rf RequestFile
	meta, err := toml.DecodeFile(path, &rf)
	if err != nil {
		return RequestFile{}, kerrors.Wrap(kerrors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			// Anything under [guidance] is free-form.
			if len(k) > 0 && k[0] == "guidance" {
				continue
			}
			keys = append(keys, k.String())
		}
		if len(keys) > 0 {
			sort.Strings(keys)
			return RequestFile{}, kerrors.New(kerrors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	return rf, nil
}

// WriteRequestFile encodes rf as TOML at path.
func WriteRequestFile(rf RequestFile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(rf); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
