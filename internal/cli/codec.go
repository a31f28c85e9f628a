package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/sfx-library/internal/model"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// resolveFormat picks json or yaml from the flag, falling back to the file
// extension.
func resolveFormat(flag, path string) (string, error) {
	switch strings.ToLower(flag) {
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return formatJSON, nil
}

func decodeSounds(data []byte, format string) ([]model.SoundInput, error) {
	var sounds []model.SoundInput
	switch format {
	case formatYAML:
		if err := yaml.Unmarshal(data, &sounds); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &sounds); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	return sounds, nil
}

func encodeSounds(w io.Writer, sounds []model.SoundInput, format string) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sounds); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sounds)
}
