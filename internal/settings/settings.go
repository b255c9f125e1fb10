// Package settings loads the persisted settings.json. The value is
// constructed once at process start and passed by value; nothing
// mutates it afterwards.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFile is the settings file name, looked up in the working
// directory.
const DefaultFile = "settings.json"

// Palette maps console roles to hex colors. Cosmetic only.
type Palette struct {
	Header  string `json:"header"`
	Accent  string `json:"accent"`
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
}

// Settings is the recognized configuration surface: whether revision
// hashes appear in rendered reports, plus the color palette.
type Settings struct {
	ShowHashes bool    `json:"show_hashes"`
	Colors     Palette `json:"colors"`
}

func Default() Settings {
	return Settings{
		ShowHashes: true,
		Colors: Palette{
			Header:  "#F780FF",
			Accent:  "#8BE9FD",
			Success: "#50FA7B",
			Warning: "#F1FA8C",
			Error:   "#FF5555",
		},
	}
}

// Load reads path, creating it with defaults when missing. The created
// return tells the caller whether a new file was written so it can
// mention it once on the console.
func Load(path string) (s Settings, created bool, err error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if !os.IsNotExist(readErr) {
			return Default(), false, fmt.Errorf("failed to read settings: %w", readErr)
		}

		s = Default()
		out, marshalErr := json.MarshalIndent(s, "", "    ")
		if marshalErr != nil {
			return s, false, fmt.Errorf("failed to encode default settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(path, append(out, '\n'), 0o644); writeErr != nil {
			return s, false, fmt.Errorf("failed to create settings file: %w", writeErr)
		}
		return s, true, nil
	}

	// Unknown keys are ignored; missing keys keep their defaults.
	s = Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, false, nil
}
