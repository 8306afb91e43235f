// Package music is the static song-title → URL lookup table.
package music

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Library maps lowercased song titles to playable URLs.
type Library struct {
	songs map[string]string
}

// Default returns the built-in table used when no library file is supplied.
func Default() *Library {
	return New(map[string]string{
		"stealth":   "https://www.youtube.com/watch?v=U47Tr9BB_wE",
		"march":     "https://www.youtube.com/watch?v=B-dIcfNUpeg",
		"skyfall":   "https://www.youtube.com/watch?v=DeumyOzKqgI",
		"wavy":      "https://www.youtube.com/watch?v=XO8wew38VM8",
		"let me go": "https://www.youtube.com/watch?v=e6vkFbtZTuY",
	})
}

func New(songs map[string]string) *Library {
	normalized := make(map[string]string, len(songs))
	for title, url := range songs {
		normalized[strings.ToLower(strings.TrimSpace(title))] = url
	}
	return &Library{songs: normalized}
}

// Load reads a JSON object of {"title": "url"} pairs.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read music library: %w", err)
	}

	var songs map[string]string
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("parse music library: %w", err)
	}

	return New(songs), nil
}

// Lookup resolves a title case-insensitively.
func (l *Library) Lookup(title string) (string, bool) {
	url, ok := l.songs[strings.ToLower(strings.TrimSpace(title))]
	return url, ok
}

func (l *Library) Len() int { return len(l.songs) }
