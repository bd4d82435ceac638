package marvel

import (
	"encoding/json"
	"fmt"
)

// Character is the compact projection of an upstream character record.
type Character struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Modified    string `json:"modified"`
	ResourceURI string `json:"resourceURI"`
}

// CharacterInfo is the detail projection served for a single character.
type CharacterInfo struct {
	ImagePath   string `json:"imagePath"`
	Description string `json:"description"`
}

// Comic is the compact projection of an upstream comic record.
type Comic struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Modified    string    `json:"modified"`
	ResourceURI string    `json:"resourceUri"`
	Thumbnail   Thumbnail `json:"thumbnail"`
}

// Thumbnail is the upstream image reference.
type Thumbnail struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// URL joins path and extension into a fetchable image URL.
func (t Thumbnail) URL() string {
	if t.Path == "" {
		return ""
	}
	return t.Path + "." + t.Extension
}

// envelope is the provider's response wrapper; everything of interest lives
// under data.results.
type envelope struct {
	Data struct {
		Results []json.RawMessage `json:"results"`
	} `json:"data"`
}

func decodeResults(body []byte) ([]json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("marvel: decode response envelope: %w", err)
	}
	return env.Data.Results, nil
}

func decodeCharacters(body []byte) ([]Character, error) {
	results, err := decodeResults(body)
	if err != nil {
		return nil, err
	}
	characters := make([]Character, 0, len(results))
	for _, raw := range results {
		var c Character
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("marvel: decode character: %w", err)
		}
		characters = append(characters, c)
	}
	return characters, nil
}

func decodeCharacterInfos(body []byte) ([]CharacterInfo, error) {
	results, err := decodeResults(body)
	if err != nil {
		return nil, err
	}
	infos := make([]CharacterInfo, 0, len(results))
	for _, raw := range results {
		var record struct {
			Description string    `json:"description"`
			Thumbnail   Thumbnail `json:"thumbnail"`
		}
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("marvel: decode character info: %w", err)
		}
		infos = append(infos, CharacterInfo{
			ImagePath:   record.Thumbnail.URL(),
			Description: record.Description,
		})
	}
	return infos, nil
}

func decodeComics(body []byte) ([]Comic, error) {
	results, err := decodeResults(body)
	if err != nil {
		return nil, err
	}
	comics := make([]Comic, 0, len(results))
	for _, raw := range results {
		var c Comic
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("marvel: decode comic: %w", err)
		}
		comics = append(comics, c)
	}
	return comics, nil
}
