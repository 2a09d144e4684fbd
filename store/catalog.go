// Package store reads the optional on-disk configuration: a catalog file
// that replaces the built-in program when present.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"taquilla-cli/model"
)

type catalogFile struct {
	Movies []model.Movie `json:"movies"`
}

// LoadCatalog reads the catalog override from the user config dir. The
// second return is false when no override file exists; that is not an
// error, the built-in catalog applies.
func LoadCatalog() ([]model.Movie, bool, error) {
	path, err := CatalogPath()
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, false, errors.New("invalid catalog file format")
	}

	movies := make([]model.Movie, 0, len(file.Movies))
	for _, movie := range file.Movies {
		if movie.Title == "" || len(movie.Times) == 0 || movie.Price <= 0 {
			return nil, false, errors.New("catalog entries need a title, showtimes and a positive price")
		}
		movies = append(movies, movie)
	}
	if len(movies) == 0 {
		return nil, false, errors.New("catalog file has no listings")
	}
	return movies, true, nil
}

// SaveCatalog writes a catalog file, creating the config dir if needed.
func SaveCatalog(movies []model.Movie) error {
	path, err := CatalogPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(catalogFile{Movies: movies}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// CatalogPath returns the location of the catalog override file.
func CatalogPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taquilla-cli", "catalog.json"), nil
}
