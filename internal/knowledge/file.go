package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func readJSONFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := json.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("json.NewDecoder().Decode()> %w", err)
	}
	return result, nil
}

// writeJSONFile writes data to a temporary file next to path and renames it over path,
// so readers never see a partially written file.
func writeJSONFile[T any](path string, data T) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s)> %w", dir, err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s)> %w", dir, err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("json.NewEncoder().Encode()> %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close()> %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("os.Rename(%s, %s)> %w", tmpPath, path, err)
	}
	return nil
}
