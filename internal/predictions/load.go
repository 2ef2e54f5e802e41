package predictions

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"projection-engine/internal/model"
)

//go:embed defaults.csv
var defaultsCSV []byte

// Default returns the bundled sample predictions.
func Default() *Store {
	s, err := LoadCSV(bytes.NewReader(defaultsCSV))
	if err != nil {
		panic(fmt.Errorf("bundled predictions: %w", err))
	}
	return s
}

// LoadCSV reads rows with the Name, Year and Amount-Per-Bitcoin columns.
func LoadCSV(r io.Reader) (*Store, error) {
	var rows []model.Prediction
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode csv predictions: %w", err)
	}
	return NewStore(rows)
}

func LoadYAML(r io.Reader) (*Store, error) {
	var doc struct {
		Predictions []model.Prediction `yaml:"predictions"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml predictions: %w", err)
	}
	return NewStore(doc.Predictions)
}

// LoadJSON accepts either a bare array or an object with a "predictions" array.
func LoadJSON(r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json predictions: %w", err)
	}
	var preds []model.Prediction
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &preds)
	} else {
		var doc struct {
			Predictions []model.Prediction `json:"predictions"`
		}
		err = json.Unmarshal(raw, &doc)
		preds = doc.Predictions
	}
	if err != nil {
		return nil, fmt.Errorf("decode json predictions: %w", err)
	}
	return NewStore(preds)
}

// LoadFile picks a decoder from the file extension.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported predictions format %q", ext)
	}
}
