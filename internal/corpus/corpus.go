// Package corpus loads the parallel English-Igala word list that seeds the
// translation lexicon. Word lists are plain CSV or YAML files with an
// optional part-of-speech column used by the synthetic sentence generator.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ojonugwa/igatrans/internal/translation"
)

// Entry is one row of the parallel corpus.
type Entry struct {
	English      string `yaml:"english" json:"english"`
	Igala        string `yaml:"igala" json:"igala"`
	PartOfSpeech string `yaml:"pos,omitempty" json:"pos,omitempty"`
}

// Pair converts the entry to a translation pair, dropping the POS tag.
func (e Entry) Pair() translation.Pair {
	return translation.Pair{English: e.English, Igala: e.Igala}
}

// Pairs converts entries to translation pairs in order.
func Pairs(entries []Entry) []translation.Pair {
	pairs := make([]translation.Pair, len(entries))
	for i, entry := range entries {
		pairs[i] = entry.Pair()
	}
	return pairs
}

// LoadFile reads a corpus file, dispatching on its extension.
// Supported: .csv, .yml, .yaml.
func LoadFile(path string) ([]Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVFile(path)
	case ".yml", ".yaml":
		return readYAMLFile(path)
	default:
		return nil, fmt.Errorf("unsupported corpus file format: %s", path)
	}
}

func readCSVFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	entries, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("corpus.ReadCSV(%s) > %w", path, err)
	}
	return entries, nil
}

// ReadCSV parses a corpus from CSV. The first row must be a header naming
// at least the English and Igala columns; a POS column is optional.
// Column order does not matter and header names are case-insensitive.
func ReadCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reader.Read(header) > %w", err)
	}

	englishCol, igalaCol, posCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "english":
			englishCol = i
		case "igala":
			igalaCol = i
		case "pos":
			posCol = i
		}
	}
	if englishCol < 0 || igalaCol < 0 {
		return nil, fmt.Errorf("header must contain English and Igala columns, got %v", header)
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read() > %w", err)
		}
		if englishCol >= len(record) || igalaCol >= len(record) {
			continue
		}

		entry := Entry{
			English: record[englishCol],
			Igala:   record[igalaCol],
		}
		if posCol >= 0 && posCol < len(record) {
			entry.PartOfSpeech = record[posCol]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteCSV writes entries as CSV with an English,Igala,POS header.
func WriteCSV(w io.Writer, entries []Entry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"English", "Igala", "POS"}); err != nil {
		return fmt.Errorf("writer.Write(header) > %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write([]string{entry.English, entry.Igala, entry.PartOfSpeech}); err != nil {
			return fmt.Errorf("writer.Write() > %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Flush() > %w", err)
	}
	return nil
}

func readYAMLFile(path string) ([]Entry, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	return entries, nil
}
