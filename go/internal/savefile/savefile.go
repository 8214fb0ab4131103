// Package savefile reads and writes Hoopland mobile save documents.
package savefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/mcdev12/rosterpatch/go/internal/models"
)

var (
	ErrInvalidJSON   = errors.New("save file is not valid JSON")
	ErrNotMobileSave = errors.New("not a mobile save file")
)

// Info is what Probe learns about a save without decoding it.
type Info struct {
	Leagues      int
	CollegeTeams int
}

// Probe checks that data is a mobile save: a JSON object with a seasonLeagues array.
func Probe(data []byte, collegeLeagueType int) (Info, error) {
	if !gjson.ValidBytes(data) {
		return Info{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Info{}, ErrNotMobileSave
	}
	leagues := root.Get(models.KeySeasonLeagues)
	if !leagues.IsArray() {
		return Info{}, ErrNotMobileSave
	}

	info := Info{Leagues: int(leagues.Get("#").Int())}
	path := fmt.Sprintf("#(%s==%d)#.%s.#", models.KeyLeagueType, collegeLeagueType, models.KeyLeagueTeams)
	for _, n := range leagues.Get(path).Array() {
		info.CollegeTeams += int(n.Int())
	}
	return info, nil
}

// Decode probes data and decodes it into a document. Numbers stay json.Number so ids
// and ratings round-trip exactly.
func Decode(data []byte) (*models.Document, error) {
	if _, err := Probe(data, models.LeagueTypeCollege); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	return models.NewDocument(raw), nil
}

// Load reads and decodes the save at path.
func Load(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode renders the document with two-space indentation and non-ASCII text left as is.
// Object keys come out sorted.
func Encode(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc.Raw()); err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write encodes doc to a temp file next to path and renames it into place, keeping the
// existing file mode when path already exists.
func Write(path string, doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
