package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/muurk/breakeven/internal/device"
)

// DefaultDir is the directory saved lists live in, relative to the working
// directory.
const DefaultDir = "saves"

const tempPattern = ".breakeven-*.tmp"

// Store reads and writes device lists under a single directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. An empty dir means DefaultDir.
func New(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

// Dir returns the directory lists are stored in
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path a list with the given name is stored at.
func (s *Store) Path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// ValidateName checks that name can be used as a single file name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newInvalidName(name, "list name is empty")
	}
	if name == "." || name == ".." {
		return newInvalidName(name, fmt.Sprintf("%q is not a valid list name", name))
	}
	if strings.HasPrefix(name, ".") {
		return newInvalidName(name, "list name must not start with '.'")
	}
	for _, r := range name {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return newInvalidName(name, "list name must not contain path separators")
		}
		if r == 0 || unicode.IsControl(r) {
			return newInvalidName(name, "list name must not contain control characters")
		}
	}
	return nil
}

// Save writes devices under name, replacing any existing list.
func (s *Store) Save(name string, devices []device.Device) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	if devices == nil {
		devices = []device.Device{}
	}

	data, err := json.MarshalIndent(devices, "", "  ")
	if err != nil {
		return newIOError(name, "failed to encode device list", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return newIOError(name, "failed to create save directory", err)
	}

	// Write to temporary file first (atomic write)
	tmp, err := os.CreateTemp(s.dir, tempPattern)
	if err != nil {
		return newIOError(name, "failed to create temporary save file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return newIOError(name, "failed to write save file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return newIOError(name, "failed to write save file", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return newIOError(name, "failed to set save file permissions", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return newIOError(name, "failed to save device list", err)
	}

	return nil
}

// Load reads the list saved under name. It returns an error, and no
// devices, if the file is missing or any part of it is malformed.
func (s *Store) Load(name string) ([]device.Device, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Type: ErrTypeNotFound, Name: name, Message: fmt.Sprintf("no list saved as %q", name), Err: err}
		}
		return nil, newIOError(name, "failed to read save file", err)
	}

	return decode(name, data)
}

func decode(name string, data []byte) ([]device.Device, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var list *[]device.Device
	if err := dec.Decode(&list); err != nil {
		return nil, newCorrupt(name, "failed to decode save file", err)
	}
	if list == nil {
		return nil, newCorrupt(name, "save file does not contain a device list", nil)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, newCorrupt(name, "unexpected data after device list", err)
	}

	for i, d := range *list {
		if err := d.Validate(); err != nil {
			return nil, newCorrupt(name, fmt.Sprintf("device %d is invalid", i+1), err)
		}
	}

	return *list, nil
}

// List returns the names of all saved lists in sorted order. A missing
// directory yields an empty result.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, newIOError("", "failed to list save directory", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if ValidateName(entry.Name()) != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
