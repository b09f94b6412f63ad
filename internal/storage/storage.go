package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
	"github.com/ensigniasec/candidate-controls/internal/validate"
)

// DefaultPath is where preferences live unless --prefs-file says otherwise.
const DefaultPath = "~/.config/candidate-controls/prefs.json"

const defaultViewMode = "list"

// Data represents the structure of the preferences file.
type Data struct {
	SortBy    string `json:"sort_by" validate:"required,sortkey"`
	ViewMode  string `json:"view_mode" validate:"required,viewmode"`
	ProfileID string `json:"profile_id,omitempty" validate:"omitempty,uuid4"`
}

// Storage handles the loading and saving of the preferences file.
type Storage struct {
	Path string `validate:"required,filepath"`
	Data Data
}

func defaultData() Data {
	return Data{
		SortBy:   catalog.DefaultSort,
		ViewMode: defaultViewMode,
	}
}

// NewStorage creates a new Storage instance, loading the file if present.
func NewStorage(path string) (*Storage, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Storage{
		Path: expandedPath,
		Data: defaultData(),
	}

	if err := s.Load(); err != nil {
		// If the file doesn't exist, we can ignore the error.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if s.Data.ProfileID == "" {
		s.Data.ProfileID = uuid.NewString()
	}

	return s, nil
}

// NewOrExistingStorage returns existing storage if the file exists, or creates a new one otherwise.
// When creating a new storage, it writes the defaults to disk immediately.
func NewOrExistingStorage(path string) (*Storage, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return NewStorage(path)
	} else if os.IsNotExist(err) {
		s, err := NewStorage(path)
		if err != nil {
			return nil, err
		}
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, err
}

func (s *Storage) Load() error {
	logrus.Debug("Loading preferences from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &s.Data); err != nil {
		return err
	}

	// Validate loaded data and self-heal when possible.
	if err := validate.Struct(s.Data); err != nil {
		changed := false
		if validate.Var(s.Data.ViewMode, "required,viewmode") != nil {
			logrus.Warnf("Invalid view_mode %q in preferences; using %q.", s.Data.ViewMode, defaultViewMode)
			s.Data.ViewMode = defaultViewMode
			changed = true
		}
		// Well-formed but unknown keys are kept; the control bar tolerates them.
		if validate.Var(s.Data.SortBy, "required,sortkey") != nil {
			logrus.Warnf("Invalid sort_by %q in preferences; using %q.", s.Data.SortBy, catalog.DefaultSort)
			s.Data.SortBy = catalog.DefaultSort
			changed = true
		}
		if s.Data.ProfileID != "" && validate.Var(s.Data.ProfileID, "uuid4") != nil {
			s.Data.ProfileID = uuid.NewString()
			changed = true
		}
		if changed {
			if err := s.Save(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save writes the preferences to the file.
func (s *Storage) Save() error {
	logrus.Debug("Saving preferences to: ", s.Path)
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.Path, data, 0o600)
}

// Reset restores defaults, keeping the profile id, and saves.
func (s *Storage) Reset() error {
	id := s.Data.ProfileID
	s.Data = defaultData()
	s.Data.ProfileID = id
	return s.Save()
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
