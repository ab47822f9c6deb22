// Package file provides the TOML-backed configuration store.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/proofdrift/proofdrift-cli/internal/core/domain"
	"github.com/proofdrift/proofdrift-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultReportPath is where the HTML report goes when the user has not
// configured one.
const DefaultReportPath = "compare_report.html"

// settings is the on-disk TOML shape.
type settings struct {
	Threshold      int      `toml:"threshold"`
	HeaderKeywords []string `toml:"header_keywords"`
	Report         string   `toml:"report"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration lives in a TOML file within the proofdrift
// config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     settings
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.proofdrift/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".proofdrift")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data: settings{
			Threshold: domain.DefaultThreshold,
			Report:    DefaultReportPath,
		},
	}

	if err := s.load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Threshold returns the default alignment threshold.
func (s *ConfigStore) Threshold() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Threshold
}

// SetThreshold updates the default alignment threshold in memory.
func (s *ConfigStore) SetThreshold(t int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Threshold = t
}

// HeaderKeywords returns extra running-header keywords to strip.
func (s *ConfigStore) HeaderKeywords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.data.HeaderKeywords))
	copy(out, s.data.HeaderKeywords)
	return out
}

// SetHeaderKeywords replaces the extra header keyword list in memory.
func (s *ConfigStore) SetHeaderKeywords(keywords []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.HeaderKeywords = append([]string(nil), keywords...)
}

// ReportPath returns the default report output path.
func (s *ConfigStore) ReportPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Report
}

// Save writes the current values to the TOML file.
func (s *ConfigStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads the TOML file into memory. Missing fields keep their
// defaults.
func (s *ConfigStore) load() error {
	content, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return toml.Unmarshal(content, &s.data)
}
