package fixturelib

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
)

// archiveDoc is the GDTF-lite JSON projection this repository accepts
// in place of full GDTF archive/XML parsing (out of scope per §1).
type archiveDoc struct {
	Name  string `json:"name"`
	Modes []struct {
		Name     string `json:"name"`
		Channels []struct {
			Attribute string `json:"attribute"`
			Offsets   []int  `json:"offsets"`
		} `json:"channels"`
	} `json:"modes"`
}

// Repository is the persistence collaborator a Library uses to make
// inserted fixture types durable. Implemented by internal/showfile
// against gorm/sqlite; kept as an interface here so fixturelib never
// imports the persistence package.
type Repository interface {
	SaveFixtureType(ft *FixtureType) error
	LoadAllFixtureTypes() ([]*FixtureType, error)
}

// Library is the in-memory, read-mostly fixture type catalogue. It is
// populated once at showfile load and is safe for concurrent reads
// thereafter; InsertFromArchive is the only mutator and is itself
// safe for concurrent callers.
type Library struct {
	mu           sync.RWMutex
	byID         map[string]*FixtureType
	byFileName   map[string]string // file name -> fixture type id
	repo         Repository
}

// NewLibrary constructs an empty library backed by repo. repo may be
// nil for tests that never need durability.
func NewLibrary(repo Repository) *Library {
	return &Library{
		byID:       make(map[string]*FixtureType),
		byFileName: make(map[string]string),
		repo:       repo,
	}
}

// Load populates the library from the repository, intended to run
// once during startup right after the showfile store opens its
// database.
func (l *Library) Load() error {
	if l.repo == nil {
		return nil
	}
	types, err := l.repo.LoadAllFixtureTypes()
	if err != nil {
		return fmt.Errorf("loading fixture types: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ft := range types {
		l.byID[ft.ID] = ft
		if ft.FileName != "" {
			l.byFileName[ft.FileName] = ft.ID
		}
	}
	return nil
}

// Get returns the fixture type for id, if present.
func (l *Library) Get(id string) (*FixtureType, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ft, ok := l.byID[id]
	return ft, ok
}

// ContainsByFileName reports whether a fixture type was registered
// under the given GDTF file name. `patch set gdtf` resolves names
// through IDByFileName instead.
func (l *Library) ContainsByFileName(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.byFileName[name]
	return ok
}

// IDByFileName resolves a registered file name to its fixture type id.
func (l *Library) IDByFileName(name string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.byFileName[name]
	return id, ok
}

// InsertFromArchive parses a GDTF-lite JSON descriptor, registers it
// under fileName, and persists it. Re-inserting identical bytes is
// idempotent: the content hash is the fixture type id, so a duplicate
// insert returns the existing id without creating a second row.
func (l *Library) InsertFromArchive(fileName string, data []byte) (string, error) {
	var doc archiveDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parsing fixture archive %q: %w", fileName, err)
	}

	sum := sha256.Sum256(data)
	id := hex.EncodeToString(sum[:])[:16]

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.byID[id]; ok {
		l.byFileName[fileName] = existing.ID
		return existing.ID, nil
	}

	ft := &FixtureType{
		ID:       id,
		Name:     doc.Name,
		FileName: fileName,
		Modes:    make(map[string]DmxMode),
	}
	for _, mode := range doc.Modes {
		dm := DmxMode{Name: mode.Name}
		for _, ch := range mode.Channels {
			dm.Channels = append(dm.Channels, DmxChannel{Attribute: ch.Attribute, Offsets: ch.Offsets})
		}
		ft.Modes[mode.Name] = dm
	}

	if l.repo != nil {
		if err := l.repo.SaveFixtureType(ft); err != nil {
			return "", fmt.Errorf("persisting fixture type %q: %w", fileName, err)
		}
	}

	l.byID[id] = ft
	l.byFileName[fileName] = id
	return id, nil
}
