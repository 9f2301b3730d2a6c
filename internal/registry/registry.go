// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, so the CLI can list and
// start them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappybird/internal/config"
)

// ErrUnknownFrontend is returned by Create for an unregistered ID.
var ErrUnknownFrontend = errors.New("unknown frontend")

// Session is everything a frontend needs to run one game process.
type Session struct {
	Config   config.FlappyConfig
	Seed     int64
	AssetDir string
	Logger   *log.Logger
}

// Frontend drives a flappy.Game: it owns the clock, input and presentation.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g. "window").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Run blocks until the player quits or a fatal error occurs.
	Run(s Session) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory creates a new frontend instance.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownFrontend, id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
