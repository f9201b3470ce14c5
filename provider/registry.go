package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/idprovider/errors"
	"github.com/kbukum/idprovider/logger"
)

// Registration is anything that can be registered: every Descriptor[P]
// satisfies it whatever its profile type.
type Registration interface {
	Info() Info
}

// Registry is a thread-safe, ID-keyed set of provider descriptors an engine
// builds at start-up.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Registration
	log     *logger.Logger
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Registration),
		log:     logger.Get("provider"),
	}
}

// Register validates the descriptor against the engine contract and adds it.
// A second descriptor with the same ID is rejected.
func (r *Registry) Register(d Registration) error {
	info := d.Info()
	if err := info.Validate(); err != nil {
		r.log.Error("provider rejected", logger.ErrorFields("register", err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[info.ID]; exists {
		return errors.AlreadyExists("provider", info.ID)
	}
	r.entries[info.ID] = d

	r.log.Info("provider registered", logger.Fields(
		logger.FieldProvider, info.ID,
		logger.FieldKind, string(info.Kind),
		logger.FieldChecks, info.Checks,
	))
	return nil
}

// Get returns the descriptor registered under id.
func (r *Registry) Get(id string) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[id]
	if !ok {
		return nil, errors.NotFound("provider", id)
	}
	return d, nil
}

// Lookup returns the descriptor registered under id with its profile type.
func Lookup[P any](r *Registry, id string) (Descriptor[P], error) {
	reg, err := r.Get(id)
	if err != nil {
		return Descriptor[P]{}, err
	}
	d, ok := reg.(Descriptor[P])
	if !ok {
		return Descriptor[P]{}, errors.InvalidInput("profile", fmt.Sprintf("provider %q is registered as %T", id, reg))
	}
	return d, nil
}

// List returns the identity of every registered provider, sorted by ID.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.entries))
	for _, d := range r.entries {
		infos = append(infos, d.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
