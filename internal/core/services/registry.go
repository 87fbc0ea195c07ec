package services

import (
	"sort"
	"sync"
)

// ContentGenerator is the minimal surface a registry entry exposes.
// Concrete generators add their own Generate method on top.
type ContentGenerator interface {
	// ModelName returns the model this generator produces content with.
	ModelName() string
}

// GeneratorConstructor builds a content generator.
type GeneratorConstructor func() ContentGenerator

// GeneratorRegistry is an in-memory registry of content generators keyed
// by model name. It is process-local and lives for the process lifetime
// unless explicitly cleared. Safe for concurrent use.
type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[string]ContentGenerator
}

// NewGeneratorRegistry creates an empty registry.
func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[string]ContentGenerator),
	}
}

// Register stores a generator under its model name.
// The last registration for a given name wins.
func (r *GeneratorRegistry) Register(generator ContentGenerator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[generator.ModelName()] = generator
}

// Get returns the generator registered for the model name, or nil.
func (r *GeneratorRegistry) Get(modelName string) ContentGenerator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generators[modelName]
}

// AvailableModels returns the registered model names, sorted.
func (r *GeneratorRegistry) AvailableModels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]string, 0, len(r.generators))
	for name := range r.generators {
		models = append(models, name)
	}
	sort.Strings(models)
	return models
}

// Clear removes all registered generators. Tests use this for isolation.
func (r *GeneratorRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators = make(map[string]ContentGenerator)
}

// defaultRegistry is the process-wide registry used when callers do not
// supply their own.
var defaultRegistry = NewGeneratorRegistry()

// DefaultRegistry returns the process-wide generator registry.
func DefaultRegistry() *GeneratorRegistry {
	return defaultRegistry
}

// Registered wraps a constructor so that every generator it builds is also
// added to the registry before being returned. A nil registry means the
// process-wide one.
func Registered(registry *GeneratorRegistry, construct GeneratorConstructor) GeneratorConstructor {
	if registry == nil {
		registry = defaultRegistry
	}
	return func() ContentGenerator {
		generator := construct()
		registry.Register(generator)
		return generator
	}
}
