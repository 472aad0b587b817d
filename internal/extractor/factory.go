// Package extractor selects the generation backend named in configuration.
package extractor

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"docuextract/internal/config"
	"docuextract/internal/port"
)

// ProviderFactory creates an Extractor from the extractor config.
type ProviderFactory func(cfg *config.ExtractorConfig, logger *zap.Logger) (port.Extractor, error)

// registry of provider factories, populated by init() in each provider package
// or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the Extractor for cfg.Provider using the registered factory.
func New(cfg *config.ExtractorConfig, logger *zap.Logger) (port.Extractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Provider)
	}
	return factory(cfg, logger)
}
