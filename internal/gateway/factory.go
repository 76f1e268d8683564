package gateway

import (
	"fmt"

	"bloom/internal/config"
	"bloom/internal/port"
)

// ProviderFactory creates a ModelGateway from a provider config.
type ProviderFactory func(cfg *config.GatewayProviderConfig) (port.ModelGateway, error)

// registry of provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGateway creates a ModelGateway from a provider config using the registered factory.
func NewGateway(cfg *config.GatewayProviderConfig) (port.ModelGateway, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// Build creates the process-wide gateway from the full gateway config. A single
// configured provider is returned as-is; more than one is wrapped in a
// FallbackGateway in config order.
func Build(cfg *config.GatewayConfig) (port.ModelGateway, error) {
	provs := cfg.Providers()
	gateways := make([]port.ModelGateway, 0, len(provs))
	names := make([]string, 0, len(provs))
	for _, p := range provs {
		gw, err := NewGateway(p)
		if err != nil {
			return nil, err
		}
		gateways = append(gateways, gw)
		names = append(names, p.Provider)
	}
	if len(gateways) == 1 {
		return gateways[0], nil
	}
	return NewFallbackGateway(gateways, names), nil
}
