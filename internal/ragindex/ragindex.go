// Package ragindex manages the index backend behind knowledge bases.
// Providers are looked up through an explicit registry keyed by the
// configured provider name; nothing is discovered by reflection.
package ragindex

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// IndexConfig is the per-knowledge-base index configuration, stored as a
// JSON column on the knowledge row.
type IndexConfig struct {
	ParticiplePlugin string `json:"participlePlugin" yaml:"participlePlugin"`
	EmbeddingModel   string `json:"embeddingModel" yaml:"embeddingModel"`
	Dimension        int    `json:"dimension" yaml:"dimension"`
}

func (c IndexConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *IndexConfig) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = IndexConfig{}
		return nil
	default:
		return fmt.Errorf("ragindex: cannot scan %T into IndexConfig", value)
	}
}

// GormDataType maps the config to a jsonb column.
func (IndexConfig) GormDataType() string { return "jsonb" }

// Provider maintains the external index for a knowledge base.
type Provider interface {
	Create(ctx context.Context, knowledgeID int64, cfg IndexConfig) error
	Remove(ctx context.Context, knowledgeID int64) error
}

// PluginOption names a participle plugin selectable in an index config.
type PluginOption struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Participle groups the plugins one tokenizer family offers.
type Participle struct {
	Name    string         `json:"name" yaml:"name"`
	Plugins []PluginOption `json:"plugins" yaml:"plugins"`
}

// Options configures the index layer from the options file.
type Options struct {
	Provider    string       `yaml:"provider"`
	Participles []Participle `yaml:"participles"`
}

// ParticiplePlugins flattens the plugins of every participle family.
func (o Options) ParticiplePlugins() []PluginOption {
	var out []PluginOption
	for _, p := range o.Participles {
		out = append(out, p.Plugins...)
	}
	return out
}

// Factory builds a Provider from the index options.
type Factory func(opts Options) (Provider, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a provider factory available under name. Registration
// happens at startup; duplicate names panic to surface wiring mistakes.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic("ragindex: provider registered twice: " + name)
	}
	registry[name] = factory
}

// New builds the provider the options name. Unknown names fail so a
// misconfigured deployment stops at startup instead of at first use.
func New(opts Options) (Provider, error) {
	registryMu.RLock()
	factory, ok := registry[opts.Provider]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("ragindex: unknown provider %q (registered: %v)", opts.Provider, names())
	}
	return factory(opts)
}

func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// noopProvider serves deployments without an index backend.
type noopProvider struct{}

func (noopProvider) Create(context.Context, int64, IndexConfig) error { return nil }
func (noopProvider) Remove(context.Context, int64) error              { return nil }

func init() {
	Register("noop", func(Options) (Provider, error) { return noopProvider{}, nil })
}
