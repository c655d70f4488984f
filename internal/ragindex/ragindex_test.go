package ragindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(Options{Provider: "no-such-backend"})
	assert.Error(t, err)
}

func TestNewNoopProvider(t *testing.T) {
	p, err := New(Options{Provider: "noop"})
	require.NoError(t, err)
	assert.NoError(t, p.Create(context.Background(), 1, IndexConfig{}))
	assert.NoError(t, p.Remove(context.Background(), 1))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func(Options) (Provider, error) { return noopProvider{}, nil })
	assert.Panics(t, func() {
		Register("test-dup", func(Options) (Provider, error) { return noopProvider{}, nil })
	})
}

func TestParticiplePlugins(t *testing.T) {
	opts := Options{
		Participles: []Participle{
			{Name: "standard", Plugins: []PluginOption{{Name: "Standard", Value: "standard"}}},
			{Name: "ik", Plugins: []PluginOption{{Name: "IK Smart", Value: "ik_smart"}, {Name: "IK Max", Value: "ik_max_word"}}},
		},
	}
	plugins := opts.ParticiplePlugins()
	require.Len(t, plugins, 3)
	assert.Equal(t, "ik_smart", plugins[1].Value)
}

func TestIndexConfigScanValue(t *testing.T) {
	cfg := IndexConfig{ParticiplePlugin: "ik_smart", EmbeddingModel: "bge-m3", Dimension: 1024}
	raw, err := cfg.Value()
	require.NoError(t, err)

	var out IndexConfig
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, cfg, out)

	require.NoError(t, out.Scan(nil))
	assert.Equal(t, IndexConfig{}, out)
}
