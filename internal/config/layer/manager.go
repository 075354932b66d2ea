package layer

import (
	"fmt"
	"sort"

	"github.com/dshills/candle/internal/config/loader"
)

// Manager holds configuration layers and provides merged access.
type Manager struct {
	layers []*Layer // sorted by priority, ascending
	merged map[string]any
	dirty  bool
}

// NewManager creates a new layer manager.
func NewManager() *Manager {
	return &Manager{dirty: true}
}

// AddLayer adds a copy of layer, replacing any existing layer with the
// same name.
func (m *Manager) AddLayer(layer *Layer) {
	layer = layer.Clone()
	for i, l := range m.layers {
		if l.Name == layer.Name {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			break
		}
	}
	m.layers = append(m.layers, layer)
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
	m.dirty = true
}

// Layer returns a layer by name, or nil.
func (m *Manager) Layer(name string) *Layer {
	for _, l := range m.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func (m *Manager) mergedData() map[string]any {
	if m.dirty || m.merged == nil {
		result := make(map[string]any)
		for _, l := range m.layers {
			result = loader.DeepMerge(result, l.Data)
		}
		m.merged = result
		m.dirty = false
	}
	return m.merged
}

// Get returns the effective value for a setting path.
func (m *Manager) Get(path string) (any, bool) {
	return loader.GetPath(m.mergedData(), path)
}

// WhichLayer returns the name of the layer that supplies the effective value
// of path, or "" if no layer sets it.
func (m *Manager) WhichLayer(path string) string {
	for i := len(m.layers) - 1; i >= 0; i-- {
		if _, ok := loader.GetPath(m.layers[i].Data, path); ok {
			return m.layers[i].Name
		}
	}
	return ""
}

// Set sets a value in the named layer.
func (m *Manager) Set(layerName, path string, value any) error {
	l := m.Layer(layerName)
	if l == nil {
		return fmt.Errorf("layer %q not found", layerName)
	}
	if !loader.SetPath(l.Data, path, value) {
		return fmt.Errorf("invalid setting path %q", path)
	}
	m.dirty = true
	return nil
}
