package store

// MemoryStore is an in-memory Store used by tests and dry runs. Like
// the rest of the pipeline it assumes a single writer; there is no
// locking.
type MemoryStore struct {
	scopes map[Scope]map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scopes: make(map[Scope]map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(name string, scope Scope) (string, bool, error) {
	vars, ok := m.scopes[scope]
	if !ok {
		return "", false, nil
	}
	value, ok := vars[name]
	return value, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(name, value string, scope Scope) error {
	vars, ok := m.scopes[scope]
	if !ok {
		vars = make(map[string]string)
		m.scopes[scope] = vars
	}
	vars[name] = value
	return nil
}

// Names returns the defined variable names in scope, for inspection in
// tests.
func (m *MemoryStore) Names(scope Scope) []string {
	var names []string
	for name := range m.scopes[scope] {
		names = append(names, name)
	}
	return names
}
