package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathkeeper/pkg/errors"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		input   string
		want    Scope
		wantErr bool
	}{
		{"user", ScopeUser, false},
		{"machine", ScopeMachine, false},
		{"system", ScopeMachine, false},
		{"global", ScopeUser, true},
		{"", ScopeUser, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScope(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "user", ScopeUser.String())
	assert.Equal(t, "machine", ScopeMachine.String())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	m := NewMemoryStore()

	_, ok, err := m.Get("PATH", ScopeUser)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("PATH", `C:\A;C:\B`, ScopeUser))
	value, ok, err := m.Get("PATH", ScopeUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `C:\A;C:\B`, value)

	// Scopes are independent namespaces.
	_, ok, err = m.Get("PATH", ScopeMachine)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreEmptyValueIsDefined(t *testing.T) {
	m := NewMemoryStore()
	require.NoError(t, m.Set("PATH_EXT1", "", ScopeUser))

	value, ok, err := m.Get("PATH_EXT1", ScopeUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestEnsureDefined(t *testing.T) {
	m := NewMemoryStore()
	require.NoError(t, m.Set("PATH_EXT1", `C:\Existing`, ScopeUser))

	names := []string{"PATH_EXT1", "PATH_EXT2", "PATH_EXT3"}
	require.NoError(t, EnsureDefined(m, ScopeUser, names))

	for _, name := range names {
		value, ok, err := m.Get(name, ScopeUser)
		require.NoError(t, err)
		assert.True(t, ok, "%s should exist", name)
		if name == "PATH_EXT1" {
			assert.Equal(t, `C:\Existing`, value, "existing value must not be clobbered")
		} else {
			assert.Equal(t, "", value)
		}
	}
}

func TestParseRegQuery(t *testing.T) {
	out := "\r\nHKEY_CURRENT_USER\\Environment\r\n" +
		"    Path    REG_EXPAND_SZ    C:\\Program Files\\Git\\cmd;%JAVA_HOME%\\bin\r\n\r\n"

	value, ok := parseRegQuery(out, "Path")
	assert.True(t, ok)
	assert.Equal(t, `C:\Program Files\Git\cmd;%JAVA_HOME%\bin`, value)

	_, ok = parseRegQuery(out, "TEMP")
	assert.False(t, ok)
}

func TestRegistryStoreWithFakeRunner(t *testing.T) {
	var gotArgs []string
	r := &RegistryStore{run: func(args ...string) (string, int, error) {
		gotArgs = args
		return "    PATH_EXT1    REG_EXPAND_SZ    C:\\Spill\r\n", 0, nil
	}}

	value, ok, err := r.Get("PATH_EXT1", ScopeMachine)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `C:\Spill`, value)
	assert.Equal(t,
		[]string{"query", machineEnvKey, "/v", "PATH_EXT1"}, gotArgs)

	require.NoError(t, r.Set("PATH_EXT1", `C:\Spill`, ScopeUser))
	assert.Equal(t,
		[]string{"add", userEnvKey, "/v", "PATH_EXT1", "/t", "REG_EXPAND_SZ", "/d", `C:\Spill`, "/f"},
		gotArgs)
}
