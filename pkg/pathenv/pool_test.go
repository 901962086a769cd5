package pathenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBucketNames = []string{"PATH_EXT1", "PATH_EXT2", "PATH_EXT3", "PATH_EXT4"}

func TestBuildPool(t *testing.T) {
	s := DefaultSyntax()

	tests := []struct {
		name     string
		buckets  [][]string
		overflow []string
		vm       VariableMap
		want     []string
	}{
		{
			name:     "everything empty",
			buckets:  [][]string{nil, nil, nil, nil},
			overflow: nil,
			vm:       VariableMap{},
			want:     nil,
		},
		{
			name:     "buckets precede overflow",
			buckets:  [][]string{{`C:\A`}, {`C:\B`}, nil, nil},
			overflow: []string{`C:\C`},
			vm:       VariableMap{},
			want:     []string{`C:\A`, `C:\B`, `C:\C`},
		},
		{
			name:     "self reference dropped",
			buckets:  [][]string{{"%PATH_EXT1%", `C:\A`}, nil, nil, nil},
			overflow: nil,
			vm:       VariableMap{},
			want:     []string{`C:\A`},
		},
		{
			name:     "cross bucket reference dropped",
			buckets:  [][]string{{"%PATH_EXT2%"}, {`C:\A`}, nil, nil},
			overflow: nil,
			vm:       VariableMap{},
			want:     []string{`C:\A`},
		},
		{
			name:     "bucket reference with sub-path dropped",
			buckets:  [][]string{{`%PATH_EXT3%\sub`, `"%PATH_EXT4%"`}, nil, nil, nil},
			overflow: nil,
			vm:       VariableMap{},
			want:     nil,
		},
		{
			name:     "dedup across buckets and overflow",
			buckets:  [][]string{{`C:\A`}, {`c:\a\`}, nil, nil},
			overflow: []string{`C:\A`, `C:\B`},
			vm:       VariableMap{},
			want:     []string{`C:\A`, `C:\B`},
		},
		{
			name:     "substitution applied to survivors",
			buckets:  [][]string{{`C:\Java\jdk`}, nil, nil, nil},
			overflow: nil,
			vm:       VariableMap{`c:\java\jdk`: "%JAVA_HOME%"},
			want:     []string{"%JAVA_HOME%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.BuildPool(tt.buckets, tt.overflow, tt.vm, testBucketNames))
		})
	}
}

func TestBuildPoolResplitsDelimitedExpansion(t *testing.T) {
	s := DefaultSyntax()

	// An entry that still contains the delimiter after substitution
	// contributes one pool entry per piece. The original single slot
	// becomes several entries for balancing purposes; a known quirk,
	// kept as-is.
	buckets := [][]string{{`C:\A;C:\B`}, nil, nil, nil}
	pool := s.BuildPool(buckets, nil, VariableMap{}, testBucketNames)
	assert.Equal(t, []string{`C:\A`, `C:\B`}, pool)
}
