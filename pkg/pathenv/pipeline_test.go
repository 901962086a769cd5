package pathenv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		Syntax:      DefaultSyntax(),
		MaxLength:   2000,
		BucketNames: []string{"PATH_EXT1", "PATH_EXT2", "PATH_EXT3", "PATH_EXT4"},
	}
}

func emptyBuckets() []string {
	return []string{"", "", "", ""}
}

func TestPlanCollapsesAndEvicts(t *testing.T) {
	p := testParams()
	long := `C:\` + strings.Repeat("v", 2100)
	in := Input{
		Master:  `C:\A;C:\A;%TEMP%;` + long,
		Buckets: emptyBuckets(),
		Env:     map[string]string{},
	}

	res := Plan(in, p)

	// Duplicate collapsed, reference kept, long literal evicted into
	// the first (emptiest, lowest-ordinal) bucket, placeholder block
	// appended last.
	assert.Equal(t,
		`C:\A;%TEMP%;%PATH_EXT1%;%PATH_EXT2%;%PATH_EXT3%;%PATH_EXT4%`,
		res.Master)
	assert.Equal(t, long, res.Buckets[0])
	assert.Equal(t, "", res.Buckets[1])
	assert.Equal(t, "", res.Buckets[2])
	assert.Equal(t, "", res.Buckets[3])
	assert.Equal(t, 1, res.Evicted)
	assert.LessOrEqual(t, len(res.Master), p.MaxLength)
	assert.Empty(t, res.Warnings)
}

func TestPlanIsIdempotent(t *testing.T) {
	p := testParams()
	long := `C:\` + strings.Repeat("v", 2100)
	in := Input{
		Master: `C:\A;c:\a;%TEMP%;"C:\Program Files\Git\cmd";` + long,
		Buckets: []string{
			`C:\Old\Bucket;%PATH_EXT1%`, "", `C:\Old\Bucket`, "",
		},
		Env: map[string]string{"GIT_CMD": `"C:\Program Files\Git\cmd"`},
	}

	first := Plan(in, p)
	second := Plan(Input{Master: first.Master, Buckets: first.Buckets, Env: in.Env}, p)

	assert.Equal(t, first.Master, second.Master)
	assert.Equal(t, first.Buckets, second.Buckets)
	assert.Zero(t, second.Evicted)
}

func TestPlanNoDuplicateKeysAnywhere(t *testing.T) {
	p := testParams()
	in := Input{
		Master:  `C:\A;C:\B;c:\b\;C:\C;C:\A`,
		Buckets: []string{`C:\B;C:\D`, `C:\D`, "", ""},
		Env:     map[string]string{},
	}

	res := Plan(in, p)

	seen := make(map[string]string)
	for _, raw := range append([]string{res.Master}, res.Buckets...) {
		for _, e := range p.Syntax.Split(raw) {
			key := Normalize(e)
			prev, dup := seen[key]
			require.False(t, dup, "key %q appears as both %q and %q", key, prev, e)
			seen[key] = e
		}
	}
}

func TestPlanOrderPreservation(t *testing.T) {
	p := testParams()
	in := Input{
		Master:  `C:\First;C:\Second;C:\Third;C:\Second;C:\Fourth`,
		Buckets: emptyBuckets(),
		Env:     map[string]string{},
	}

	res := Plan(in, p)
	entries := p.Syntax.Split(res.Master)
	require.True(t, len(entries) >= 4)
	assert.Equal(t,
		[]string{`C:\First`, `C:\Second`, `C:\Third`, `C:\Fourth`},
		entries[:4])
}

func TestPlanSubstitutesAgainstSnapshot(t *testing.T) {
	p := testParams()
	in := Input{
		Master:  `C:\Java\jdk\;C:\Bin`,
		Buckets: emptyBuckets(),
		Env:     map[string]string{"JAVA_HOME": `C:\Java\jdk`},
	}

	res := Plan(in, p)
	entries := p.Syntax.Split(res.Master)
	assert.Equal(t, "%JAVA_HOME%", entries[0])
	assert.Equal(t, `C:\Bin`, entries[1])
}

func TestPlanProtectionInvariant(t *testing.T) {
	p := testParams()
	p.MaxLength = 60
	refs := []string{"%ALPHA%", "%BRAVO%", "%CHARLIE%"}
	literals := []string{
		`C:\` + strings.Repeat("q", 40),
		`C:\` + strings.Repeat("r", 40),
	}
	in := Input{
		Master:  p.Syntax.Join(append(append([]string{}, literals...), refs...)),
		Buckets: emptyBuckets(),
		Env:     map[string]string{},
	}

	res := Plan(in, p)
	for _, ref := range refs {
		assert.Contains(t, p.Syntax.Split(res.Master), ref)
	}
}

func TestPlanBucketSelfReferenceNeverReinjected(t *testing.T) {
	p := testParams()
	in := Input{
		Master:  `C:\A`,
		Buckets: []string{"%PATH_EXT1%;C:\\Kept", `%PATH_EXT3%\sub`, "", ""},
		Env:     map[string]string{},
	}

	res := Plan(in, p)
	for i, raw := range res.Buckets {
		for _, e := range p.Syntax.Split(raw) {
			for _, name := range p.BucketNames {
				assert.NotContains(t, e, p.Syntax.Token(name),
					"bucket %d still holds a bucket reference", i)
			}
		}
	}
	assert.Equal(t, `C:\Kept`, res.Buckets[0])
}

func TestPlanWarnsWhenProtectedAloneOverBudget(t *testing.T) {
	p := testParams()
	p.MaxLength = 40
	in := Input{
		Master:  "%AAAAAAAAAAAAAAA%;%BBBBBBBBBBBBBBB%;%CCCCCCCCCCCCCCC%",
		Buckets: emptyBuckets(),
		Env:     map[string]string{},
	}

	res := Plan(in, p)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "protected entries")
	// The run still proceeds and keeps every reference.
	assert.Equal(t, 7, res.Kept)
}

func TestPlanEmptyMaster(t *testing.T) {
	p := testParams()
	in := Input{Master: "", Buckets: emptyBuckets(), Env: map[string]string{}}

	res := Plan(in, p)
	assert.Equal(t,
		"%PATH_EXT1%;%PATH_EXT2%;%PATH_EXT3%;%PATH_EXT4%", res.Master)
	for _, b := range res.Buckets {
		assert.Equal(t, "", b)
	}
}

func TestPlanBucketRebalancingConverges(t *testing.T) {
	p := Params{
		Syntax:      DefaultSyntax(),
		MaxLength:   2000,
		BucketNames: []string{"PATH_EXT1", "PATH_EXT2"},
	}
	// A length tie during redistribution may shuffle entries across
	// buckets on the first run; the output must be a fixed point from
	// then on.
	in := Input{
		Master:  "",
		Buckets: []string{`C:\aa;C:\c`, `C:\bb`},
		Env:     map[string]string{},
	}

	first := Plan(in, p)
	assert.Equal(t, []string{`C:\aa`, `C:\c;C:\bb`}, first.Buckets)

	second := Plan(Input{Master: first.Master, Buckets: first.Buckets, Env: in.Env}, p)
	assert.Equal(t, first.Master, second.Master)
	assert.Equal(t, first.Buckets, second.Buckets)
}

func TestPlanSingleBucket(t *testing.T) {
	p := Params{
		Syntax:      DefaultSyntax(),
		MaxLength:   30,
		BucketNames: []string{"PATH_EXT1"},
	}
	long := `C:\` + strings.Repeat("w", 50)
	in := Input{Master: `C:\A;` + long, Buckets: []string{""}, Env: map[string]string{}}

	res := Plan(in, p)
	assert.Equal(t, `C:\A;%PATH_EXT1%`, res.Master)
	assert.Equal(t, []string{long}, res.Buckets)
}
