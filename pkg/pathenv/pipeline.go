package pathenv

import (
	"fmt"

	"github.com/arthur-debert/pathkeeper/pkg/logging"
)

// Input is the read-once snapshot the pipeline consumes: the raw master
// value, the raw bucket values in bucket-ordinal order, and the process
// environment used for substitution.
type Input struct {
	Master  string
	Buckets []string
	Env     map[string]string
}

// Params configures one pipeline run.
type Params struct {
	Syntax      Syntax
	MaxLength   int
	BucketNames []string
}

// Result is the write-once outcome: final serialized master and bucket
// values (buckets indexed like Params.BucketNames), soft warnings, and
// eviction counters for reporting.
type Result struct {
	Master   string
	Buckets  []string
	Warnings []string
	Kept     int
	Evicted  int
}

// Placeholders returns the placeholder tokens injected into the master
// value, one per bucket, in ordinal order.
func (p Params) Placeholders() []string {
	tokens := make([]string, len(p.BucketNames))
	for i, name := range p.BucketNames {
		tokens[i] = p.Syntax.Token(name)
	}
	return tokens
}

// Plan runs the full pipeline over in. It is pure: no I/O, no retained
// state, and planning its own output again yields an identical Result.
//
// Bucket contents are cleaned (substituted and deduplicated) before
// composition so that housed-entry keys and cleaned master keys agree;
// feeding raw bucket values to Compose would leave a literal in a bucket
// and its substituted twin in the master for one extra run.
func Plan(in Input, p Params) Result {
	logger := logging.GetLogger("pathenv")

	vm := p.Syntax.BuildVariableMap(in.Env)
	logger.Debug().Int("substitutable", len(vm)).Msg("variable map built")

	master := p.Syntax.Clean(in.Master, vm)
	buckets := make([][]string, len(in.Buckets))
	for i, raw := range in.Buckets {
		buckets[i] = p.Syntax.Clean(raw, vm)
	}

	placeholders := p.Placeholders()
	candidate := p.Syntax.Compose(master, buckets, placeholders)

	var warnings []string
	if protected := p.Syntax.ProtectedLen(candidate); protected > p.MaxLength {
		warnings = append(warnings, fmt.Sprintf(
			"protected entries alone serialize to %d characters, over the %d budget; nothing can be evicted below it",
			protected, p.MaxLength))
	}

	kept, overflow := p.Syntax.HandleOverflow(candidate, p.MaxLength)
	logger.Debug().
		Int("candidate", len(candidate)).
		Int("kept", len(kept)).
		Int("evicted", len(overflow)).
		Msg("overflow handled")

	pool := p.Syntax.BuildPool(buckets, overflow, vm, p.BucketNames)
	assigned := p.Syntax.Distribute(pool, len(p.BucketNames))

	out := Result{
		Master:   p.Syntax.Join(kept),
		Buckets:  make([]string, len(assigned)),
		Warnings: warnings,
		Kept:     len(kept),
		Evicted:  len(overflow),
	}
	for i, bucket := range assigned {
		out.Buckets[i] = p.Syntax.Join(bucket)
	}
	return out
}
