// Package extractor flattens raw Sales Navigator records into tabular rows.
//
// The full output schema is one enumerable rule table, see DefaultRules.
// Extraction is a pure transformation: an absent or mismatched path yields
// the column default, never an error, and the input record is not mutated.
package extractor

import (
	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/rahalio/data-extraction/internal/pkg/record"
	"github.com/rahalio/data-extraction/internal/pkg/table"
)

// Stats counts extraction outcomes over a run.
type Stats struct {
	Accepted   int
	Duplicates int
}

// Extractor produces one flat row per raw record.
type Extractor struct {
	rules    []Rule
	dedup    bool
	seenURNs map[string]bool
	stats    Stats
}

// NewExtractor with the default Sales Navigator schema and
// deduplication by entity URN enabled.
func NewExtractor() *Extractor {
	return NewExtractorWithRules(DefaultRules(), true)
}

func NewExtractorWithRules(rules []Rule, dedup bool) *Extractor {
	return &Extractor{
		rules:    rules,
		dedup:    dedup,
		seenURNs: make(map[string]bool),
	}
}

func (e *Extractor) Stats() Stats {
	return e.stats
}

// ExtractRow flattens one record. The second return value is false when the
// record is skipped as a duplicate of an already extracted entity URN.
func (e *Extractor) ExtractRow(rec record.Record) (*table.Row, bool) {
	if e.dedup {
		if urn := stringAt(rec.Data, "entityUrn"); urn != "" {
			if e.seenURNs[urn] {
				e.stats.Duplicates++
				return nil, false
			}
			e.seenURNs[urn] = true
		}
	}

	row := table.NewRow()
	for _, rule := range e.rules {
		row.Set(rule.Column, e.evaluateRule(rule, rec.Data, rec.SourcePath))
	}

	e.stats.Accepted++
	return row, true
}

func (e *Extractor) evaluateRule(rule Rule, data *orderedmap.OrderedMap, sourcePath string) string {
	var value string
	if rule.Derive != nil {
		value = rule.Derive(data, sourcePath)
	} else {
		value = stringAt(data, rule.Path)
	}

	if rule.Post != nil {
		value = rule.Post(value)
	}
	return value
}
