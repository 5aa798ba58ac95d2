// Package selector picks which summary variants to display for one article.
package selector

import (
	"math/rand"
	"sort"
	"strings"
)

const (
	// columnMarker tags a dataset column as holding a generated summary.
	columnMarker = "prompt"
	// priorityMarker tags columns produced by the favored generation method.
	priorityMarker = "prompt4"
	// labelPrefix is stripped from column names to form the display label.
	labelPrefix = "prompt_"
	// displayCount is how many summaries one article view shows at most.
	displayCount = 4
	// priorityQuota is how many priority-method summaries are preferred per view.
	priorityQuota = 2
)

// Summary is one (source label, text) pair chosen for display.
type Summary struct {
	Label string
	Text  string
}

// IsSummaryColumn reports whether a dataset column name holds a summary variant.
func IsSummaryColumn(name string) bool {
	return strings.Contains(name, columnMarker)
}

// Label converts a summary column name into its display source label.
func Label(column string) string {
	return strings.ReplaceAll(column, labelPrefix, "")
}

// Select chooses up to four summaries from the article's non-missing summary
// columns. When at least two priority-method columns exist, two of them are
// always included; the remaining slots come from the other columns, or from
// unused priority columns when the others cannot fill them. With fewer than
// two priority columns the whole pool is sampled uniformly. The returned
// slice is in randomized display order.
//
// columns maps summary column name to its (non-missing) text. Fewer than four
// available columns yields fewer pairs, never padding.
func Select(rng *rand.Rand, columns map[string]string) []Summary {
	var priority, other []string
	for name := range columns {
		if !IsSummaryColumn(name) {
			continue
		}
		if strings.Contains(name, priorityMarker) {
			priority = append(priority, name)
		} else {
			other = append(other, name)
		}
	}

	// Map iteration order is random but not seeded; sort for determinism
	// under an injected rng, then shuffle.
	sort.Strings(priority)
	sort.Strings(other)
	rng.Shuffle(len(priority), func(i, j int) { priority[i], priority[j] = priority[j], priority[i] })
	rng.Shuffle(len(other), func(i, j int) { other[i], other[j] = other[j], other[i] })

	var selected []string
	if len(priority) >= priorityQuota {
		selected = append(selected, priority[:priorityQuota]...)
		needed := displayCount - len(selected)
		if len(other) >= needed {
			selected = append(selected, other[:needed]...)
		} else {
			end := priorityQuota + needed
			if end > len(priority) {
				end = len(priority)
			}
			selected = append(selected, priority[priorityQuota:end]...)
		}
	} else {
		all := append(append([]string{}, priority...), other...)
		rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		if len(all) > displayCount {
			all = all[:displayCount]
		}
		selected = all
	}

	summaries := make([]Summary, 0, len(selected))
	for _, col := range selected {
		summaries = append(summaries, Summary{Label: Label(col), Text: columns[col]})
	}
	rng.Shuffle(len(summaries), func(i, j int) { summaries[i], summaries[j] = summaries[j], summaries[i] })
	return summaries
}
