package aggregator

import (
	"sort"

	"ig-advisor-go/internal/types"
)

// BuildTagInsights counts field/value pairs per tag category across a
// cohort and keeps the topN most frequent. Ties keep first-seen order.
func BuildTagInsights(items []*VideoAggregate, topN int) types.TagInsights {
	return types.TagInsights{
		Basic:    countCategory(items, types.TagBasic, topN),
		Content:  countCategory(items, types.TagContent, topN),
		Editing:  countCategory(items, types.TagEditing, topN),
		Strategy: countCategory(items, types.TagStrategy, topN),
	}
}

func countCategory(items []*VideoAggregate, category types.TagCategory, topN int) []types.TagCount {
	counts := []types.TagCount{}
	index := map[types.TagField]int{}
	for _, it := range items {
		for _, f := range it.Video.AnalysisTags.Section(category) {
			if i, ok := index[f]; ok {
				counts[i].Count++
				continue
			}
			index[f] = len(counts)
			counts = append(counts, types.TagCount{Field: f.Name, Value: f.Value, Count: 1})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}
