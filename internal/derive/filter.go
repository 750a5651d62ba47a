// filter.go — three-level dataset filtering: category, sub-category, tag,
// plus free-text search. Option lists are derived from the datasets actually
// present, never stored.
package derive

import (
	"strings"

	"evalboard/internal/domain"
)

// FilterAll is the sentinel selecting every sub-category or tag.
const FilterAll = "All"

// DatasetFilter is the dataset browser's selection state. The category level
// always holds a concrete category; sub-category and tag may hold FilterAll.
// The zero value is not useful; construct with NewDatasetFilter.
type DatasetFilter struct {
	Category    domain.DatasetCategory
	SubCategory string
	Tag         string
	Search      string
}

// NewDatasetFilter starts on the compliance category with both lower levels
// wide open.
func NewDatasetFilter() DatasetFilter {
	return DatasetFilter{
		Category:    domain.DatasetCompliance,
		SubCategory: FilterAll,
		Tag:         FilterAll,
	}
}

// SetCategory switches the top level and resets both lower levels, even when
// the category is unchanged: re-selecting a tab clears its drill-down.
func (f *DatasetFilter) SetCategory(c domain.DatasetCategory) {
	f.Category = c
	f.SubCategory = FilterAll
	f.Tag = FilterAll
}

// SetSubCategory switches the second level and resets the tag, which may no
// longer exist under the new sub-category.
func (f *DatasetFilter) SetSubCategory(sub string) {
	f.SubCategory = sub
	f.Tag = FilterAll
}

// SetTag switches the third level.
func (f *DatasetFilter) SetTag(tag string) { f.Tag = tag }

// SetSearch updates the free-text query.
func (f *DatasetFilter) SetSearch(q string) { f.Search = q }

// SubCategoryOptions lists the sub-categories observed under the current
// category, first-seen order, with FilterAll prepended.
func (f DatasetFilter) SubCategoryOptions(datasets []domain.Dataset) []string {
	opts := []string{FilterAll}
	seen := map[string]bool{}
	for _, d := range datasets {
		if d.Category != f.Category || seen[d.SubCategory] {
			continue
		}
		seen[d.SubCategory] = true
		opts = append(opts, d.SubCategory)
	}
	return opts
}

// TagOptions lists the tags observed under the current category and
// sub-category selection, first-seen order, with FilterAll prepended.
func (f DatasetFilter) TagOptions(datasets []domain.Dataset) []string {
	opts := []string{FilterAll}
	seen := map[string]bool{}
	for _, d := range datasets {
		if d.Category != f.Category {
			continue
		}
		if f.SubCategory != FilterAll && d.SubCategory != f.SubCategory {
			continue
		}
		for _, t := range d.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			opts = append(opts, t)
		}
	}
	return opts
}

// Apply returns the datasets matching every active level plus the search
// query. Search is case-insensitive over name and sub-category.
func (f DatasetFilter) Apply(datasets []domain.Dataset) []domain.Dataset {
	q := strings.ToLower(f.Search)
	var out []domain.Dataset
	for _, d := range datasets {
		if d.Category != f.Category {
			continue
		}
		if f.SubCategory != FilterAll && d.SubCategory != f.SubCategory {
			continue
		}
		if f.Tag != FilterAll && !d.HasTag(f.Tag) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.SubCategory), q) {
			continue
		}
		out = append(out, d)
	}
	return out
}
