package pagecheck

// DuplicateGroup is a (tag, text) pair that occurs more than once on a page.
// Positions are 1-based indices into the extracted elements, ascending.
type DuplicateGroup struct {
	Tag       string `json:"tag"`
	Text      string `json:"text"`
	Positions []int  `json:"positions"`
}

// duplicateKeySeparator joins tag and text into a grouping key.
const duplicateKeySeparator = "::"

// DetectDuplicates groups elements by exact tag and text and returns every
// group seen at least twice. Groups are ordered by the first occurrence of
// their key; comparison is case-sensitive with no normalization.
func DetectDuplicates(elements []ContentElement) []DuplicateGroup {
	index := make(map[string]int)
	var groups []DuplicateGroup

	for i, el := range elements {
		key := el.Tag + duplicateKeySeparator + el.Text
		if idx, ok := index[key]; ok {
			groups[idx].Positions = append(groups[idx].Positions, i+1)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, DuplicateGroup{
			Tag:       el.Tag,
			Text:      el.Text,
			Positions: []int{i + 1},
		})
	}

	duplicates := groups[:0]
	for _, g := range groups {
		if len(g.Positions) > 1 {
			duplicates = append(duplicates, g)
		}
	}
	if len(duplicates) == 0 {
		return nil
	}
	return duplicates
}
