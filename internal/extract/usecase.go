package extract

// Placeholder is used as the description of a heading that has no
// description at the same position.
const Placeholder = "No description available"

// UseCase is one extracted entry: a heading and the paragraph describing it.
type UseCase struct {
	Title       string
	Description string
}

// pair zips titles with descriptions by position. Titles without a
// description at the same index get Placeholder.
func pair(titles, descriptions []string) []UseCase {
	out := make([]UseCase, 0, len(titles))
	for i, title := range titles {
		desc := Placeholder
		if i < len(descriptions) {
			desc = descriptions[i]
		}
		out = append(out, UseCase{Title: title, Description: desc})
	}
	return out
}
