package leads

// Source identifies the surface that originated a lead submission.
type Source string

const (
	SourceContactForm Source = "contact-form"
	SourceCaseStudy   Source = "case-study"
	SourceBlogPopup   Source = "blog-popup"
	SourceWebsite     Source = "website"
)

// tagWebsiteLead is attached to every contact regardless of origin.
const tagWebsiteLead = "Website Lead"

// sourceTags maps each recognized surface to its CRM tag list. Adding a new
// lead-origin surface is a single entry here.
var sourceTags = map[Source][]string{
	SourceContactForm: {tagWebsiteLead, "Contact Form"},
	SourceCaseStudy:   {tagWebsiteLead, "Case Study Form"},
}

// TagsForSource returns the ordered CRM tags for a raw source value.
// Unrecognized or empty sources get the bare website tag.
func TagsForSource(source string) []string {
	if tags, ok := sourceTags[Source(source)]; ok {
		return append([]string(nil), tags...)
	}
	return []string{tagWebsiteLead}
}
