package store

import (
	"strings"

	"jot-cli/internal/model"
)

// MaxTags caps the tag list on commit; extra segments are dropped.
const MaxTags = 12

// EditorFields are the transient values of the three editable fields.
// They never outlive an edit: commit copies them back into the note, and
// only Commit touches UpdatedAt.
type EditorFields struct {
	Title   string
	Tags    string
	Content string
}

// FieldsFor mirrors a note into editable field values (tags joined ", ").
func FieldsFor(n model.Note) EditorFields {
	return EditorFields{
		Title:   n.Title,
		Tags:    strings.Join(n.Tags, ", "),
		Content: n.Content,
	}
}

// ParseTags splits a comma-separated field, trims each segment, drops
// empties and caps the result at MaxTags. Deduplication is not enforced.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		t := strings.TrimSpace(part)
		if t == "" {
			continue
		}
		tags = append(tags, t)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}
