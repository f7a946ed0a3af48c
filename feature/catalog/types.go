package catalog

import (
	"encoding/json"
	"path"
)

// Text normalizes the catalog's string-or-object text fields.
// Both `"description": "plain"` and `"description": {"type": ..., "value": ...}`
// decode into Value; anything else defaults to empty rather than failing.
type Text struct {
	Value string
}

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Value = s
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		t.Value = obj.Value
		return nil
	}
	// Malformed optional field: default instead of propagating.
	t.Value = ""
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value)
}

// KeyRef is a catalog reference of the form {"key": "/books/OL123M"}.
type KeyRef struct {
	Key string `json:"key"`
}

// OLID returns the trailing external identifier of the reference key.
func (r KeyRef) OLID() string {
	if r.Key == "" {
		return ""
	}
	return path.Base(r.Key)
}

// Book is an edition document as served by /books/{olid}.json.
type Book struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle"`
	Description    Text     `json:"description"`
	ISBN10         []string `json:"isbn_10"`
	ISBN13         []string `json:"isbn_13"`
	NumberOfPages  int      `json:"number_of_pages"`
	PublishDate    string   `json:"publish_date"`
	PhysicalFormat string   `json:"physical_format"`
	Languages      []KeyRef `json:"languages"`
	Covers         []int64  `json:"covers"`
	Works          []KeyRef `json:"works"`
	SourceRecords  []string `json:"source_records"`
}

// OLID returns the edition's external identifier.
func (b Book) OLID() string {
	return KeyRef{Key: b.Key}.OLID()
}

// Link is an external author link record.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Type  KeyRef `json:"type"`
}

// Author is an author document as served by /authors/{olid}.json.
type Author struct {
	Key       string            `json:"key"`
	Name      string            `json:"name"`
	Bio       Text              `json:"bio"`
	BirthDate string            `json:"birth_date"`
	Photos    []int64           `json:"photos"`
	Links     []Link            `json:"links"`
	RemoteIDs map[string]string `json:"remote_ids"`
}

// OLID returns the author's external identifier.
func (a Author) OLID() string {
	return KeyRef{Key: a.Key}.OLID()
}

// WorkAuthor is a contributor entry on a work document.
type WorkAuthor struct {
	Author KeyRef `json:"author"`
}

// Work is a work document as served by /works/{olid}.json.
type Work struct {
	Key              string       `json:"key"`
	Title            string       `json:"title"`
	Description      Text         `json:"description"`
	Subjects         []string     `json:"subjects"`
	Authors          []WorkAuthor `json:"authors"`
	Covers           []int64      `json:"covers"`
	FirstPublishDate string       `json:"first_publish_date"`
}

// EditionsPage is the edition list for a work
// as served by /works/{olid}/editions.json.
type EditionsPage struct {
	Size    int    `json:"size"`
	Entries []Book `json:"entries"`
}

// ISBNRecord is one entry of the by-ISBN lookup response (jscmd=data shape).
type ISBNRecord struct {
	Title       string `json:"title"`
	Identifiers struct {
		OpenLibrary []string `json:"openlibrary"`
	} `json:"identifiers"`
}

// EditionOLID returns the external edition identifier the ISBN resolved to,
// or an empty string when the record carries none.
func (r ISBNRecord) EditionOLID() string {
	if len(r.Identifiers.OpenLibrary) == 0 {
		return ""
	}
	return r.Identifiers.OpenLibrary[0]
}
