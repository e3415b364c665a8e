// Package catalog manages the question-catalog state for a contest session:
// it fetches the authoritative question list once, tracks the currently
// viewed question, and bridges zero-based sidebar navigation onto the
// backend's one-based question numbering.
package catalog

import "encoding/json"

// Question is one contest problem as served by the questions API. Only num
// and writeup are examined here; the rest of the object travels through Raw
// untouched so the submission widget sees everything the backend sent.
type Question struct {
	Num     int
	Writeup string
	Raw     json.RawMessage
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var head struct {
		Num     int    `json:"num"`
		Writeup string `json:"writeup"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	q.Num = head.Num
	q.Writeup = head.Writeup
	q.Raw = append([]byte(nil), data...)
	return nil
}

func (q Question) MarshalJSON() ([]byte, error) {
	if q.Raw != nil {
		return q.Raw, nil
	}
	return json.Marshal(struct {
		Num     int    `json:"num"`
		Writeup string `json:"writeup"`
	}{q.Num, q.Writeup})
}

// Document is a reference artifact shared across all questions. It is opaque
// to this package beyond its title.
type Document struct {
	Title string
	Raw   json.RawMessage
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var head struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	d.Title = head.Title
	d.Raw = append([]byte(nil), data...)
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.Raw != nil {
		return d.Raw, nil
	}
	return json.Marshal(struct {
		Title string `json:"title"`
	}{d.Title})
}

// Catalog is the wire payload of GET /api/questions. The order of Questions
// is the authoritative display order; it is not required to be sorted by num.
type Catalog struct {
	Questions  []Question `json:"questions"`
	GlobalDocs []Document `json:"global_docs"`
}
