package model

// Document is a reference artifact shared across all questions (language
// cheat sheets, environment notes). It is not owned by any single question.
type Document struct {
	ID      string `bson:"_id" json:"id"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}
