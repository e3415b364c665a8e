package model

// Question is a single contest problem. Num is assigned by the backend at
// seed time, is 1-based and unique, and is never renumbered client-side.
// Display order is the insertion order of the questions collection, which is
// not required to match Num.
type Question struct {
	Num         int        `bson:"num" json:"num"`
	Title       string     `bson:"title" json:"title"`
	Writeup     string     `bson:"writeup" json:"writeup"`
	StarterCode string     `bson:"starter_code,omitempty" json:"starter_code,omitempty"`
	TestCases   []TestCase `bson:"test_cases,omitempty" json:"test_cases,omitempty"`
}

// TestCase is a public sample case shipped with a question. Hidden grading
// cases never leave the grader and are not modeled here.
type TestCase struct {
	Input    string `bson:"input" json:"input"`
	Expected string `bson:"expected" json:"expected"`
}

// QuestionCatalog is the GET /api/questions response payload: the full
// ordered question list plus the documents shared across all questions.
type QuestionCatalog struct {
	Questions  []Question `json:"questions"`
	GlobalDocs []Document `json:"global_docs"`
}
