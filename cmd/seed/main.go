package main

import (
	"context"
	"log"
	"sotestenv/internal/config"
	"sotestenv/internal/model"
	"sotestenv/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Development data only. Production events load their own question sets.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	questionRepo := repository.NewQuestionRepo(db)
	documentRepo := repository.NewDocumentRepo(db)

	if err := questionRepo.DeleteAll(ctx); err != nil {
		log.Fatalf("failed to clear questions: %v", err)
	}
	if err := documentRepo.DeleteAll(ctx); err != nil {
		log.Fatalf("failed to clear documents: %v", err)
	}

	questions := []model.Question{
		{
			Num:     1,
			Title:   "Word Count",
			Writeup: "# Word Count\n\nWrite a function `word_count(text)` that returns the number of words in `text`. Words are separated by one or more spaces.\n\n## Example\n\n```\nword_count(\"the quick brown fox\") == 4\n```",
			StarterCode: "def word_count(text):\n    # TODO: implement\n    pass\n",
			TestCases: []model.TestCase{
				{Input: "the quick brown fox", Expected: "4"},
				{Input: "  spaced   out  ", Expected: "2"},
			},
		},
		{
			Num:     2,
			Title:   "Balanced Brackets",
			Writeup: "# Balanced Brackets\n\nWrite a function `balanced(s)` that returns `True` when every bracket in `s` is closed in the correct order. Consider `()`, `[]`, and `{}`.\n\n## Example\n\n```\nbalanced(\"([]{})\") == True\nbalanced(\"(]\") == False\n```",
			StarterCode: "def balanced(s):\n    # TODO: implement\n    pass\n",
			TestCases: []model.TestCase{
				{Input: "([]{})", Expected: "True"},
				{Input: "(]", Expected: "False"},
			},
		},
		{
			Num:     3,
			Title:   "Run-Length Encoding",
			Writeup: "# Run-Length Encoding\n\nWrite a function `encode(s)` that compresses runs of repeated characters into `<char><count>` pairs.\n\n## Example\n\n```\nencode(\"aaabcc\") == \"a3b1c2\"\n```",
			StarterCode: "def encode(s):\n    # TODO: implement\n    pass\n",
			TestCases: []model.TestCase{
				{Input: "aaabcc", Expected: "a3b1c2"},
			},
		},
	}

	for i := range questions {
		if err := questionRepo.Create(ctx, &questions[i]); err != nil {
			log.Fatalf("failed to insert question %d: %v", questions[i].Num, err)
		}
	}

	docs := []model.Document{
		{
			ID:      uuid.New().String(),
			Title:   "Python Quick Reference",
			Content: "# Python Quick Reference\n\nAllowed builtins: `len`, `range`, `sorted`, `enumerate`, `zip`.\nStandard library imports are disabled in the grading environment.",
		},
		{
			ID:      uuid.New().String(),
			Title:   "Submission Rules",
			Content: "# Submission Rules\n\nOne file per question. Your last submission before the end time is the one graded.",
		},
	}

	for i := range docs {
		if err := documentRepo.Create(ctx, &docs[i]); err != nil {
			log.Fatalf("failed to insert document %q: %v", docs[i].Title, err)
		}
	}

	log.Printf("seeded %d questions and %d documents", len(questions), len(docs))
}
