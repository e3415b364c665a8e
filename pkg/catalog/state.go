package catalog

import "sync"

// State is the single source of truth for what the session currently shows:
// the held catalog, the shared documents, and the selected question. Before
// Initialize runs (or after a failed fetch) every accessor returns its
// zero-state default; nothing here ever panics or errors.
//
// The UI event loop is the only caller of SelectByNavIndex; the fetch
// completion goroutine is the only other writer. A mutex keeps the two
// apart, and no operation ever exposes a partially updated selection.
type State struct {
	mu        sync.RWMutex
	questions []Question
	docs      []Document
	selected  *Question
}

// NewState creates an empty selection state
func NewState() *State {
	return &State{}
}

// Initialize installs a freshly fetched catalog and document set, replacing
// anything already held, and selects the first question in display order.
// An empty catalog leaves the selection nil.
func (s *State) Initialize(questions []Question, docs []Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = questions
	s.docs = docs
	if len(s.questions) > 0 {
		s.selected = &s.questions[0]
	} else {
		s.selected = nil
	}
}

// SelectByNavIndex selects the question whose num corresponds to the given
// zero-based sidebar position. A position that matches no held question
// clears the selection; that is a normal outcome, not an error.
func (s *State) SelectByNavIndex(navIndex int) *Question {
	num := NavIndexToNum(navIndex)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	for i := range s.questions {
		if s.questions[i].Num == num {
			s.selected = &s.questions[i]
			break
		}
	}
	return s.selected
}

// Current returns the selected question, or nil when nothing is selected.
func (s *State) Current() *Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Documents returns the shared document set held for the session.
func (s *State) Documents() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs
}

// Count returns the number of questions held; the sidebar renders one
// entry per question.
func (s *State) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}
