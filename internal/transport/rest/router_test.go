package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sotestenv/internal/model"
	"sotestenv/internal/service"
	"sotestenv/pkg/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubQuestionRepo struct {
	questions []model.Question
}

func (s *stubQuestionRepo) Create(ctx context.Context, q *model.Question) error { return nil }

func (s *stubQuestionRepo) GetByNum(ctx context.Context, num int) (*model.Question, error) {
	for i := range s.questions {
		if s.questions[i].Num == num {
			return &s.questions[i], nil
		}
	}
	return nil, nil
}

func (s *stubQuestionRepo) GetAll(ctx context.Context) ([]model.Question, error) {
	return s.questions, nil
}

func (s *stubQuestionRepo) DeleteAll(ctx context.Context) error { return nil }

type stubDocumentRepo struct {
	docs []model.Document
}

func (s *stubDocumentRepo) Create(ctx context.Context, d *model.Document) error { return nil }

func (s *stubDocumentRepo) GetAll(ctx context.Context) ([]model.Document, error) {
	return s.docs, nil
}

func (s *stubDocumentRepo) DeleteAll(ctx context.Context) error { return nil }

type noopCache struct{}

func (noopCache) Set(ctx context.Context, c *model.QuestionCatalog) error { return nil }

func (noopCache) Get(ctx context.Context) (*model.QuestionCatalog, error) { return nil, nil }

func (noopCache) Invalidate(ctx context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *service.AuthService) {
	t.Helper()

	authSvc := service.NewAuthService("test-secret")
	questionSvc := service.NewQuestionService(
		&stubQuestionRepo{questions: []model.Question{
			{Num: 1, Title: "Word Count", Writeup: "# Word Count", StarterCode: "def word_count(text): pass"},
			{Num: 2, Title: "Balanced Brackets", Writeup: "# Balanced Brackets"},
		}},
		&stubDocumentRepo{docs: []model.Document{
			{ID: "d1", Title: "Rules", Content: "Read carefully."},
		}},
		noopCache{},
		zap.NewNop(),
	)

	return NewRouter(&Container{
		AuthService:     authSvc,
		QuestionService: questionSvc,
	}), authSvc
}

func TestGetQuestionsRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set("Authorization", "Bearer bogus")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetQuestionsPayload(t *testing.T) {
	router, authSvc := newTestRouter(t)

	token, err := authSvc.GenerateTeamToken("B-14")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload model.QuestionCatalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Questions, 2)
	assert.Equal(t, 1, payload.Questions[0].Num)
	require.Len(t, payload.GlobalDocs, 1)
	assert.Equal(t, "Rules", payload.GlobalDocs[0].Title)
}

func TestGetSingleQuestion(t *testing.T) {
	router, authSvc := newTestRouter(t)

	token, err := authSvc.GenerateTeamToken("B-14")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/questions/2", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var q model.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, "Balanced Brackets", q.Title)

	req = httptest.NewRequest(http.MethodGet, "/api/questions/9", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// The catalog client and the questions API agree on the wire format end to
// end: fetch through a real server, then drive the selection state.
func TestCatalogClientAgainstRouter(t *testing.T) {
	router, authSvc := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	token, err := authSvc.GenerateTeamToken("B-14")
	require.NoError(t, err)

	state := catalog.NewState()
	client := catalog.NewClient(srv.URL, token, srv.Client())
	catalog.NewSession(client, state, nil).Activate(context.Background())

	require.NotNil(t, state.Current())
	assert.Equal(t, 1, state.Current().Num)
	assert.Equal(t, "# Word Count", state.Current().Writeup)
	assert.Equal(t, 2, state.Count())

	selected := state.SelectByNavIndex(1)
	require.NotNil(t, selected)
	assert.Equal(t, "# Balanced Brackets", selected.Writeup)

	// starter code passes through untouched for the submission widget
	var passthrough struct {
		StarterCode string `json:"starter_code"`
	}
	require.NoError(t, json.Unmarshal(state.Current().Raw, &passthrough))
	assert.Empty(t, passthrough.StarterCode)
	require.NoError(t, json.Unmarshal(state.SelectByNavIndex(0).Raw, &passthrough))
	assert.Equal(t, "def word_count(text): pass", passthrough.StarterCode)
}
