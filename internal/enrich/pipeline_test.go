package enrich

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"newsroom/internal/domain"
	"newsroom/internal/extract"
	"newsroom/internal/tagging"
)

type memStore struct {
	mu       sync.Mutex
	articles map[string]domain.Article
	upserts  int
}

func (m *memStore) Get(_ context.Context, id string) (*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	return &a, nil
}

func (m *memStore) Upsert(_ context.Context, p domain.ArticlePatch) (*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	var existing *domain.Article
	if a, ok := m.articles[p.ID]; ok {
		existing = &a
	}
	merged := domain.Merge(existing, p, time.Now())
	m.articles[p.ID] = merged
	return &merged, nil
}

type fakeExtractor struct {
	page *extract.Page
	err  error
	hint string
}

func (f *fakeExtractor) Extract(_ context.Context, _ string, hint string) (*extract.Page, error) {
	f.hint = hint
	return f.page, f.err
}

type fakeProvider struct {
	summary     string
	summaryErr  map[string]error
	translation string
	image       []byte
	calls       []string
	inputs      []string
}

func (f *fakeProvider) Summarize(_ context.Context, text string) (string, error) {
	f.calls = append(f.calls, "summarize")
	f.inputs = append(f.inputs, text)
	for marker, err := range f.summaryErr {
		if strings.Contains(text, marker) {
			return "", err
		}
	}
	return f.summary, nil
}

func (f *fakeProvider) TranslateTitle(context.Context, string) (string, error) {
	f.calls = append(f.calls, "translate")
	return f.translation, nil
}

func (f *fakeProvider) GenerateText(context.Context, string) (string, error) {
	f.calls = append(f.calls, "text")
	return "a skyline at dusk", nil
}

func (f *fakeProvider) GenerateImage(context.Context, string) ([]byte, error) {
	f.calls = append(f.calls, "image")
	if f.image == nil {
		return nil, errors.New("capability not supported by provider")
	}
	return f.image, nil
}

type fakeObjects struct {
	key         string
	contentType string
}

func (f *fakeObjects) Put(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	f.key = key
	f.contentType = contentType
	return "https://cdn.example.com/bucket/" + key, nil
}

type PipelineTestSuite struct {
	suite.Suite
	store     *memStore
	extractor *fakeExtractor
	provider  *fakeProvider
	objects   *fakeObjects
	pipeline  *Pipeline
}

const longBody = "The central bank raised interest rates by a quarter point on Tuesday, citing persistent inflation."

func (s *PipelineTestSuite) SetupTest() {
	s.store = &memStore{articles: map[string]domain.Article{}}
	s.extractor = &fakeExtractor{page: &extract.Page{Text: longBody, Image: "https://img.example.com/page.jpg"}}
	s.provider = &fakeProvider{summary: "금리가 인상되었다.", translation: "중앙은행 금리 인상"}
	s.objects = &fakeObjects{}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.pipeline = NewPipeline(
		s.store,
		s.extractor,
		s.provider,
		s.objects,
		tagging.NewEngine([]tagging.Rule{{Tag: "Economy", Keywords: []string{"interest rates"}}}),
		Config{MinInputChars: 50, MaxInputChars: 3000, TargetLocale: "ko", TargetScriptThreshold: 2},
		logger,
	)
	s.pipeline.now = func() time.Time { return time.UnixMilli(1700000000000) }
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) seed(link, title string) *domain.Article {
	a, _ := s.store.Upsert(context.Background(), domain.ArticlePatch{
		ID:            domain.ComputeID(link),
		Title:         &title,
		Link:          &link,
		Tags:          &[]string{"Finance"},
		InitialStatus: domain.Ptr(domain.StatusPending),
	})
	return a
}

func (s *PipelineTestSuite) TestSummarize_Success() {
	a := s.seed("https://example.com/rates", "Bank raises rates")

	res := s.pipeline.Summarize(context.Background(), a)

	s.Equal(domain.OutcomeSucceeded, res.Outcome)
	stored, _ := s.store.Get(context.Background(), a.ID)
	s.Equal("금리가 인상되었다.", *stored.Summary)
	s.True(stored.HasSummary)
	s.Equal([]string{"Finance", "Economy"}, stored.Tags)
	s.Equal("https://img.example.com/page.jpg", *stored.Image)
	s.Equal(domain.StatusPending, stored.Status)
	s.True(strings.HasPrefix(s.provider.inputs[0], "Bank raises rates\n\n"))
}

func (s *PipelineTestSuite) TestSummarize_ShortInputSkipsProvider() {
	a := s.seed("https://example.com/short", "Tiny")
	s.extractor.page = &extract.Page{Text: "Too short."}

	res := s.pipeline.Summarize(context.Background(), a)

	s.Equal(domain.OutcomeSkipped, res.Outcome)
	s.Empty(s.provider.calls)
	stored, _ := s.store.Get(context.Background(), a.ID)
	s.Nil(stored.Summary)
	s.False(stored.HasSummary)
}

func (s *PipelineTestSuite) TestSummarize_TruncatesInput() {
	a := s.seed("https://example.com/long", "Long")
	s.extractor.page = &extract.Page{Text: strings.Repeat("가", 5000)}

	s.pipeline.Summarize(context.Background(), a)

	s.Require().Len(s.provider.inputs, 1)
	s.Equal(3000, len([]rune(s.provider.inputs[0])))
}

func (s *PipelineTestSuite) TestSummarize_FallsBackToDescription() {
	a := s.seed("https://example.com/desc", "Bank raises rates")
	a.Description = domain.Ptr(longBody)
	s.extractor.page = nil
	s.extractor.err = errors.New("403 forbidden")

	res := s.pipeline.Summarize(context.Background(), a)

	s.Equal(domain.OutcomeSucceeded, res.Outcome)
	s.Contains(s.provider.inputs[0], "central bank")
}

func (s *PipelineTestSuite) TestSummarize_ProviderFailurePersistsNothing() {
	a := s.seed("https://example.com/fail", "Bank raises rates")
	s.provider.summaryErr = map[string]error{"Bank": errors.New("timeout")}
	before := s.store.upserts

	res := s.pipeline.Summarize(context.Background(), a)

	s.Equal(domain.OutcomeFailed, res.Outcome)
	s.Equal(before, s.store.upserts)
}

func (s *PipelineTestSuite) TestBulkSummarize_IsolatesFailures() {
	ok := s.seed("https://example.com/ok", "Good one")
	bad := s.seed("https://example.com/bad", "Broken one")
	s.provider.summaryErr = map[string]error{"Broken": errors.New("model overloaded")}

	result, err := s.pipeline.BulkSummarize(context.Background(), []string{bad.ID, "missing", ok.ID})

	s.NoError(err)
	s.Equal(1, result.Succeeded)
	s.Equal(2, result.Failed)
	s.Require().Len(result.Results, 3)
	s.Equal(domain.OutcomeFailed, result.Results[0].Outcome)
	s.Equal("missing", result.Results[1].ArticleID)
	s.Equal(domain.OutcomeSucceeded, result.Results[2].Outcome)
}

func (s *PipelineTestSuite) TestTranslateThenRevert_RestoresTitle() {
	a := s.seed("https://example.com/t", "Central bank raises rates")
	ctx := context.Background()

	res, err := s.pipeline.TranslateTitle(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(domain.OutcomeSucceeded, res.Outcome)
	s.Equal("중앙은행 금리 인상", res.Article.Title)
	s.Equal("Central bank raises rates", *res.Article.OriginalTitle)

	res, err = s.pipeline.RevertTitle(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(domain.OutcomeSucceeded, res.Outcome)
	s.Equal("Central bank raises rates", res.Article.Title)
	s.Nil(res.Article.OriginalTitle)
}

func (s *PipelineTestSuite) TestTranslate_KeepsFirstOriginal() {
	a := s.seed("https://example.com/twice", "Rates rise again")
	ctx := context.Background()
	_, err := s.store.Upsert(ctx, domain.ArticlePatch{
		ID:            a.ID,
		OriginalTitle: domain.Ptr("Die Zentralbank erhöht die Zinsen"),
	})
	s.Require().NoError(err)

	res, err := s.pipeline.TranslateTitle(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(domain.OutcomeSucceeded, res.Outcome)
	s.Equal("Die Zentralbank erhöht die Zinsen", *res.Article.OriginalTitle)

	res, err = s.pipeline.RevertTitle(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("Die Zentralbank erhöht die Zinsen", res.Article.Title)
}

func (s *PipelineTestSuite) TestTranslate_SkipsTargetScript() {
	a := s.seed("https://example.com/ko", "한국은행 기준금리 동결")

	res, err := s.pipeline.TranslateTitle(context.Background(), a.ID)

	s.NoError(err)
	s.Equal(domain.OutcomeSkipped, res.Outcome)
	s.Empty(s.provider.calls)
}

func (s *PipelineTestSuite) TestTranslate_SameTitleFails() {
	a := s.seed("https://example.com/same", "OpenAI")
	s.provider.translation = "OpenAI"

	res, err := s.pipeline.TranslateTitle(context.Background(), a.ID)

	s.NoError(err)
	s.Equal(domain.OutcomeFailed, res.Outcome)
	stored, _ := s.store.Get(context.Background(), a.ID)
	s.Nil(stored.OriginalTitle)
}

func (s *PipelineTestSuite) TestRevert_NothingToRevert() {
	a := s.seed("https://example.com/n", "Plain")

	_, err := s.pipeline.RevertTitle(context.Background(), a.ID)

	s.ErrorIs(err, domain.ErrNothingToRevert)
}

func (s *PipelineTestSuite) TestTranslate_UnknownArticle() {
	_, err := s.pipeline.TranslateTitle(context.Background(), "nope")

	s.ErrorIs(err, domain.ErrArticleNotFound)
}

func (s *PipelineTestSuite) TestGenerateThumbnail() {
	a := s.seed("https://example.com/img", "Skyline")
	s.provider.image = []byte{0x89, 'P', 'N', 'G'}

	res, err := s.pipeline.GenerateThumbnail(context.Background(), a.ID)

	s.Require().NoError(err)
	s.Equal(domain.OutcomeSucceeded, res.Outcome)
	s.Equal("thumbnails/"+a.ID+"/1700000000000.png", s.objects.key)
	s.Equal("image/png", s.objects.contentType)
	s.Equal("https://cdn.example.com/bucket/"+s.objects.key, *res.Article.Image)
	s.Equal([]string{"text", "image"}, s.provider.calls)
}

func (s *PipelineTestSuite) TestGenerateThumbnail_Unsupported() {
	a := s.seed("https://example.com/img2", "Skyline")

	res, err := s.pipeline.GenerateThumbnail(context.Background(), a.ID)

	s.NoError(err)
	s.Equal(domain.OutcomeFailed, res.Outcome)
	s.Empty(s.objects.key)
}

func (s *PipelineTestSuite) TestGenerateThumbnail_NoObjectStore() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	pipeline := NewPipeline(s.store, s.extractor, s.provider, nil, tagging.NewEngine(nil), Config{}, logger)
	a := s.seed("https://example.com/img3", "Skyline")

	res, err := pipeline.GenerateThumbnail(context.Background(), a.ID)

	s.NoError(err)
	s.Equal(domain.OutcomeFailed, res.Outcome)
	s.Equal("object storage is not configured", res.Detail)
	s.Empty(s.provider.calls)

	extracted, err := pipeline.ExtractThumbnail(context.Background(), a.ID)
	s.NoError(err)
	s.Equal(domain.OutcomeSucceeded, extracted.Outcome)
}

func (s *PipelineTestSuite) TestThumbnail_LockedImageSkipped() {
	a := s.seed("https://example.com/locked", "Locked")
	_, _ = s.store.Upsert(context.Background(), domain.ArticlePatch{
		ID: a.ID, Image: domain.Ptr("https://editor/pick.jpg"), ImageLocked: domain.Ptr(true), Editor: true,
	})

	res, err := s.pipeline.ExtractThumbnail(context.Background(), a.ID)

	s.NoError(err)
	s.Equal(domain.OutcomeSkipped, res.Outcome)
	stored, _ := s.store.Get(context.Background(), a.ID)
	s.Equal("https://editor/pick.jpg", *stored.Image)
}

func (s *PipelineTestSuite) TestExtractThumbnail() {
	a := s.seed("https://example.com/page", "Page")

	res, err := s.pipeline.ExtractThumbnail(context.Background(), a.ID)

	s.NoError(err)
	s.Equal(domain.OutcomeSucceeded, res.Outcome)
	s.Equal("https://img.example.com/page.jpg", *res.Article.Image)
	s.Empty(s.extractor.hint)
	s.Empty(s.provider.calls)
}

func TestScriptRunes(t *testing.T) {
	cases := []struct {
		text   string
		locale string
		want   int
	}{
		{"Hello world", "ko", 0},
		{"삼성 earnings", "ko", 2},
		{"東京の天気", "ja", 5},
		{"东京天气", "zh", 4},
		{"anything", "fr", 0},
	}
	for _, c := range cases {
		if got := ScriptRunes(c.text, c.locale); got != c.want {
			t.Errorf("ScriptRunes(%q, %q) = %d, want %d", c.text, c.locale, got, c.want)
		}
	}
}
