package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nfrund/sitefront/internal/domain"
	"github.com/nfrund/sitefront/internal/graphql"
	"github.com/nfrund/sitefront/internal/pagination"
	"github.com/nfrund/sitefront/internal/queries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	body      string
	err       error
	query     string
	variables map[string]any
}

func (f *fakeFetcher) Do(ctx context.Context, query string, variables map[string]any) (*graphql.Response, error) {
	f.query = query
	f.variables = variables
	if f.err != nil {
		return nil, f.err
	}
	var resp graphql.Response
	if err := json.Unmarshal([]byte(f.body), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func TestRepository_Homepage(t *testing.T) {
	f := &fakeFetcher{body: `{"data":{"page":{"title":"Home","homepageBlocks":{"hero":{"title":"Hi"}}}}}`}
	repo := NewRepository(f, nil)

	page, err := repo.Homepage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, queries.Homepage, f.query)
	assert.Equal(t, "Hi", page.String("homepageBlocks.hero.title"))
}

func TestRepository_PartialDataWithErrors(t *testing.T) {
	f := &fakeFetcher{body: `{"data":{"page":{"title":"Home"}},"errors":[{"message":"field deprecated"}]}`}
	page, err := NewRepository(f, nil).Homepage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Home", page.String("title"))
}

func TestRepository_ErrorsOnly(t *testing.T) {
	f := &fakeFetcher{body: `{"errors":[{"message":"boom"}]}`}
	page, err := NewRepository(f, nil).Homepage(context.Background())

	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestRepository_TransportError(t *testing.T) {
	f := &fakeFetcher{err: &graphql.StatusError{StatusCode: 502}}
	_, err := NewRepository(f, nil).Homepage(context.Background())

	require.Error(t, err)
	assert.True(t, graphql.IsStatus(err, 502))
}

func TestRepository_Jobs(t *testing.T) {
	f := &fakeFetcher{body: `{"data":{"jobs":{
		"pageInfo":{"offsetPagination":{"total":30,"hasMore":true}},
		"nodes":[{"title":"Go Engineer","slug":"go-engineer"},{"title":"Designer","slug":"designer"}]
	}}}`}
	p := pagination.FromSearchParams("2", 12)

	page, err := NewRepository(f, nil).Jobs(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"offset": 12, "size": 12}, f.variables)
	assert.Len(t, page.Jobs, 2)
	assert.Equal(t, 30, page.Total)
	assert.True(t, page.HasMore)
	assert.Equal(t, p, page.Pagination)
}

func TestRepository_JobsUnknownTotal(t *testing.T) {
	f := &fakeFetcher{body: `{"data":{"jobs":{"nodes":[]}}}`}
	page, err := NewRepository(f, nil).Jobs(context.Background(), pagination.FromSearchParams("", 12))

	require.NoError(t, err)
	assert.Equal(t, -1, page.Total)
	assert.Empty(t, page.Jobs)
}

func TestRepository_Job(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := &fakeFetcher{body: `{"data":{"job":{"title":"Go Engineer","slug":"go-engineer"}}}`}
		job, err := NewRepository(f, nil).Job(context.Background(), "go-engineer")
		require.NoError(t, err)
		assert.Equal(t, "go-engineer", f.variables["slug"])
		assert.Equal(t, "Go Engineer", job.String("title"))
	})

	t.Run("missing is not found", func(t *testing.T) {
		f := &fakeFetcher{body: `{"data":{"job":null}}`}
		_, err := NewRepository(f, nil).Job(context.Background(), "nope")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestRepository_Global(t *testing.T) {
	t.Run("site settings with general fallback", func(t *testing.T) {
		f := &fakeFetcher{body: `{"data":{
			"generalSettings":{"title":"WP Title","description":"WP tagline"},
			"globalOptions":{"siteSettings":{"copyright":"© Acme","siteName":null}}
		}}`}
		global, err := NewRepository(f, nil).Global(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "WP Title", global.String("siteName"))
		assert.Equal(t, "WP tagline", global.String("tagline"))
		assert.Equal(t, "© Acme", global.String("copyright"))
	})

	t.Run("nothing configured", func(t *testing.T) {
		f := &fakeFetcher{body: `{"data":{"globalOptions":null}}`}
		global, err := NewRepository(f, nil).Global(context.Background())
		require.NoError(t, err)
		assert.Nil(t, global)
	})
}
