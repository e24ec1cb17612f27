package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilfrek386-a11y/library/internal/config"
	"github.com/lilfrek386-a11y/library/internal/domains/author"
	"github.com/lilfrek386-a11y/library/pkg/cache"
)

// fakeAuthorRepo is an in-memory author.Repository for service tests.
type fakeAuthorRepo struct {
	authors map[int64]author.Author
	nextID  int64
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[int64]author.Author), nextID: 1}
}

func (r *fakeAuthorRepo) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAuthorRepo) GetAll(ctx context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(r.authors))
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.authors[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	a.ID = r.nextID
	r.nextID++
	r.authors[a.ID] = *a
	return a, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	if _, ok := r.authors[a.ID]; !ok {
		return nil, author.ErrConflict
	}
	r.authors[a.ID] = *a
	return a, nil
}

func (r *fakeAuthorRepo) Delete(ctx context.Context, a *author.Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return author.ErrConflict
	}
	delete(r.authors, a.ID)
	return nil
}

func (r *fakeAuthorRepo) DeleteAll(ctx context.Context) error {
	r.authors = make(map[int64]author.Author)
	r.nextID = 1
	return nil
}

func (r *fakeAuthorRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

var testNamespaces = config.NamespaceConfig{
	AuthorsList: "authors_list",
	Author:      "author",
	BooksList:   "books_list",
	Book:        "book",
}

func newTestAuthorService(t *testing.T) (author.Service, *fakeAuthorRepo, *cache.Memory) {
	t.Helper()
	repo := newFakeAuthorRepo()
	mem := cache.NewMemory()
	svc := NewAuthorService(repo, cache.NewInvalidator(mem), testNamespaces)
	return svc, repo, mem
}

func seedCache(t *testing.T, mem *cache.Memory, keys ...string) {
	t.Helper()
	ctx := context.Background()
	for _, key := range keys {
		require.NoError(t, mem.Set(ctx, key, "{}", time.Minute))
	}
}

func cacheHas(t *testing.T, mem *cache.Memory, key string) bool {
	t.Helper()
	var dest map[string]interface{}
	found, err := mem.Get(context.Background(), key, &dest)
	require.NoError(t, err)
	return found
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func createTestAuthor(t *testing.T, svc author.Service) *author.Author {
	t.Helper()
	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		FirstName: "Nikolai",
		LastName:  "Gogol",
		Age:       42,
		Bio:       strPtr("Wrote Dead Souls"),
		Email:     "gogol@example.com",
	})
	require.NoError(t, err)
	return created
}

func TestAuthorService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestAuthorService(t)

	got, err := svc.GetByID(context.Background(), 99)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorService_Create(t *testing.T) {
	svc, repo, _ := newTestAuthorService(t)

	created := createTestAuthor(t, svc)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Nikolai", created.FirstName)
	assert.Len(t, repo.authors, 1)
}

func TestAuthorService_Create_InvalidatesListOnly(t *testing.T) {
	svc, _, mem := newTestAuthorService(t)
	seedCache(t, mem, "authors_list:aaaa", "author:5:bbbb")

	createTestAuthor(t, svc)

	assert.False(t, cacheHas(t, mem, "authors_list:aaaa"))
	assert.True(t, cacheHas(t, mem, "author:5:bbbb"), "existing entity entries are untouched by create")
}

func TestAuthorService_Update_NotFound(t *testing.T) {
	svc, _, _ := newTestAuthorService(t)

	_, err := svc.Update(context.Background(), 99, &author.UpdateAuthorRequest{
		FirstName: "X", LastName: "Y", Age: 1, Email: "x@example.com",
	})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorService_Update_ReplacesAllFields(t *testing.T) {
	svc, _, _ := newTestAuthorService(t)
	created := createTestAuthor(t, svc)

	updated, err := svc.Update(context.Background(), created.ID, &author.UpdateAuthorRequest{
		FirstName: "Fyodor",
		LastName:  "Dostoevsky",
		Age:       59,
		Email:     "fyodor@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fyodor", updated.FirstName)
	assert.Equal(t, "Dostoevsky", updated.LastName)
	assert.Equal(t, 59, updated.Age)
	assert.Nil(t, updated.Bio, "full replace drops a bio the request omitted")
}

func TestAuthorService_UpdatePartial_RetainsOmittedFields(t *testing.T) {
	svc, _, _ := newTestAuthorService(t)
	created := createTestAuthor(t, svc)

	updated, err := svc.UpdatePartial(context.Background(), created.ID, &author.UpdateAuthorPartialRequest{
		Age: intPtr(43),
	})
	require.NoError(t, err)

	assert.Equal(t, 43, updated.Age)
	assert.Equal(t, "Nikolai", updated.FirstName)
	assert.Equal(t, "Gogol", updated.LastName)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Wrote Dead Souls", *updated.Bio)
	assert.Equal(t, "gogol@example.com", updated.Email)
}

func TestAuthorService_Update_InvalidatesListAndEntity(t *testing.T) {
	svc, _, mem := newTestAuthorService(t)
	created := createTestAuthor(t, svc)

	seedCache(t, mem,
		"authors_list:aaaa",
		"author:1:bbbb",
		"author:2:cccc",
	)

	_, err := svc.Update(context.Background(), created.ID, &author.UpdateAuthorRequest{
		FirstName: "N", LastName: "G", Age: 42, Email: "gogol@example.com",
	})
	require.NoError(t, err)

	assert.False(t, cacheHas(t, mem, "authors_list:aaaa"))
	assert.False(t, cacheHas(t, mem, "author:1:bbbb"))
	assert.True(t, cacheHas(t, mem, "author:2:cccc"), "other authors' entries survive")
}

func TestAuthorService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newTestAuthorService(t)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorService_Delete_ClearsBookNamespaces(t *testing.T) {
	svc, repo, mem := newTestAuthorService(t)
	created := createTestAuthor(t, svc)

	seedCache(t, mem,
		"authors_list:aaaa",
		"author:1:bbbb",
		"books_list:cccc",
		"book:7:dddd",
	)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	// Deleting an author cascades into books, so every book entry could be
	// stale afterwards.
	assert.False(t, cacheHas(t, mem, "authors_list:aaaa"))
	assert.False(t, cacheHas(t, mem, "author:1:bbbb"))
	assert.False(t, cacheHas(t, mem, "books_list:cccc"))
	assert.False(t, cacheHas(t, mem, "book:7:dddd"))
	assert.Empty(t, repo.authors)
}

func TestAuthorService_DeleteAll(t *testing.T) {
	svc, repo, mem := newTestAuthorService(t)
	createTestAuthor(t, svc)
	createTestAuthor(t, svc)

	seedCache(t, mem,
		"authors_list:aaaa",
		"author:1:bbbb",
		"author:2:cccc",
		"books_list:dddd",
		"book:1:eeee",
	)

	require.NoError(t, svc.DeleteAll(context.Background()))

	assert.Empty(t, repo.authors)
	assert.Equal(t, 0, mem.Len(), "wildcard invalidation clears every per-id entry")
}
