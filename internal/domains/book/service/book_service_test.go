package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilfrek386-a11y/library/internal/config"
	"github.com/lilfrek386-a11y/library/internal/domains/book"
	"github.com/lilfrek386-a11y/library/pkg/cache"
)

// fakeBookRepo is an in-memory book.Repository for service tests.
type fakeBookRepo struct {
	books  map[int64]book.Book
	nextID int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[int64]book.Book), nextID: 1}
}

func (r *fakeBookRepo) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBookRepo) GetAll(ctx context.Context) ([]book.Book, error) {
	out := make([]book.Book, 0, len(r.books))
	for id := int64(1); id < r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = *b
	return b, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	if _, ok := r.books[b.ID]; !ok {
		return nil, book.ErrConflict
	}
	r.books[b.ID] = *b
	return b, nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrConflict
	}
	delete(r.books, b.ID)
	return nil
}

func (r *fakeBookRepo) DeleteAll(ctx context.Context) error {
	r.books = make(map[int64]book.Book)
	r.nextID = 1
	return nil
}

// fakeAuthorChecker reports a fixed set of live author ids.
type fakeAuthorChecker struct {
	existing map[int64]bool
}

func (c *fakeAuthorChecker) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return c.existing[id], nil
}

var testNamespaces = config.NamespaceConfig{
	AuthorsList: "authors_list",
	Author:      "author",
	BooksList:   "books_list",
	Book:        "book",
}

func newTestBookService(t *testing.T, authorIDs ...int64) (book.Service, *fakeBookRepo, *cache.Memory) {
	t.Helper()

	existing := make(map[int64]bool, len(authorIDs))
	for _, id := range authorIDs {
		existing[id] = true
	}

	repo := newFakeBookRepo()
	mem := cache.NewMemory()
	validator := book.NewAuthorValidator(&fakeAuthorChecker{existing: existing})
	svc := NewBookService(repo, validator, cache.NewInvalidator(mem), testNamespaces)
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
func int64Ptr(n int64) *int64 { return &n }

func TestBookService_Create(t *testing.T) {
	svc, repo, _ := newTestBookService(t, 1)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:    "Dead Souls",
		Year:     1842,
		AuthorID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Dead Souls", created.Title)
	assert.Len(t, repo.books, 1)
}

func TestBookService_Create_MissingAuthor(t *testing.T) {
	svc, repo, _ := newTestBookService(t)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:    "Orphaned",
		Year:     2000,
		AuthorID: 42,
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, book.ErrAuthorRefNotFound)
	assert.Empty(t, repo.books, "nothing is written when the reference fails")
}

func TestBookService_Create_InvalidatesListOnly(t *testing.T) {
	svc, _, mem := newTestBookService(t, 1)
	seedCache(t, mem, "books_list:aaaa", "book:5:bbbb")

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title: "Dead Souls", Year: 1842, AuthorID: 1,
	})
	require.NoError(t, err)

	assert.False(t, cacheHas(t, mem, "books_list:aaaa"))
	assert.True(t, cacheHas(t, mem, "book:5:bbbb"))
}

func TestBookService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestBookService(t)

	got, err := svc.GetByID(context.Background(), 99)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookService_Update_ChecksAuthor(t *testing.T) {
	svc, _, _ := newTestBookService(t, 1)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title: "Dead Souls", Year: 1842, AuthorID: 1,
	})
	require.NoError(t, err)

	// Full replace always carries author_id, so the check always runs.
	_, err = svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{
		Title: "Dead Souls, vol. 2", Year: 1852, AuthorID: 99,
	})
	assert.ErrorIs(t, err, book.ErrAuthorRefNotFound)
}

func TestBookService_UpdatePartial_SkipsAuthorCheckWhenOmitted(t *testing.T) {
	svc, _, _ := newTestBookService(t, 1)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title: "Dead Souls", Year: 1842, AuthorID: 1,
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePartial(context.Background(), created.ID, &book.UpdateBookPartialRequest{
		Title: strPtr("Dead Souls (revised)"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dead Souls (revised)", updated.Title)
	assert.Equal(t, int64(1), updated.AuthorID)
}

func TestBookService_UpdatePartial_ChecksAuthorWhenSupplied(t *testing.T) {
	svc, _, _ := newTestBookService(t, 1)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title: "Dead Souls", Year: 1842, AuthorID: 1,
	})
	require.NoError(t, err)

	_, err = svc.UpdatePartial(context.Background(), created.ID, &book.UpdateBookPartialRequest{
		AuthorID: int64Ptr(99),
	})
	assert.ErrorIs(t, err, book.ErrAuthorRefNotFound)
}

func TestBookService_Update_InvalidatesListAndEntity(t *testing.T) {
	svc, _, mem := newTestBookService(t, 1)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title: "Dead Souls", Year: 1842, AuthorID: 1,
	})
	require.NoError(t, err)

	seedCache(t, mem,
		"books_list:aaaa",
		"book:1:bbbb",
		"book:2:cccc",
	)

	_, err = svc.UpdatePartial(context.Background(), created.ID, &book.UpdateBookPartialRequest{
		Year: func() *int { y := 1843; return &y }(),
	})
	require.NoError(t, err)

	assert.False(t, cacheHas(t, mem, "books_list:aaaa"))
	assert.False(t, cacheHas(t, mem, "book:1:bbbb"))
	assert.True(t, cacheHas(t, mem, "book:2:cccc"))
}

func TestBookService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newTestBookService(t)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookService_DeleteAll(t *testing.T) {
	svc, repo, mem := newTestBookService(t, 1)

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title: "Dead Souls", Year: 1842, AuthorID: 1,
	})
	require.NoError(t, err)

	seedCache(t, mem,
		"books_list:aaaa",
		"book:1:bbbb",
		"authors_list:cccc",
	)

	require.NoError(t, svc.DeleteAll(context.Background()))

	assert.Empty(t, repo.books)
	assert.False(t, cacheHas(t, mem, "books_list:aaaa"))
	assert.False(t, cacheHas(t, mem, "book:1:bbbb"))
	assert.True(t, cacheHas(t, mem, "authors_list:cccc"), "author namespaces survive a books-only wipe")
}
