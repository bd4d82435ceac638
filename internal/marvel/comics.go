package marvel

import (
	"context"
	"net/url"
	"strconv"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// ComicCriteria narrows a comic listing.
type ComicCriteria struct {
	CharacterID int64
}

func (c ComicCriteria) apply(params url.Values) {
	if c.CharacterID > 0 {
		params.Set("characters", strconv.FormatInt(c.CharacterID, 10))
	}
}

// ComicRepository relays comic reads from the provider.
type ComicRepository struct {
	client *Client
	cache  *Cache
}

// NewComicRepository constructs a ComicRepository.
func NewComicRepository(client *Client, cache *Cache) *ComicRepository {
	return &ComicRepository{client: client, cache: cache}
}

// FindAll lists comics matching the criteria within the page bounds.
func (r *ComicRepository) FindAll(ctx context.Context, page shared.PageQuery, criteria ComicCriteria) ([]Comic, error) {
	params := pageParams(page)
	criteria.apply(params)

	body, err := r.fetch(ctx, "/comics", params)
	if err != nil {
		return nil, err
	}
	return decodeComics(body)
}

// FindByID returns one comic.
func (r *ComicRepository) FindByID(ctx context.Context, comicID int64) (*Comic, error) {
	body, err := r.fetch(ctx, "/comics/"+strconv.FormatInt(comicID, 10), url.Values{})
	if err != nil {
		return nil, err
	}
	comics, err := decodeComics(body)
	if err != nil {
		return nil, err
	}
	if len(comics) == 0 {
		return nil, shared.ErrNotFound
	}
	return &comics[0], nil
}

func (r *ComicRepository) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return r.cache.FetchBytes(ctx, cacheKey(path, params), func(ctx context.Context) ([]byte, error) {
		return r.client.Get(ctx, path, params)
	})
}
