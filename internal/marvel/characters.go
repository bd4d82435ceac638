package marvel

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/marvelgate/marvelgate/internal/shared"
)

// CharacterCriteria narrows a character listing.
type CharacterCriteria struct {
	Name   string
	Comics []int
	Series []int
}

func (c CharacterCriteria) apply(params url.Values) {
	if strings.TrimSpace(c.Name) != "" {
		params.Set("name", c.Name)
	}
	if len(c.Comics) > 0 {
		params.Set("comics", joinInts(c.Comics))
	}
	if len(c.Series) > 0 {
		params.Set("series", joinInts(c.Series))
	}
}

// CharacterRepository relays character reads from the provider.
type CharacterRepository struct {
	client *Client
	cache  *Cache
}

// NewCharacterRepository constructs a CharacterRepository.
func NewCharacterRepository(client *Client, cache *Cache) *CharacterRepository {
	return &CharacterRepository{client: client, cache: cache}
}

// FindAll lists characters matching the criteria within the page bounds.
func (r *CharacterRepository) FindAll(ctx context.Context, page shared.PageQuery, criteria CharacterCriteria) ([]Character, error) {
	params := pageParams(page)
	criteria.apply(params)

	body, err := r.fetch(ctx, "/characters", params)
	if err != nil {
		return nil, err
	}
	return decodeCharacters(body)
}

// FindInfoByID returns the detail projection for one character.
func (r *CharacterRepository) FindInfoByID(ctx context.Context, characterID int64) (*CharacterInfo, error) {
	body, err := r.fetch(ctx, "/characters/"+strconv.FormatInt(characterID, 10), url.Values{})
	if err != nil {
		return nil, err
	}
	infos, err := decodeCharacterInfos(body)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, shared.ErrNotFound
	}
	return &infos[0], nil
}

func (r *CharacterRepository) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return r.cache.FetchBytes(ctx, cacheKey(path, params), func(ctx context.Context) ([]byte, error) {
		return r.client.Get(ctx, path, params)
	})
}

func pageParams(page shared.PageQuery) url.Values {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(page.Offset))
	params.Set("limit", strconv.Itoa(page.Limit))
	return params
}

// cacheKey is stable because url.Values.Encode sorts by key.
func cacheKey(path string, params url.Values) string {
	return "marvel:" + path + "?" + params.Encode()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
