package marvel

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/marvelgate/marvelgate/internal/platform/httpx"
	"github.com/marvelgate/marvelgate/internal/shared"
)

// Handler serves the relayed character and comic resources.
type Handler struct {
	logger     *slog.Logger
	characters *CharacterRepository
	comics     *ComicRepository
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, characters *CharacterRepository, comics *ComicRepository) *Handler {
	return &Handler{logger: logger, characters: characters, comics: comics}
}

// MountCharacterRoutes registers character routes on the provided router.
func (h *Handler) MountCharacterRoutes(r chi.Router) {
	r.Get("/", h.listCharacters)
	r.Get("/{characterId}", h.characterInfo)
}

// MountComicRoutes registers comic routes on the provided router.
func (h *Handler) MountComicRoutes(r chi.Router) {
	r.Get("/", h.listComics)
	r.Get("/{comicId}", h.comicByID)
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	page, err := shared.ParsePageQuery(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	criteria := CharacterCriteria{Name: r.URL.Query().Get("name")}
	if criteria.Comics, err = parseIntList(r.URL.Query().Get("comics")); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "comics must be a comma-separated list of ids")
		return
	}
	if criteria.Series, err = parseIntList(r.URL.Query().Get("series")); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "series must be a comma-separated list of ids")
		return
	}

	characters, err := h.characters.FindAll(r.Context(), page, criteria)
	if err != nil {
		h.respondRelayError(w, "list characters", err)
		return
	}
	httpx.JSON(w, http.StatusOK, characters)
}

func (h *Handler) characterInfo(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "characterId")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "characterId must be a positive integer")
		return
	}
	info, err := h.characters.FindInfoByID(r.Context(), characterID)
	if err != nil {
		h.respondRelayError(w, "character info", err)
		return
	}
	httpx.JSON(w, http.StatusOK, info)
}

func (h *Handler) listComics(w http.ResponseWriter, r *http.Request) {
	page, err := shared.ParsePageQuery(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var criteria ComicCriteria
	if raw := r.URL.Query().Get("characterId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "characterId must be a positive integer")
			return
		}
		criteria.CharacterID = id
	}

	comics, err := h.comics.FindAll(r.Context(), page, criteria)
	if err != nil {
		h.respondRelayError(w, "list comics", err)
		return
	}
	httpx.JSON(w, http.StatusOK, comics)
}

func (h *Handler) comicByID(w http.ResponseWriter, r *http.Request) {
	comicID, err := pathID(r, "comicId")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "comicId must be a positive integer")
		return
	}
	comic, err := h.comics.FindByID(r.Context(), comicID)
	if err != nil {
		h.respondRelayError(w, "comic by id", err)
		return
	}
	httpx.JSON(w, http.StatusOK, comic)
}

func (h *Handler) respondRelayError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrUpstream) {
		if h.logger != nil {
			h.logger.Error("upstream relay failed", slog.String("op", op), slog.Any("error", err))
		}
		httpx.Problem(w, http.StatusBadGateway, "Upstream Error", "")
		return
	}
	if h.logger != nil && !errors.Is(err, shared.ErrNotFound) {
		h.logger.Error("relay failed", slog.String("op", op), slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func parseIntList(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
