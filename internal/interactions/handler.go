package interactions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marvelgate/marvelgate/internal/authz"
	"github.com/marvelgate/marvelgate/internal/platform/httpx"
	"github.com/marvelgate/marvelgate/internal/shared"
)

// Handler serves read access to the interaction log.
type Handler struct {
	logger *slog.Logger
	repo   Repository
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, repo Repository) *Handler {
	return &Handler{logger: logger, repo: repo}
}

// MountRoutes registers interaction log routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(authz.RequireAuthority(shared.PermInteractionReadAll)).
		Get("/", h.list)
	r.With(authz.RequireAuthorityOrSelf("username", shared.PermInteractionReadByUsername, shared.PermInteractionReadOwn)).
		Get("/{username}", h.listByUsername)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := shared.ParsePageQuery(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	entries, err := h.repo.List(r.Context(), page)
	if err != nil {
		h.logger.Error("list interaction logs", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entriesPayload(entries))
}

func (h *Handler) listByUsername(w http.ResponseWriter, r *http.Request) {
	page, err := shared.ParsePageQuery(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	username := chi.URLParam(r, "username")
	entries, err := h.repo.ListByUsername(r.Context(), username, page)
	if err != nil {
		h.logger.Error("list interaction logs by username", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entriesPayload(entries))
}

// entriesPayload keeps empty listings as [] instead of null.
func entriesPayload(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	return entries
}
