package handlers

import (
	"net/http"
	"strconv"
)

const (
	defaultNewsLimit = 10
	maxNewsLimit     = 100
)

// GetNews lists published posts for the website, newest first.
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = h.defaultLanguage
	}
	limit := parseLimit(r.URL.Query().Get("limit"))

	posts, err := h.news.ListPublished(r.Context(), language, limit)
	if err != nil {
		h.logger.Error("failed to list published posts", "language", language, "error", err)
		h.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.JSON(w, http.StatusOK, posts)
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultNewsLimit
	}
	if limit > maxNewsLimit {
		return maxNewsLimit
	}
	return limit
}
