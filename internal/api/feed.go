package api

import (
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"feedhub/internal/domain"
)

type commentRequest struct {
	Body string `json:"body"`
}

type commentsCountResponse struct {
	CommentsCount int `json:"comments_count"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (s *Server) feedQuery(r *http.Request) (domain.FeedQuery, error) {
	values := r.URL.Query()

	q := domain.FeedQuery{
		Sort: domain.Sort{
			Field: domain.SortField(values.Get("sort")),
			Order: domain.SortOrder(values.Get("order")),
		},
		ViewerID: viewerID(r.Context()),
	}
	// Malformed paging falls back to defaults during normalization.
	q.Page, _ = strconv.Atoi(values.Get("page"))
	q.Limit, _ = strconv.Atoi(values.Get("limit"))

	if raw := values.Get("type"); raw != "" {
		ct, err := domain.ParseContentType(raw)
		if err != nil {
			return q, err
		}
		q.Filter.ContentType = &ct
	}

	switch raw := strings.ToLower(values.Get("ads")); raw {
	case "", "0", "false":
	case "1", "true":
		q.AdEvery = s.adEvery
	default:
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.AdEvery = n
		}
	}

	return q, nil
}

func (s *Server) handleListFeed(w http.ResponseWriter, r *http.Request) {
	q, err := s.feedQuery(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	page, err := s.feed.ListFeed(r.Context(), q)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleGetFeedItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid feed id")
		return
	}

	item, err := s.feed.GetFeedItemByID(r.Context(), id, viewerID(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// feedKey resolves a synthetic feed id to the natural key engagement is keyed by.
func (s *Server) feedKey(w http.ResponseWriter, r *http.Request) (domain.ContentKey, bool) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid feed id")
		return domain.ContentKey{}, false
	}

	item, err := s.feed.GetFeedItemByID(r.Context(), id, "")
	if err != nil {
		s.writeServiceError(w, r, err)
		return domain.ContentKey{}, false
	}
	return item.ContentKey, true
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	key, ok := s.feedKey(w, r)
	if !ok {
		return
	}

	result, err := s.engagement.ToggleLike(r.Context(), viewerID(r.Context()), key)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "body is required")
		return
	}

	key, ok := s.feedKey(w, r)
	if !ok {
		return
	}

	result, err := s.engagement.AddComment(r.Context(), key, viewerID(r.Context()), req.Body)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	key, ok := s.feedKey(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	comments, err := s.engagement.ListComments(r.Context(), key, page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleRemoveComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid comment id")
		return
	}

	count, err := s.engagement.RemoveComment(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentsCountResponse{CommentsCount: count})
}

func (s *Server) handleAdImpression(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid ad id")
		return
	}

	if err := s.ads.RecordImpression(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleAdClick(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid ad id")
		return
	}

	if err := s.ads.RecordClick(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	ct, err := domain.ParseContentType(chi.URLParam(r, "type"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	originalID, ok := pathID(r, "originalID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid original id")
		return
	}

	rec, err := s.engagement.Reconcile(r.Context(), domain.ContentKey{ContentType: ct, OriginalID: originalID})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
