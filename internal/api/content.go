package api

import (
	"net/http"
	"time"

	"feedhub/internal/domain"
)

type articleRequest struct {
	Title       string     `json:"title"`
	Summary     *string    `json:"summary"`
	Body        *string    `json:"body"`
	ImageURL    *string    `json:"image_url"`
	SourceURL   *string    `json:"source_url"`
	IsOfficial  bool       `json:"is_official"`
	PublishedAt *time.Time `json:"published_at"`
}

func (req articleRequest) article(id int64) *domain.Article {
	a := &domain.Article{
		ID:         id,
		Title:      req.Title,
		Summary:    req.Summary,
		Body:       req.Body,
		ImageURL:   req.ImageURL,
		SourceURL:  req.SourceURL,
		IsOfficial: req.IsOfficial,
	}
	if req.PublishedAt != nil {
		a.PublishedAt = *req.PublishedAt
	}
	return a
}

type communityRequest struct {
	Title       string     `json:"title"`
	Body        *string    `json:"body"`
	ImageURL    *string    `json:"image_url"`
	VideoURL    *string    `json:"video_url"`
	PublishedAt *time.Time `json:"published_at"`
}

func (req communityRequest) post(id int64, userID string) *domain.CommunityPost {
	p := &domain.CommunityPost{
		ID:       id,
		UserID:   userID,
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
	}
	if req.PublishedAt != nil {
		p.PublishedAt = *req.PublishedAt
	}
	return p
}

type advertisementRequest struct {
	Title         string     `json:"title"`
	Body          *string    `json:"body"`
	ImageURL      *string    `json:"image_url"`
	TargetURL     string     `json:"target_url"`
	Priority      int        `json:"priority"`
	Active        *bool      `json:"active"`
	ImpressionCap int64      `json:"impression_cap"`
	PublishedAt   *time.Time `json:"published_at"`
}

func (req advertisementRequest) advertisement(id int64) *domain.Advertisement {
	ad := &domain.Advertisement{
		ID:            id,
		Title:         req.Title,
		Body:          req.Body,
		ImageURL:      req.ImageURL,
		TargetURL:     req.TargetURL,
		Priority:      req.Priority,
		Active:        true,
		ImpressionCap: req.ImpressionCap,
	}
	if req.Active != nil {
		ad.Active = *req.Active
	}
	if req.PublishedAt != nil {
		ad.PublishedAt = *req.PublishedAt
	}
	return ad
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	article := req.article(0)
	if err := s.content.CreateArticle(r.Context(), article); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid article id")
		return
	}
	var req articleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	article := req.article(id)
	if err := s.content.UpdateArticle(r.Context(), article); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid article id")
		return
	}

	if err := s.content.DeleteArticle(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid article id")
		return
	}

	article, err := s.content.GetArticle(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleCreateCommunityPost(w http.ResponseWriter, r *http.Request) {
	var req communityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	post := req.post(0, viewerID(r.Context()))
	if err := s.content.CreateCommunityPost(r.Context(), post); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleUpdateCommunityPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid post id")
		return
	}
	var req communityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	post := req.post(id, "")
	if err := s.content.UpdateCommunityPost(r.Context(), post); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDeleteCommunityPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid post id")
		return
	}

	if err := s.content.DeleteCommunityPost(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetCommunityPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid post id")
		return
	}

	post, err := s.content.GetCommunityPost(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleCreateAdvertisement(w http.ResponseWriter, r *http.Request) {
	var req advertisementRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	ad := req.advertisement(0)
	if err := s.content.CreateAdvertisement(r.Context(), ad); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ad)
}

func (s *Server) handleUpdateAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid ad id")
		return
	}
	var req advertisementRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	ad := req.advertisement(id)
	if err := s.content.UpdateAdvertisement(r.Context(), ad); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ad)
}

func (s *Server) handleDeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid ad id")
		return
	}

	if err := s.content.DeleteAdvertisement(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid ad id")
		return
	}

	ad, err := s.content.GetAdvertisement(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ad)
}
