// Package http provides HTTP transport for the feed
package http

import (
	stdhttp "net/http"

	"driftlog/internal/modkit/httpkit"
	svc "driftlog/internal/services/api/feed/service"
)

// Register mounts the feed endpoint on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.feed)
}

type handlers struct{ svc *svc.Service }

// @Summary Your followed users' completed sleeps from the past week, longest first
// @Tags Feed
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.Item "ok"
// @Router /sleep/feed [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	page, pageSize, err := httpkit.QueryPage(r)
	if err != nil {
		return nil, err
	}
	items, info, err := h.svc.Feed(r.Context(), uid, page, pageSize)
	if err != nil {
		return nil, err
	}
	return httpkit.List(items, httpkit.Page{
		Total:      info.TotalItems,
		Page:       info.CurrentPage,
		PageSize:   pageSize,
		TotalPages: info.TotalPages,
	}), nil
}
