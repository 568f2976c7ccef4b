// Package http provides HTTP transport for the sleep API
package http

import (
	stdhttp "net/http"
	"time"

	"driftlog/internal/modkit/httpkit"
	"driftlog/internal/services/api/sleep/domain"
	svc "driftlog/internal/services/api/sleep/service"
)

// Register mounts sleep endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PatchJSON[domain.SetWakeInput](r, "/{id}", h.setWakeAt)
}

type handlers struct{ svc *svc.Service }

// @Summary Open a sleep interval
// @Tags Sleep
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Interval opening"
// @Success 201 {object} domain.CreateResp "created"
// @Router /sleep [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	rec, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.CreateResp{
		ID:      rec.ID,
		SleepAt: rec.SleepAt.Format(time.RFC3339),
	}), nil
}

// @Summary Close a sleep interval
// @Tags Sleep
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param payload body domain.SetWakeInput true "Interval closing"
// @Success 200 {object} domain.Record "ok"
// @Router /sleep/{id} [patch]
func (h *handlers) setWakeAt(r *stdhttp.Request, in domain.SetWakeInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SetWakeAt(r.Context(), uid, httpkit.Param(r, "id"), in)
}

// @Summary Fetch one of your sleep records
// @Tags Sleep
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} domain.Record "ok"
// @Router /sleep/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, httpkit.Param(r, "id"))
}

// @Summary List your sleep records, newest first
// @Tags Sleep
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.Record "ok"
// @Router /sleep [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	page, pageSize, err := httpkit.QueryPage(r)
	if err != nil {
		return nil, err
	}
	recs, info, err := h.svc.ListByOwner(r.Context(), uid, page, pageSize)
	if err != nil {
		return nil, err
	}
	return httpkit.List(recs, httpkit.Page{
		Total:      info.TotalItems,
		Page:       info.CurrentPage,
		PageSize:   pageSize,
		TotalPages: info.TotalPages,
	}), nil
}
