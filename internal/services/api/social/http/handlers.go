// Package http provides HTTP transport for the follow graph
package http

import (
	stdhttp "net/http"

	"driftlog/internal/modkit/httpkit"
	"driftlog/internal/services/api/social/domain"
	svc "driftlog/internal/services/api/social/service"
)

// Register mounts social endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.FollowInput](r, "/follow", h.follow)
	httpkit.PostJSON[domain.FollowInput](r, "/unfollow", h.unfollow)
	httpkit.Get(r, "/following/{id}", h.isFollowing)
}

type handlers struct{ svc *svc.Service }

// @Summary Follow a user
// @Tags Social
// @Accept json
// @Produce json
// @Param payload body domain.FollowInput true "Target user"
// @Success 201 {object} domain.Follow "created (or already present)"
// @Router /social/follow [post]
func (h *handlers) follow(r *stdhttp.Request, in domain.FollowInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	edge, err := h.svc.Follow(r.Context(), uid, in.FollowedID)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(edge), nil
}

// @Summary Unfollow a user
// @Tags Social
// @Accept json
// @Produce json
// @Param payload body domain.FollowInput true "Target user"
// @Success 204 "no content"
// @Router /social/unfollow [post]
func (h *handlers) unfollow(r *stdhttp.Request, in domain.FollowInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Unfollow(r.Context(), uid, in.FollowedID); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Check whether you follow a user
// @Tags Social
// @Produce json
// @Param id path string true "Target user id"
// @Success 200 {object} domain.FollowingResp "ok"
// @Router /social/following/{id} [get]
func (h *handlers) isFollowing(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	ok, err := h.svc.IsFollowing(r.Context(), uid, httpkit.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	return domain.FollowingResp{Following: ok}, nil
}
