// Package service assembles the ranked weekly feed
package service

import (
	"context"
	"sort"
	"time"

	"driftlog/internal/modkit/pagekit"
	"driftlog/internal/platform/clock"
	identdom "driftlog/internal/services/ident/domain"

	"driftlog/internal/services/api/feed/domain"
	sleepdom "driftlog/internal/services/api/sleep/domain"
	socialdom "driftlog/internal/services/api/social/domain"
)

// window is how far back the feed reaches
const window = 7 * 24 * time.Hour

// Service is the concrete implementation of domain.ServicePort.
// It composes the social graph, sleep records and identity lookups
type Service struct {
	Social socialdom.ServicePort
	Sleep  sleepdom.ServicePort
	Ident  identdom.ReaderPort
	Clock  clock.Clock
}

// Compile-time assertion: Service implements domain.ServicePort
var _ domain.ServicePort = (*Service)(nil)

// New constructs a feed service
func New(social socialdom.ServicePort, sleep sleepdom.ServicePort, ident identdom.ReaderPort, clk clock.Clock) *Service {
	if social == nil || sleep == nil || ident == nil {
		panic("feed.Service requires social, sleep and ident ports")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{Social: social, Sleep: sleep, Ident: ident, Clock: clk}
}

// Feed returns the viewer's ranked weekly feed. Following nobody yields an
// empty page, not an error
func (s *Service) Feed(ctx context.Context, userID string, page, pageSize int) ([]domain.Item, pagekit.Info, error) {
	followed, err := s.Social.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, pagekit.Info{}, err
	}
	if len(followed) == 0 {
		return pagekit.Paginate([]domain.Item{}, page, pageSize)
	}

	now := s.Clock.Now()
	recs, err := s.Sleep.ListCompletedSince(ctx, followed, now.Add(-window), now)
	if err != nil {
		return nil, pagekit.Info{}, err
	}

	// longest sleep first; ties resolve newest-created first, then by id
	// so the ordering is stable across requests
	sort.Slice(recs, func(i, j int) bool {
		di, dj := *recs[i].DurationSeconds, *recs[j].DurationSeconds
		if di != dj {
			return di > dj
		}
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].ID < recs[j].ID
	})

	names, err := s.Ident.NamesByIDs(ctx, ownerIDs(recs))
	if err != nil {
		return nil, pagekit.Info{}, err
	}

	items := make([]domain.Item, 0, len(recs))
	for _, r := range recs {
		items = append(items, domain.Item{
			ID:              r.ID,
			UserID:          r.UserID,
			UserName:        names[r.UserID],
			SleepAt:         r.SleepAt,
			WakeAt:          *r.WakeAt,
			DurationSeconds: *r.DurationSeconds,
			CreatedAt:       r.CreatedAt,
		})
	}
	return pagekit.Paginate(items, page, pageSize)
}

func ownerIDs(recs []sleepdom.Record) []string {
	seen := make(map[string]struct{}, len(recs))
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}
	return ids
}
