package recap

import (
	"context"
	"sort"
	"time"

	"github.com/strideworks/recap/internal/activities"
)

var _ activitiesRepo = (*repoMock)(nil)

type repoMock struct {
	activities []activities.Activity
	listErr    error
}

func newRepoMock(items ...activities.Activity) *repoMock {
	return &repoMock{
		activities: items,
	}
}

func (r *repoMock) ListRange(_ context.Context, from, to time.Time) ([]activities.Activity, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	var list []activities.Activity
	for _, activity := range r.activities {
		if activity.StartedAt.Before(from) || activity.StartedAt.After(to) {
			continue
		}
		list = append(list, activity)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].StartedAt.Before(list[j].StartedAt)
	})
	return list, nil
}
