package activities

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ activitiesRepo = (*repoMock)(nil)

type repoMock struct {
	Activities map[int]*Activity
	mutex      sync.Mutex
}

func newRepoMock() *repoMock {
	return &repoMock{
		Activities: make(map[int]*Activity),
	}
}

func (r *repoMock) Add(_ context.Context, activity *Activity) (*Activity, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if activity.ID == 0 {
		activity.ID = len(r.Activities) + 1
	}
	r.Activities[activity.ID] = activity
	return activity, nil
}

func (r *repoMock) Get(_ context.Context, id int) (*Activity, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	activity, ok := r.Activities[id]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

func (r *repoMock) Delete(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.Activities[id]; !ok {
		return ErrActivityNotFound
	}
	delete(r.Activities, id)
	return nil
}

func (r *repoMock) List(_ context.Context, params ListParams) ([]Activity, int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	all := r.sortedByStartDesc()
	total := len(all)

	offset := (params.Page - 1) * params.Size
	if offset >= total {
		return []Activity{}, total, nil
	}
	end := offset + params.Size
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *repoMock) ListRange(_ context.Context, from, to time.Time) ([]Activity, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var list []Activity
	for _, activity := range r.Activities {
		if activity.StartedAt.Before(from) || activity.StartedAt.After(to) {
			continue
		}
		list = append(list, *activity)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].StartedAt.Before(list[j].StartedAt)
	})
	return list, nil
}

func (r *repoMock) sortedByStartDesc() []Activity {
	all := make([]Activity, 0, len(r.Activities))
	for _, activity := range r.Activities {
		all = append(all, *activity)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].StartedAt.After(all[j].StartedAt)
	})
	return all
}
