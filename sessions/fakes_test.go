package sessions

import (
	"context"
	"slices"
	"strings"

	"github.com/SaiNageswarS/chatbot-api/db"
)

type fakeSessionStore struct {
	sessions  map[string]db.SessionModel
	err       error
	calls     int
	deletions int
}

func newFakeSessionStore(sessions ...db.SessionModel) *fakeSessionStore {
	store := &fakeSessionStore{sessions: map[string]db.SessionModel{}}
	for _, s := range sessions {
		store.sessions[s.SessionId] = s
	}
	return store
}

func (f *fakeSessionStore) GetSession(ctx context.Context, sessionId, userId string) (*db.SessionModel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	s, ok := f.sessions[sessionId]
	if !ok || s.UserId != userId {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSessionStore) ListSessionsByUser(ctx context.Context, userId string) ([]db.SessionModel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var owned []db.SessionModel
	for _, s := range f.sessions {
		if s.UserId == userId {
			owned = append(owned, s)
		}
	}
	slices.SortStableFunc(owned, func(a, b db.SessionModel) int {
		return strings.Compare(b.StartTime, a.StartTime)
	})
	return owned, nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, sessionId, userId string) (DeleteResult, error) {
	f.calls++
	if f.err != nil {
		return DeleteResult{}, f.err
	}

	s, ok := f.sessions[sessionId]
	if !ok || s.UserId != userId {
		return DeleteResult{Id: sessionId, Deleted: false}, nil
	}
	delete(f.sessions, sessionId)
	f.deletions++
	return DeleteResult{Id: sessionId, Deleted: true}, nil
}

func (f *fakeSessionStore) DeleteUserSessions(ctx context.Context, userId string) ([]DeleteResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	results := []DeleteResult{}
	for id, s := range f.sessions {
		if s.UserId == userId {
			delete(f.sessions, id)
			f.deletions++
			results = append(results, DeleteResult{Id: id, Deleted: true})
		}
	}
	return results, nil
}

type fakeApplicationStore struct {
	applications map[string]db.ApplicationModel
	err          error
	panicWith    any
	calls        int
}

func (f *fakeApplicationStore) GetApplication(ctx context.Context, applicationId string) (*db.ApplicationModel, error) {
	f.calls++
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	if f.err != nil {
		return nil, f.err
	}

	app, ok := f.applications[applicationId]
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func strPtr(s string) *string {
	return &s
}
