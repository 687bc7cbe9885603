package sessions

import (
	"context"
	"fmt"

	"github.com/SaiNageswarS/chatbot-api/db"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

type DeleteResult struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// SessionStore reads and deletes sessions scoped to their owner.
// GetSession returns nil, nil when the session does not exist for that owner.
type SessionStore interface {
	GetSession(ctx context.Context, sessionId, userId string) (*db.SessionModel, error)
	ListSessionsByUser(ctx context.Context, userId string) ([]db.SessionModel, error)
	DeleteSession(ctx context.Context, sessionId, userId string) (DeleteResult, error)
	DeleteUserSessions(ctx context.Context, userId string) ([]DeleteResult, error)
}

// ApplicationStore returns nil, nil for unknown applications.
type ApplicationStore interface {
	GetApplication(ctx context.Context, applicationId string) (*db.ApplicationModel, error)
}

// documentCollection is the part of odm.OdmCollectionInterface the stores use.
type documentCollection[T any] interface {
	Find(ctx context.Context, filters bson.M, sort bson.D, limit, skip int64) <-chan async.Result[[]T]
	DeleteOne(ctx context.Context, filters bson.M) <-chan async.Result[struct{}]
}

var newestFirst = bson.D{{Key: "StartTime", Value: -1}}

type MongoSessionStore struct {
	collection documentCollection[db.SessionModel]
}

func NewMongoSessionStore(collection odm.OdmCollectionInterface[db.SessionModel]) *MongoSessionStore {
	return &MongoSessionStore{collection: collection}
}

func ownerFilter(sessionId, userId string) bson.M {
	return bson.M{"_id": sessionId, "UserId": userId}
}

func (s *MongoSessionStore) GetSession(ctx context.Context, sessionId, userId string) (*db.SessionModel, error) {
	found, err := async.Await(s.collection.Find(ctx, ownerFilter(sessionId, userId), nil, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", sessionId, err)
	}

	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *MongoSessionStore) ListSessionsByUser(ctx context.Context, userId string) ([]db.SessionModel, error) {
	found, err := async.Await(s.collection.Find(ctx, bson.M{"UserId": userId}, newestFirst, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return found, nil
}

// DeleteSession reports Deleted:false for sessions the caller does not own.
// The lookup decides that; the delete itself is owner-scoped as well.
func (s *MongoSessionStore) DeleteSession(ctx context.Context, sessionId, userId string) (DeleteResult, error) {
	session, err := s.GetSession(ctx, sessionId, userId)
	if err != nil {
		return DeleteResult{Id: sessionId}, err
	}

	if session == nil {
		return DeleteResult{Id: sessionId, Deleted: false}, nil
	}

	if _, err := async.Await(s.collection.DeleteOne(ctx, ownerFilter(sessionId, userId))); err != nil {
		return DeleteResult{Id: sessionId}, fmt.Errorf("failed to delete session %s: %w", sessionId, err)
	}
	return DeleteResult{Id: sessionId, Deleted: true}, nil
}

// DeleteUserSessions keeps going past individual failures and reports them
// as Deleted:false.
func (s *MongoSessionStore) DeleteUserSessions(ctx context.Context, userId string) ([]DeleteResult, error) {
	owned, err := s.ListSessionsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	results := make([]DeleteResult, 0, len(owned))
	for _, session := range owned {
		_, err := async.Await(s.collection.DeleteOne(ctx, ownerFilter(session.SessionId, userId)))
		if err != nil {
			logger.Error("Failed to delete session", zap.String("sessionId", session.SessionId), zap.Error(err))
		}
		results = append(results, DeleteResult{Id: session.SessionId, Deleted: err == nil})
	}
	return results, nil
}

type MongoApplicationStore struct {
	collection documentCollection[db.ApplicationModel]
}

func NewMongoApplicationStore(collection odm.OdmCollectionInterface[db.ApplicationModel]) *MongoApplicationStore {
	return &MongoApplicationStore{collection: collection}
}

func (s *MongoApplicationStore) GetApplication(ctx context.Context, applicationId string) (*db.ApplicationModel, error) {
	found, err := async.Await(s.collection.Find(ctx, bson.M{"_id": applicationId}, nil, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to get application %s: %w", applicationId, err)
	}

	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}
