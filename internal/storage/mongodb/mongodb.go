// Package mongodb реализует хранилище пользователей в MongoDB.
// Журнал упражнений хранится внутри документа пользователя, поэтому
// добавление записи атомарно на уровне одного документа.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

const usersCollection = "users"

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Log      []models.Exercise  `bson:"log"`
}

// Storage хранит клиент MongoDB и коллекцию пользователей.
type Storage struct {
	client *mongo.Client
	users  *mongo.Collection
}

// New подключается к MongoDB, проверяет соединение и создаёт уникальный индекс по username.
func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users := client.Database(database).Collection(usersCollection)
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{client: client, users: users}, nil
}

// Ping проверяет доступность primary.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close отключает клиента.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// CreateUser сохраняет нового пользователя с пустым журналом.
func (s *Storage) CreateUser(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.mongodb.CreateUser"

	res, err := s.users.InsertOne(ctx, userDocument{Username: username, Log: []models.Exercise{}})
	if mongo.IsDuplicateKeyError(err) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUsernameTaken)
	}
	if err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, &models.StorageError{Op: op, Err: fmt.Errorf("unexpected id type %T", res.InsertedID)}
	}
	return &models.User{ID: id.Hex(), Username: username, Log: []models.Exercise{}}, nil
}

// ListUsers возвращает всех пользователей без журналов в порядке хранения.
func (s *Storage) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	const op = "storage.mongodb.ListUsers"

	cursor, err := s.users.Find(ctx, bson.D{}, options.Find().SetProjection(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}

	result := make([]models.UserSummary, 0, len(docs))
	for _, d := range docs {
		result = append(result, models.UserSummary{Username: d.Username, ID: d.ID.Hex()})
	}
	return result, nil
}

// AppendExercise добавляет запись в конец журнала одним $push и возвращает username.
func (s *Storage) AppendExercise(ctx context.Context, userID string, e models.Exercise) (string, error) {
	const op = "storage.mongodb.AppendExercise"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{{Key: "username", Value: 1}})

	var doc userDocument
	err = s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"log": e}},
		opts,
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	if err != nil {
		return "", &models.StorageError{Op: op, Err: err}
	}
	return doc.Username, nil
}

// GetLog возвращает пользователя с записями журнала, отфильтрованными по дате
// на стороне сервера через $filter. Порядок записей сохраняется.
func (s *Storage) GetLog(ctx context.Context, userID string, filter models.LogFilter) (*models.UserLog, error) {
	const op = "storage.mongodb.GetLog"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
		{{Key: "$project", Value: bson.M{
			"username": 1,
			"log": bson.M{"$filter": bson.M{
				"input": bson.M{"$ifNull": bson.A{"$log", bson.A{}}},
				"as":    "e",
				"cond":  dateCondition(filter),
			}},
		}}},
	}

	cursor, err := s.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	if !cursor.Next(ctx) {
		if err = cursor.Err(); err != nil {
			return nil, &models.StorageError{Op: op, Err: err}
		}
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	var doc userDocument
	if err = cursor.Decode(&doc); err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}

	result := &models.UserLog{ID: doc.ID.Hex(), Username: doc.Username, Log: make([]models.Exercise, 0, len(doc.Log))}
	for _, e := range doc.Log {
		e.Date = e.Date.UTC()
		result.Log = append(result.Log, e)
	}
	return result, nil
}

func dateCondition(filter models.LogFilter) any {
	var cond bson.A
	if filter.From != nil {
		cond = append(cond, bson.M{"$gte": bson.A{"$$e.date", *filter.From}})
	}
	if filter.To != nil {
		cond = append(cond, bson.M{"$lte": bson.A{"$$e.date", *filter.To}})
	}
	if len(cond) == 0 {
		return true
	}
	return bson.M{"$and": cond}
}
