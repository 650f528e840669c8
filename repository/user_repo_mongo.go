package repository

import (
	"context"
	"time"

	"staffhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepo struct {
	DB   *mongo.Client
	Name string
}

func NewMongoUserRepo(db *mongo.Client, name string) *MongoUserRepo {
	return &MongoUserRepo{DB: db, Name: name}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(r.Name).Collection("users")
}

func (r *MongoUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.users().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (r *MongoUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	user := &models.User{}
	err := r.users().FindOne(ctx, filter).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
