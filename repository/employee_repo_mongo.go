package repository

import (
	"context"
	"regexp"
	"time"

	"staffhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoEmployeeRepo struct {
	DB   *mongo.Client
	Name string
}

func NewMongoEmployeeRepo(db *mongo.Client, name string) *MongoEmployeeRepo {
	return &MongoEmployeeRepo{DB: db, Name: name}
}

func (r *MongoEmployeeRepo) employees() *mongo.Collection {
	return r.DB.Database(r.Name).Collection("employees")
}

func (r *MongoEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	now := time.Now().UTC()
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	_, err := r.employees().InsertOne(ctx, emp)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (r *MongoEmployeeRepo) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	emp := &models.Employee{}
	err := r.employees().FindOne(ctx, bson.M{"_id": id}).Decode(emp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return emp, nil
}

func (r *MongoEmployeeRepo) FindAll(ctx context.Context) ([]*models.Employee, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoEmployeeRepo) Search(ctx context.Context, department, position string) ([]*models.Employee, error) {
	filter := bson.M{}
	if department != "" {
		filter["department"] = primitive.Regex{Pattern: regexp.QuoteMeta(department), Options: "i"}
	}
	if position != "" {
		filter["position"] = primitive.Regex{Pattern: regexp.QuoteMeta(position), Options: "i"}
	}
	return r.find(ctx, filter)
}

func (r *MongoEmployeeRepo) find(ctx context.Context, filter bson.M) ([]*models.Employee, error) {
	cursor, err := r.employees().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []*models.Employee{}
	for cursor.Next(ctx) {
		emp := &models.Employee{}
		if err := cursor.Decode(emp); err != nil {
			return nil, err
		}
		list = append(list, emp)
	}
	return list, cursor.Err()
}

func (r *MongoEmployeeRepo) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*models.Employee, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	emp := &models.Employee{}
	err := r.employees().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(emp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return emp, nil
}

func (r *MongoEmployeeRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.employees().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
