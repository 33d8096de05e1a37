package repository

import (
	"context"

	"github.com/nextute/chatbot-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type InstituteRepo interface {
	List(ctx context.Context) ([]types.Institute, error)
	Create(ctx context.Context, institute *types.Institute) error
	Get(ctx context.Context, id string) (*types.Institute, error)
	Update(ctx context.Context, id string, institute *types.Institute) error
	Delete(ctx context.Context, id string) error
}

type instituteRepo struct {
	collection *mongo.Collection
}

func NewInstituteRepo(collection *mongo.Collection) InstituteRepo {
	return &instituteRepo{
		collection: collection,
	}
}

func (r *instituteRepo) List(ctx context.Context) ([]types.Institute, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var institutes []types.Institute
	for cursor.Next(ctx) {
		var institute types.Institute
		if err := cursor.Decode(&institute); err != nil {
			return nil, err
		}
		institutes = append(institutes, institute)
	}
	return institutes, cursor.Err()
}

func (r *instituteRepo) Create(ctx context.Context, institute *types.Institute) error {
	_, err := r.collection.InsertOne(ctx, institute)
	return err
}

func (r *instituteRepo) Get(ctx context.Context, id string) (*types.Institute, error) {
	var institute types.Institute
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&institute)
	return &institute, err
}

func (r *instituteRepo) Update(ctx context.Context, id string, institute *types.Institute) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, institute)
	return err
}

func (r *instituteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
