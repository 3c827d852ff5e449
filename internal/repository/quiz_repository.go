package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindAll(ctx context.Context) ([]models.Quiz, error) {
	return r.find(ctx, bson.M{})
}

func (r *QuizRepository) FindByCourse(ctx context.Context, courseID string) ([]models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"course": objID})
}

func (r *QuizRepository) FindBySection(ctx context.Context, sectionID string) ([]models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"section_id": objID})
}

func (r *QuizRepository) find(ctx context.Context, filter bson.M) ([]models.Quiz, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err // invalid id format
	}
	var quiz models.Quiz
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	res, err := r.Col.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quiz.ID = oid
	}
	return nil
}

func (r *QuizRepository) Replace(ctx context.Context, quiz *models.Quiz) error {
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": quiz.ID}, quiz)
	return err
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (r *QuizRepository) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"course": courseID})
	return err
}

func (r *QuizRepository) DeleteBySection(ctx context.Context, sectionID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"section_id": sectionID})
	return err
}

func (r *QuizRepository) CountBySection(ctx context.Context, sectionID string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return 0, err
	}
	return r.Col.CountDocuments(ctx, bson.M{"section_id": objID})
}
