package repository

import (
	"context"
	"time"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentRepository struct {
	Col *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{Col: db.Collection("enrollments")}
}

func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID primitive.ObjectID) (bool, error) {
	count, err := r.Col.CountDocuments(ctx, bson.M{"student": studentID, "course": courseID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	res, err := r.Col.InsertOne(ctx, enrollment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		enrollment.ID = oid
	}
	return nil
}

// FindByStudent joins each enrollment with its course document.
func (r *EnrollmentRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.EnrolledCourse, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"student": studentID}},
		{"$lookup": bson.M{
			"from":         "courses",
			"localField":   "course",
			"foreignField": "_id",
			"as":           "course_info",
		}},
		{"$unwind": "$course_info"},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var enrolled []models.EnrolledCourse
	if err := cur.All(ctx, &enrolled); err != nil {
		return nil, err
	}
	return enrolled, nil
}

func (r *EnrollmentRepository) FindByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Enrollment, error) {
	cur, err := r.Col.Find(ctx, bson.M{"course": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var enrollments []models.Enrollment
	for cur.Next(ctx) {
		var e models.Enrollment
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) DeleteByStudent(ctx context.Context, studentID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"student": studentID})
	return err
}

func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

// Statistics aggregates enrollment count and paid-course revenue over the
// trailing window. Recomputed on every call; nothing is cached.
func (r *EnrollmentRepository) Statistics(ctx context.Context, windowDays int) (*models.CourseStatistics, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	pipeline := []bson.M{
		{"$match": bson.M{"enrollment_date": bson.M{"$gte": since}}},
		{"$lookup": bson.M{
			"from":         "courses",
			"localField":   "course",
			"foreignField": "_id",
			"as":           "course_info",
		}},
		{"$unwind": "$course_info"},
		{"$group": bson.M{
			"_id":                nil,
			"active_enrollments": bson.M{"$sum": 1},
			"total_revenue": bson.M{
				"$sum": bson.M{
					"$cond": bson.M{
						"if":   bson.M{"$eq": []interface{}{"$course_info.status", models.CourseStatusPaid}},
						"then": "$payment_amount",
						"else": 0,
					},
				},
			},
		}},
	}

	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stats := &models.CourseStatistics{WindowDays: windowDays}
	var results []bson.M
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) > 0 {
		result := results[0]
		switch count := result["active_enrollments"].(type) {
		case int32:
			stats.ActiveEnrollments = int64(count)
		case int64:
			stats.ActiveEnrollments = count
		}
		switch revenue := result["total_revenue"].(type) {
		case float64:
			stats.TotalRevenue = revenue
		case int32:
			stats.TotalRevenue = float64(revenue)
		case int64:
			stats.TotalRevenue = float64(revenue)
		}
	}
	return stats, nil
}
