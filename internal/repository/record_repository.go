package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories for the auxiliary per-student records. Each is queried
// independently; nothing here is relationally enforced against enrollments.

type AttendanceRepository struct {
	Col *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{Col: db.Collection("attendance")}
}

func (r *AttendanceRepository) FindAll(ctx context.Context) ([]models.Attendance, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.Attendance
	for cur.Next(ctx) {
		var a models.Attendance
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, nil
}

func (r *AttendanceRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Attendance, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.Attendance
	for cur.Next(ctx) {
		var a models.Attendance
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	res, err := r.Col.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return nil
}

func (r *AttendanceRepository) DeleteByStudent(ctx context.Context, studentID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"student": studentID})
	return err
}

type TestResultRepository struct {
	Col *mongo.Collection
}

func NewTestResultRepository(db *mongo.Database) *TestResultRepository {
	return &TestResultRepository{Col: db.Collection("test_results")}
}

func (r *TestResultRepository) FindAll(ctx context.Context) ([]models.TestResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.TestResult
	for cur.Next(ctx) {
		var tr models.TestResult
		if err := cur.Decode(&tr); err != nil {
			return nil, err
		}
		results = append(results, tr)
	}
	return results, nil
}

func (r *TestResultRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.TestResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.TestResult
	for cur.Next(ctx) {
		var tr models.TestResult
		if err := cur.Decode(&tr); err != nil {
			return nil, err
		}
		results = append(results, tr)
	}
	return results, nil
}

func (r *TestResultRepository) Create(ctx context.Context, result *models.TestResult) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

type AcademicRecordRepository struct {
	Col *mongo.Collection
}

func NewAcademicRecordRepository(db *mongo.Database) *AcademicRecordRepository {
	return &AcademicRecordRepository{Col: db.Collection("academic_records")}
}

func (r *AcademicRecordRepository) FindAll(ctx context.Context) ([]models.AcademicRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.AcademicRecord
	for cur.Next(ctx) {
		var ar models.AcademicRecord
		if err := cur.Decode(&ar); err != nil {
			return nil, err
		}
		records = append(records, ar)
	}
	return records, nil
}

func (r *AcademicRecordRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.AcademicRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.AcademicRecord
	for cur.Next(ctx) {
		var ar models.AcademicRecord
		if err := cur.Decode(&ar); err != nil {
			return nil, err
		}
		records = append(records, ar)
	}
	return records, nil
}

func (r *AcademicRecordRepository) Create(ctx context.Context, record *models.AcademicRecord) error {
	res, err := r.Col.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return nil
}

func (r *AcademicRecordRepository) DeleteByStudent(ctx context.Context, studentID primitive.ObjectID) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"student": studentID})
	return err
}
