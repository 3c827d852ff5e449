package service

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapDuplicateEmail(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	if got := mapDuplicateEmail(dup); !errors.Is(got, ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken for a duplicate key error, got %v", got)
	}

	other := errors.New("connection reset")
	if got := mapDuplicateEmail(other); got != other {
		t.Errorf("Expected non-duplicate error to pass through, got %v", got)
	}
}
