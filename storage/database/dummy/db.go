package dummydb

import (
	"sync"

	"github.com/trezcool/masomo-review/core/review"
)

type (
	DB struct {
		student  *studentTable
		reviewer *reviewerTable
	}

	// tables keep rows in insertion order, indexed by ID
	studentTable struct {
		sync.RWMutex
		rows []*review.Student
		byID map[review.ID]*review.Student
	}

	reviewerTable struct {
		sync.RWMutex
		rows []*review.Reviewer
		byID map[review.ID]*review.Reviewer
	}
)

func Open() (*DB, error) {
	db := &DB{
		student:  &studentTable{byID: make(map[review.ID]*review.Student)},
		reviewer: &reviewerTable{byID: make(map[review.ID]*review.Reviewer)},
	}
	return db, nil
}
