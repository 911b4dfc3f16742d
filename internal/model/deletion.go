package model

import "time"

// Deletion carries who soft-deleted a row and when.
type Deletion struct {
	At     time.Time
	By     string
	ByName string
}
