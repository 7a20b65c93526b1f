package model

// Department represents an academic or administrative department.
type Department struct {
	Name        string  `json:"name" bson:"name" binding:"required"`
	Head        *string `json:"head" bson:"head"`
	Description *string `json:"description" bson:"description"`
}
