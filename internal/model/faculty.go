package model

// Faculty represents a staff member. Department is a free-text reference to
// a department name, not a foreign key.
type Faculty struct {
	Name        string  `json:"name" bson:"name" binding:"required"`
	Email       *string `json:"email" bson:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone" bson:"phone"`
	Department  *string `json:"department" bson:"department"`
	Designation *string `json:"designation" bson:"designation"`
	Bio         *string `json:"bio" bson:"bio"`
	PhotoURL    *string `json:"photo_url" bson:"photo_url"`
}
