package model

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	Name    string `json:"name" bson:"name" binding:"required"`
	Email   string `json:"email" bson:"email" binding:"required,email"`
	Subject string `json:"subject" bson:"subject" binding:"required"`
	Message string `json:"message" bson:"message" binding:"required"`
}
