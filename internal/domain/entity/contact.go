package entity

// ContactForm is the contact page submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactValidation is the per-field verdict plus the aggregate.
type ContactValidation struct {
	Fields      map[string]bool `json:"fields"`
	IsFormValid bool            `json:"isFormValid"`
}
