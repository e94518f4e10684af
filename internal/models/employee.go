package model

// Tasks reference employees by full name, not by id. Renaming or removing
// an employee leaves prior assignments untouched.
type Employee struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	FullName   string `gorm:"not null" json:"fullName"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
}

func (e *Employee) Clone() *Employee {
	c := *e
	return &c
}
