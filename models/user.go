package models

// User is the customer a purchase order belongs to.
// Authentication lives elsewhere; only the username is kept here.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username" validate:"required,max=150"`
}

func (u *User) TableName() string {
	return "users"
}

func (u User) String() string {
	return u.Username
}

func (u *User) Validate() error {
	return validateStruct(u)
}
