package entities

import "time"

type UserType string

const (
	UserTypeAdmin    UserType = "ADMIN"
	UserTypeSeller   UserType = "SELLER"
	UserTypeCashier  UserType = "CASHIER"
	UserTypeCustomer UserType = "CUSTOMER"
)

// User is the shop user as exchanged with the user service. NationalID holds
// the cédula.
type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	Type       UserType  `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	Active     bool      `json:"active"`
}
