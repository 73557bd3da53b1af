package domain

// User represents a registered learner. Password holds whatever the active
// password mode stores and is never serialized.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Education string `json:"education"`
	Password  string `json:"-"`
	CreatedAt string `json:"createdAt"`
}
