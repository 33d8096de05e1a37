package types

const (
	USER_ROLE_ADMIN = "admin"
	USER_ROLE_USER  = "user"
)

type User struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Username string `json:"username" bson:"username"`
	Password string `json:"password" bson:"password"`
	FullName string `json:"full_name" bson:"full_name"`
	Role     string `json:"role" bson:"role"`
	CreateAt int64  `json:"created_at" bson:"created_at"`
	UpdateAt int64  `json:"updated_at" bson:"updated_at"`
}

// Institute is a live record: each one becomes a single knowledge entry on
// rebuild.
type Institute struct {
	ID       string   `json:"id" bson:"_id,omitempty"`
	Name     string   `json:"name" bson:"name"`
	Address  string   `json:"address" bson:"address"`
	City     string   `json:"city" bson:"city"`
	Courses  []string `json:"courses" bson:"courses"`
	Fee      string   `json:"fee" bson:"fee"`
	Rating   float64  `json:"rating" bson:"rating"`
	CreateAt int64    `json:"created_at" bson:"created_at"`
	UpdateAt int64    `json:"updated_at" bson:"updated_at"`
}
