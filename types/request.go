package types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type CreateInstituteRequest struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Courses []string `json:"courses"`
	Fee     string   `json:"fee"`
	Rating  float64  `json:"rating"`
}

type UpdateInstituteRequest struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Courses []string `json:"courses"`
	Fee     string   `json:"fee"`
	Rating  float64  `json:"rating"`
}
