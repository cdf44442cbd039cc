package entities

// Stats are the three reading-personality scores with their aggregates
type Stats struct {
	Logic   int     `json:"logic"`
	Emotion int     `json:"emotion"`
	Action  int     `json:"action"`
	Total   int     `json:"total"`
	Average float64 `json:"average"`
}

// User is the signed-in reader
type User struct {
	UserID       int64  `json:"userId"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	Point        int    `json:"point"`
	Stats        Stats  `json:"stats"`
	DominantType string `json:"dominantType"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"nickname" validate:"required,max=20"`
}

// AuthToken is returned by a successful login
type AuthToken struct {
	AccessToken string `json:"accessToken"`
}
