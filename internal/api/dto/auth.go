package dto

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is sent for every classified login attempt; Token is empty
// unless the credentials authenticated.
type LoginResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginFailureResponse is sent when the attempt could not be classified
type LoginFailureResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusRequest represents the login status request
type StatusRequest struct {
	Token string `json:"token"`
}

// StatusResponse represents an authenticated session
type StatusResponse struct {
	Code     int    `json:"code"`
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// LogoutRequest represents the logout request
type LogoutRequest struct {
	Token string `json:"token"`
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Phone       string `json:"phone"`
	ClassID     string `json:"classId"`
	College     string `json:"college"`
	ScoreNumber string `json:"scoreNumber"`
}

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	AdminName string `json:"adminName"`
	AdminPass string `json:"adminPass"`
}
