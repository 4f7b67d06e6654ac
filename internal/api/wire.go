package api

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest verifies credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest exchanges a refresh token for a fresh token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse carries the renewed token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// PresignResponse is issued before an image upload: the client PUTs the image
// bytes to URL, then requests analysis by Key.
type PresignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// AnalyzeRequest asks the server to analyze a previously uploaded image.
type AnalyzeRequest struct {
	Key      string `json:"key"`
	Filename string `json:"filename"`
}

// ErrorResponse is the JSON body of any non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
