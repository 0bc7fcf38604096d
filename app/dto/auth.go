package dto

// LoginRequest matches the original wire format: username may hold
// either the nombreusuario or the correo.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type SignupRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Username  string `json:"nombreusuario"`
	Email     string `json:"correo"`
	Password  string `json:"password"`
}
