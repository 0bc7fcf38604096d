package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"invita/app/dto"
	jwtutil "invita/app/jwt"
	"invita/app/services"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Faltan credenciales")
		return
	}
	u, err := c.Users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "Usuario no encontrado")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeMessage(w, http.StatusUnauthorized, "Contraseña incorrecta")
		default:
			writeMessage(w, http.StatusInternalServerError, "Error al iniciar sesión")
		}
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username, u.RoleID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error al generar el token")
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

// Signup creates a standard user and returns it without issuing a token;
// the client logs in separately.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Datos incompletos")
		return
	}
	u, err := c.Users.Signup(req.FirstName, req.LastName, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			writeError(w, http.StatusBadRequest, "El correo o nombre de usuario ya está registrado.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Ocurrió un error al crear el usuario. Por favor, intente nuevamente.")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}
