package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"invita/app/services"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type userPayload struct {
	ID        uint   `json:"usuarioid"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Username  string `json:"nombreusuario"`
	Email     string `json:"correo"`
	Password  string `json:"password"`
	RoleID    uint   `json:"rolid"`
}

func (c *UserController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w)
	case http.MethodPost:
		c.create(w, r)
	case http.MethodPut:
		c.update(w, r)
	case http.MethodDelete:
		c.delete(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *UserController) list(w http.ResponseWriter) {
	users, err := c.Users.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error al obtener los usuarios")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (c *UserController) create(w http.ResponseWriter, r *http.Request) {
	var req userPayload
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Email == "" || req.Password == "" || req.RoleID == 0 {
		writeError(w, http.StatusBadRequest, "Datos incompletos")
		return
	}
	u, err := c.Users.CreateUser(req.FirstName, req.LastName, req.Username, req.Email, req.Password, req.RoleID)
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

func (c *UserController) update(w http.ResponseWriter, r *http.Request) {
	var req userPayload
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "ID no proporcionado")
		return
	}
	u, err := c.Users.Update(req.ID, req.FirstName, req.LastName, req.Username, req.Email, req.Password, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "Usuario no encontrado")
		case errors.Is(err, services.ErrDuplicateUser):
			writeError(w, http.StatusBadRequest, "El correo o nombre de usuario ya está registrado.")
		default:
			writeError(w, http.StatusInternalServerError, "Ocurrió un error al actualizar el usuario. Por favor, intente nuevamente.")
		}
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID uint `json:"usuarioid"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.GetByID(req.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		writeError(w, http.StatusInternalServerError, "Ocurrió un error al eliminar el usuario. Por favor, intente nuevamente.")
		return
	}
	if err := c.Users.Delete(req.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Ocurrió un error al eliminar el usuario. Por favor, intente nuevamente.")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// GetByID serves /usuarios/{id}.
func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	idStr := strings.TrimPrefix(r.URL.Path, "/usuarios/")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "ID no proporcionado")
		return
	}
	u, err := c.Users.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error al obtener los datos del usuario")
		return
	}
	writeJSON(w, http.StatusOK, u)
}
