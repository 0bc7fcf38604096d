package controllers

import (
	"encoding/json"
	"net/http"

	"invita/app/models"
	"invita/app/services"
)

type RoleController struct{ Roles *services.RoleService }

func NewRoleController(roles *services.RoleService) *RoleController {
	return &RoleController{Roles: roles}
}

func (c *RoleController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		roles, err := c.Roles.List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error al obtener los roles")
			return
		}
		writeJSON(w, http.StatusOK, roles)
	case http.MethodPost:
		var role models.Role
		_ = json.NewDecoder(r.Body).Decode(&role)
		if role.Name == "" {
			writeError(w, http.StatusBadRequest, "Nombre de rol no proporcionado")
			return
		}
		role.ID = 0
		if err := c.Roles.Create(&role); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al crear el rol")
			return
		}
		writeJSON(w, http.StatusCreated, role)
	case http.MethodPut:
		var role models.Role
		_ = json.NewDecoder(r.Body).Decode(&role)
		if role.ID == 0 {
			writeError(w, http.StatusBadRequest, "ID no proporcionado")
			return
		}
		if err := c.Roles.Update(&role); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al actualizar el rol")
			return
		}
		writeJSON(w, http.StatusOK, role)
	case http.MethodDelete:
		var req struct {
			ID uint `json:"rolid"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if err := c.Roles.Delete(req.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al eliminar el rol")
			return
		}
		writeJSON(w, http.StatusOK, map[string]uint{"rolid": req.ID})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
