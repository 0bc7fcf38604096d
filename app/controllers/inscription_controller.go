package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"invita/app/middleware"
	"invita/app/models"
	"invita/app/services"
)

type InscriptionController struct{ Inscriptions *services.InscriptionService }

func NewInscriptionController(inscriptions *services.InscriptionService) *InscriptionController {
	return &InscriptionController{Inscriptions: inscriptions}
}

func (c *InscriptionController) Handle(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	isAdmin := claims.RoleID == models.AdminRoleID

	switch r.Method {
	case http.MethodGet:
		ins, err := c.Inscriptions.ListFor(claims.UserID, isAdmin)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error al obtener las inscripciones")
			return
		}
		writeJSON(w, http.StatusOK, ins)
	case http.MethodPost:
		var req struct {
			UserID  uint `json:"usuarioid"`
			EventID uint `json:"eventoid"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.EventID == 0 {
			writeError(w, http.StatusBadRequest, "Evento no proporcionado")
			return
		}
		// Only administrators may register someone else.
		userID := claims.UserID
		if isAdmin && req.UserID != 0 {
			userID = req.UserID
		}
		ins, err := c.Inscriptions.Register(userID, req.EventID)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateInscription) {
				writeError(w, http.StatusBadRequest, "El usuario ya está inscrito en este evento.")
				return
			}
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Evento no encontrado")
				return
			}
			writeError(w, http.StatusInternalServerError, "Error al crear la inscripción")
			return
		}
		writeJSON(w, http.StatusCreated, ins)
	case http.MethodDelete:
		var req struct {
			ID uint `json:"inscripcionid"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if err := c.Inscriptions.Remove(req.ID, claims.UserID, isAdmin); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Inscripción no encontrada")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "No tienes permiso para eliminar esta inscripción")
			default:
				writeError(w, http.StatusInternalServerError, "Error al eliminar la inscripción")
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]uint{"inscripcionid": req.ID})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
