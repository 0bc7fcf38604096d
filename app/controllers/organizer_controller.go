package controllers

import (
	"encoding/json"
	"net/http"

	"invita/app/models"
	"invita/app/services"
)

type OrganizerController struct{ Organizers *services.OrganizerService }

func NewOrganizerController(organizers *services.OrganizerService) *OrganizerController {
	return &OrganizerController{Organizers: organizers}
}

func (c *OrganizerController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		orgs, err := c.Organizers.List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error al obtener los organizadores")
			return
		}
		writeJSON(w, http.StatusOK, orgs)
	case http.MethodPost:
		var o models.Organizer
		_ = json.NewDecoder(r.Body).Decode(&o)
		if o.UserID == 0 || o.EventID == 0 {
			writeError(w, http.StatusBadRequest, "Datos incompletos")
			return
		}
		o.ID = 0
		if err := c.Organizers.Create(&o); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al crear el organizador")
			return
		}
		writeJSON(w, http.StatusCreated, o)
	case http.MethodDelete:
		var req struct {
			ID uint `json:"organizadorid"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if err := c.Organizers.Delete(req.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al eliminar el organizador")
			return
		}
		writeJSON(w, http.StatusOK, map[string]uint{"organizadorid": req.ID})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
