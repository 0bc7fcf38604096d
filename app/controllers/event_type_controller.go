package controllers

import (
	"encoding/json"
	"net/http"

	"invita/app/models"
	"invita/app/services"
)

type EventTypeController struct{ Types *services.EventTypeService }

func NewEventTypeController(types *services.EventTypeService) *EventTypeController {
	return &EventTypeController{Types: types}
}

func (c *EventTypeController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		types, err := c.Types.List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error al obtener los tipos de evento")
			return
		}
		writeJSON(w, http.StatusOK, types)
	case http.MethodPost:
		var t models.EventType
		_ = json.NewDecoder(r.Body).Decode(&t)
		if t.Description == "" {
			writeError(w, http.StatusBadRequest, "Descripción no proporcionada")
			return
		}
		t.ID = 0
		if err := c.Types.Create(&t); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al crear el tipo de evento")
			return
		}
		writeJSON(w, http.StatusCreated, t)
	case http.MethodPut:
		var t models.EventType
		_ = json.NewDecoder(r.Body).Decode(&t)
		if t.ID == 0 {
			writeError(w, http.StatusBadRequest, "ID no proporcionado")
			return
		}
		if err := c.Types.Update(&t); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al actualizar el tipo de evento")
			return
		}
		writeJSON(w, http.StatusOK, t)
	case http.MethodDelete:
		var req struct {
			ID uint `json:"tipoeventoid"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if err := c.Types.Delete(req.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "Error al eliminar el tipo de evento")
			return
		}
		writeJSON(w, http.StatusOK, map[string]uint{"tipoeventoid": req.ID})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
