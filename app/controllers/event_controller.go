package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"invita/app/models"
	"invita/app/services"
)

type EventController struct{ Events *services.EventService }

func NewEventController(events *services.EventService) *EventController {
	return &EventController{Events: events}
}

type eventPayload struct {
	ID          uint   `json:"eventoid"`
	Name        string `json:"nombre"`
	Date        string `json:"fecha"`
	Location    string `json:"ubicacion"`
	Image       string `json:"imagen"`
	EventTypeID uint   `json:"tipoeventoid"`
}

// parseFecha accepts RFC 3339 or a bare date, the two formats the
// original clients send.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (c *EventController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
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

func (c *EventController) list(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error al obtener los eventos")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (c *EventController) create(w http.ResponseWriter, r *http.Request) {
	var req eventPayload
	_ = json.NewDecoder(r.Body).Decode(&req)
	fecha, err := parseFecha(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Fecha inválida")
		return
	}
	e := &models.Event{Name: req.Name, Date: fecha, Location: req.Location, Image: req.Image, EventTypeID: req.EventTypeID}
	if err := c.Events.Create(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "Error al crear el evento")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (c *EventController) update(w http.ResponseWriter, r *http.Request) {
	var req eventPayload
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "ID no proporcionado")
		return
	}
	fecha, err := parseFecha(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Fecha inválida")
		return
	}
	e := &models.Event{ID: req.ID, Name: req.Name, Date: fecha, Location: req.Location, Image: req.Image, EventTypeID: req.EventTypeID}
	if err := c.Events.Update(r.Context(), e); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Evento no encontrado")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error al actualizar el evento")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (c *EventController) delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID uint `json:"eventoid"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Events.Delete(r.Context(), req.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Error al eliminar el evento")
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint{"eventoid": req.ID})
}
