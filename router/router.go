package router

import (
	"net/http"

	"invita/app/controllers"
	"invita/app/middleware"
)

type Controllers struct {
	HTTP         *controllers.HTTPController
	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Roles        *controllers.RoleController
	Events       *controllers.EventController
	EventTypes   *controllers.EventTypeController
	Inscriptions *controllers.InscriptionController
	Organizers   *controllers.OrganizerController
}

func NewRouter(c Controllers, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.Handle("/ping", middleware.WithRoute("/ping", http.HandlerFunc(c.HTTP.Ping)))
	mux.Handle("/auth", middleware.WithRoute("/auth", http.HandlerFunc(c.Auth.Login)))
	mux.Handle("/auth/signup", middleware.WithRoute("/auth/signup", http.HandlerFunc(c.Auth.Signup)))

	// authenticated; writes restricted to administrators
	mux.Handle("/eventos", middleware.WithRoute("/eventos", mw.RequireAdminWrite(http.HandlerFunc(c.Events.Handle))))
	mux.Handle("/tipoeventos", middleware.WithRoute("/tipoeventos", mw.RequireAdminWrite(http.HandlerFunc(c.EventTypes.Handle))))

	// authenticated
	mux.Handle("/inscripciones", middleware.WithRoute("/inscripciones", mw.RequireAuth(http.HandlerFunc(c.Inscriptions.Handle))))

	// admin only
	mux.Handle("/usuarios", middleware.WithRoute("/usuarios", mw.RequireAdmin(http.HandlerFunc(c.Users.Handle))))
	mux.Handle("/usuarios/", middleware.WithRoute("/usuarios/{id}", mw.RequireAdmin(http.HandlerFunc(c.Users.GetByID))))
	mux.Handle("/roles", middleware.WithRoute("/roles", mw.RequireAdmin(http.HandlerFunc(c.Roles.Handle))))
	mux.Handle("/organizadores", middleware.WithRoute("/organizadores", mw.RequireAdmin(http.HandlerFunc(c.Organizers.Handle))))

	return mux
}
