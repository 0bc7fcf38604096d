package services

import "errors"

var (
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidCredentials   = errors.New("contraseña incorrecta")
	ErrDuplicateUser        = errors.New("el correo o nombre de usuario ya está registrado")
	ErrDuplicateInscription = errors.New("el usuario ya está inscrito en este evento")
	ErrNotFound             = errors.New("registro no encontrado")
	ErrForbidden            = errors.New("operación no permitida")
)
