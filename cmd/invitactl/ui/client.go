package ui

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrSessionExpired is returned whenever the server answers 401/403; the
// session drops its token and the UI goes back to the login screen.
var ErrSessionExpired = errors.New("sesión inválida o expirada")

// Session holds the issued token and attaches it as a bearer credential
// on every request. It is passed explicitly to whichever view needs it;
// nothing reads ambient state.
type Session struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewSession(baseURL string) *Session {
	return &Session{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Session) LoggedIn() bool { return s.Token != "" }

func (s *Session) Logout() { s.Token = "" }

// Login exchanges credentials for a token.
func (s *Session) Login(username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := s.http.Post(s.BaseURL+"/auth", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		if failure.Message == "" {
			failure.Message = fmt.Sprintf("login falló (%d)", resp.StatusCode)
		}
		return errors.New(failure.Message)
	}
	var ok struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil || ok.Token == "" {
		return errors.New("respuesta de login inválida")
	}
	s.Token = ok.Token
	return nil
}

type Evento struct {
	ID        uint   `json:"eventoid"`
	Nombre    string `json:"nombre"`
	Fecha     string `json:"fecha"`
	Ubicacion string `json:"ubicacion"`
	Tipo      *struct {
		Descripcion string `json:"descripcion"`
	} `json:"tipoevento"`
}

func (s *Session) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		s.Logout()
		return ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("respuesta inesperada (%d)", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *Session) FetchEventos() ([]Evento, error) {
	var eventos []Evento
	if err := s.get("/eventos", &eventos); err != nil {
		return nil, err
	}
	return eventos, nil
}

// Whoami decodes the token payload without verifying it. Display only:
// the server re-verifies every request, this merely labels the screen.
func (s *Session) Whoami() (username string, admin bool) {
	parts := strings.Split(s.Token, ".")
	if len(parts) != 3 {
		return "", false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}
	var claims struct {
		Username string `json:"nombreusuario"`
		RoleID   uint   `json:"rol"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}
	return claims.Username, claims.RoleID == 1
}
