package server

import (
	"net"
	"net/http"
	"strconv"

	"invita/global"
)

// StartHTTPServer binds the listener before returning so that address
// errors (occupied port, bad host) reach the caller instead of dying
// inside a goroutine. Serving itself happens in the background.
func StartHTTPServer(host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go func() {
		if err := http.Serve(ln, handler); err != nil {
			global.Logger.Fatal().Err(err).Msg("http server stopped")
		}
	}()
	return nil
}
