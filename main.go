package main

import (
	"flag"

	"invita/config"
	"invita/global"
	"invita/initialize"
	"invita/server"

	"github.com/fsnotify/fsnotify"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config file")
		host       = flag.String("host", "", "Override HTTP host")
		port       = flag.Int("port", 0, "Override HTTP port")
	)
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	h := app.Cfg.HTTP.Host
	if *host != "" {
		h = *host
	}
	p := app.Cfg.HTTP.Port
	if *port != 0 {
		p = *port
	}

	// Settings are read once; edits to the file only take effect after a
	// restart, so just surface them.
	config.Watch(*configPath, func(e fsnotify.Event) {
		global.Logger.Warn().Str("file", e.Name).Msg("config file changed, restart to apply")
	})

	if err := server.StartHTTPServer(h, p, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server failed")
	}
	global.Logger.Info().Str("host", h).Int("port", p).Msg("listening")

	select {}
}
