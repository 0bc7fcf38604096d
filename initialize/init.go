package initialize

import (
	"fmt"
	"net/http"
	"time"

	"invita/app/cache"
	"invita/app/controllers"
	"invita/app/db"
	jwtutil "invita/app/jwt"
	"invita/app/middleware"
	"invita/app/models"
	"invita/app/repo"
	"invita/app/services"
	"invita/config"
	"invita/global"
	"invita/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Signer *jwtutil.Signer
	Users  *services.UserService
}

func Build(configPath string) (*App, error) {
	// Load config; a missing JWT secret aborts here.
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	// Connect DB
	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(
		&models.Role{}, &models.User{}, &models.EventType{},
		&models.Event{}, &models.Inscription{}, &models.Organizer{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Optional redis-backed evento cache
	var eventCache *cache.EventCache
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		eventCache = cache.NewEventCache(global.Rdb, time.Duration(cfg.Redis.TTLSec)*time.Second)
	}

	// Repositories and services
	userRepo := repo.NewUserRepository(gdb)
	roleRepo := repo.NewRoleRepository(gdb)
	eventRepo := repo.NewEventRepository(gdb)
	eventTypeRepo := repo.NewEventTypeRepository(gdb)
	inscriptionRepo := repo.NewInscriptionRepository(gdb)
	organizerRepo := repo.NewOrganizerRepository(gdb)

	userSvc := services.NewUserService(userRepo, roleRepo)
	eventSvc := services.NewEventService(eventRepo, eventCache)
	inscriptionSvc := services.NewInscriptionService(inscriptionRepo, eventRepo)
	roleSvc := services.NewRoleService(roleRepo)
	eventTypeSvc := services.NewEventTypeService(eventTypeRepo)
	organizerSvc := services.NewOrganizerService(organizerRepo)

	if err := userSvc.EnsureSeedData("admin", "admin"); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	ctrls := router.Controllers{
		HTTP:         controllers.NewHTTPController(),
		Auth:         controllers.NewAuthController(userSvc, signer),
		Users:        controllers.NewUserController(userSvc),
		Roles:        controllers.NewRoleController(roleSvc),
		Events:       controllers.NewEventController(eventSvc),
		EventTypes:   controllers.NewEventTypeController(eventTypeSvc),
		Inscriptions: controllers.NewInscriptionController(inscriptionSvc),
		Organizers:   controllers.NewOrganizerController(organizerSvc),
	}

	// Router wrapped with logging middleware
	h := middleware.Logging(router.NewRouter(ctrls, mw))

	return &App{Cfg: cfg, DB: gdb, Router: h, Signer: signer, Users: userSvc}, nil
}
