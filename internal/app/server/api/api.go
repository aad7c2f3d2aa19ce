// Package api assembles the HTTP surface: repositories over the sqlite
// storage, domain services on top, then the huma operations and the page
// handlers on one chi mux.
//
// GET  /login, /register          # auth forms (public)
// POST /login, /register          # form submits (public)
// GET  /, /credits, /loadmap      # editor pages (session)
// POST /savemap, /delete          # map upsert / removal (session)
// CRUD /api/cards[...]            # card builder (session)
// CRUD /api/assets[...]           # image assets (session)
// CRUD /api/collections[...]      # collections (session)
// CRUD /api/quests/{id}/cards     # map-card links (session)
package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	assetAPI "questbuilder/internal/app/server/api/http/asset"
	cardAPI "questbuilder/internal/app/server/api/http/card"
	collectionAPI "questbuilder/internal/app/server/api/http/collection"
	"questbuilder/internal/app/server/api/http/middleware"
	"questbuilder/internal/app/server/api/http/middleware/auth"
	"questbuilder/internal/app/server/api/http/middleware/logger"
	"questbuilder/internal/app/server/api/http/middleware/nocache"
	questAPI "questbuilder/internal/app/server/api/http/quest"
	"questbuilder/internal/app/server/web"
	"questbuilder/internal/config"
	"questbuilder/internal/domain/asset"
	"questbuilder/internal/domain/card"
	"questbuilder/internal/domain/collection"
	"questbuilder/internal/domain/quest"
	"questbuilder/internal/domain/session"
	"questbuilder/internal/domain/user"
	"questbuilder/internal/storage/sqlite"
)

// huma answers schema-level input failures with 422; every malformed
// request here is a plain 400.
func init() {
	newError := huma.NewError
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return newError(status, msg, errs...)
	}
}

type Handlers struct {
	Card       *cardAPI.Handler
	Asset      *assetAPI.Handler
	Collection *collectionAPI.Handler
	Quest      *questAPI.Handler
	Web        *web.Handler
	Auth       *auth.Auth
}

// New builds the chi mux with every operation registered through
// huma.Register plus the template page routes.
func New(storage *sqlite.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(nocache.Middleware)

	humaConfig := huma.DefaultConfig("Questbuilder API", "1.0.0")
	// keep response bodies to the documented fields; the default config
	// injects a $schema link into every JSON object
	humaConfig.CreateHooks = nil
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookie": {Type: "apiKey", In: "cookie", Name: auth.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Card.SetupRoutes(API)
	h.Asset.SetupRoutes(API)
	h.Collection.SetupRoutes(API)
	h.Quest.SetupRoutes(API)
	h.Web.SetupRoutes(mux, h.Auth)

	return mux
}

func handlers(storage *sqlite.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour

	sessionRepo := sqlite.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, ttl, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	userRepo := sqlite.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, log)

	cardRepo := sqlite.NewCardRepository(storage, log)
	cardService := card.NewService(cardRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	cardHandler := cardAPI.NewHandler(cardService, log, middlewares.GetAllAndClear())

	assetRepo := sqlite.NewAssetRepository(storage, log)
	assetService := asset.NewService(assetRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	assetHandler := assetAPI.NewHandler(assetService, log, middlewares.GetAllAndClear())

	collectionRepo := sqlite.NewCollectionRepository(storage, log)
	collectionService := collection.NewService(collectionRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	collectionHandler := collectionAPI.NewHandler(collectionService, log, middlewares.GetAllAndClear())

	questRepo := sqlite.NewQuestRepository(storage, log)
	questService := quest.NewService(questRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	questHandler := questAPI.NewHandler(questService, log, middlewares.GetAllAndClear())

	webHandler := web.NewHandler(userService, sessionService, questService, cfg.CardApp.Dir, ttl, log)

	return &Handlers{
		Card:       cardHandler,
		Asset:      assetHandler,
		Collection: collectionHandler,
		Quest:      questHandler,
		Web:        webHandler,
		Auth:       authMW,
	}
}
