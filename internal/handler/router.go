package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	offerHandler *api.OfferHandler,
	reservationHandler *api.ReservationHandler,
	adminHandler *api.AdminCancellationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, offerHandler, reservationHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	offerHandler *api.OfferHandler,
	reservationHandler *api.ReservationHandler,
	adminHandler *api.AdminCancellationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/offres", Handler: offerHandler.List},
			{Method: http.MethodGet, Path: "/offres/:id", Handler: offerHandler.Get},
		})

		client := apiGroup.Group("")
		client.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleClient))
		{
			addRoutes(client, []route{
				{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.Checkout},
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListMine},
				{Method: http.MethodPost, Path: "/reservation/annuler/:id", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPost, Path: "/demande-annulation/:paiementId", Handler: reservationHandler.RequestCancellation},
				{Method: http.MethodPost, Path: "/annulations/:reference/annuler", Handler: reservationHandler.CancelOrder},
			})
		}

		provider := apiGroup.Group("/prop")
		provider.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RolePrestataire))
		{
			addRoutes(provider, []route{
				{Method: http.MethodPost, Path: "/offres", Handler: offerHandler.Create},
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListForProvider},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/admin/annulations", Handler: adminHandler.ListPending},
				{Method: http.MethodGet, Path: "/admin/annulations/badge", Handler: adminHandler.Badge},
				{Method: http.MethodPost, Path: "/admin/annulations/:reference/accepter", Handler: adminHandler.AcceptGroup},
				{Method: http.MethodPost, Path: "/admin/annulations/:reference/refuser", Handler: adminHandler.RefuseGroup},
				{Method: http.MethodPost, Path: "/paiements/:paiementId/annuler/accepter", Handler: adminHandler.AcceptPayment},
				{Method: http.MethodPost, Path: "/paiements/:paiementId/annuler/refuser", Handler: adminHandler.RefusePayment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
