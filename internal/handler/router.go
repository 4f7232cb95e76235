package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gavel/internal/domain/user"
	"gavel/internal/handler/api"
	"gavel/internal/handler/middleware"
	"gavel/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	Permission  *middleware.PermissionMiddleware
	Verified    *middleware.VerifiedMiddleware
	Idempotency *middleware.IdempotencyMiddleware
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	auctionHandler *api.AuctionHandler,
	bidHandler *api.BidHandler,
	streamHandler *api.StreamHandler,
	userHandler *api.UserHandler,
	mws Middlewares,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, auctionHandler, bidHandler, streamHandler, userHandler, mws)
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
	auctionHandler *api.AuctionHandler,
	bidHandler *api.BidHandler,
	streamHandler *api.StreamHandler,
	userHandler *api.UserHandler,
	mws Middlewares,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auctions := apiGroup.Group("/auctions")
		{
			addRoutes(auctions, []route{
				{Method: http.MethodGet, Path: "", Handler: auctionHandler.ListAuctions},
				{Method: http.MethodGet, Path: "/:id", Handler: auctionHandler.GetAuction},
				{Method: http.MethodGet, Path: "/:id/stream", Handler: streamHandler.StreamBidUpdates},
			})

			addRoutes(auctions, []route{
				{
					Method: http.MethodPost, Path: "", Handler: auctionHandler.CreateAuction,
					Mw: []gin.HandlerFunc{
						mws.Auth.RequireAuth(),
						mws.Verified.RequireVerified(),
						mws.Permission.RequirePermission(user.ActionAuctionCreate),
					},
				},
				{
					Method: http.MethodDelete, Path: "/:id", Handler: auctionHandler.DeleteAuction,
					Mw: []gin.HandlerFunc{
						mws.Auth.RequireAuth(),
						mws.Permission.RequirePermission(user.ActionAuctionDelete),
					},
				},
				{
					Method: http.MethodPost, Path: "/:id/bids", Handler: bidHandler.PlaceBid,
					Mw: []gin.HandlerFunc{
						mws.Auth.RequireAuth(),
						mws.Verified.RequireVerified(),
						mws.Permission.RequirePermission(user.ActionBidPlace),
						mws.Idempotency.Guard(),
					},
				},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{
					Method: http.MethodPatch, Path: "/:id/verification", Handler: userHandler.SetVerified,
					Mw: []gin.HandlerFunc{
						mws.Auth.RequireAuth(),
						mws.Permission.RequirePermission(user.ActionUserVerify),
					},
				},
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
		// Route-scoped middleware goes through gin's own chain so handlers
		// that act after c.Next(), like the idempotency guard, see the
		// final response.
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodPatch:
			g.PATCH(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
