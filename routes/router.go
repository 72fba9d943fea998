package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pitchup/config"
	_ "github.com/DhavalSuthar-24/pitchup/docs"
	"github.com/DhavalSuthar-24/pitchup/internal/auth"
	"github.com/DhavalSuthar-24/pitchup/internal/club"
	"github.com/DhavalSuthar-24/pitchup/internal/match"
	"github.com/DhavalSuthar-24/pitchup/internal/metrics"
	"github.com/DhavalSuthar-24/pitchup/internal/middleware"
	"github.com/DhavalSuthar-24/pitchup/internal/player"
	"github.com/DhavalSuthar-24/pitchup/internal/rating"
	"github.com/DhavalSuthar-24/pitchup/internal/store"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
	"github.com/DhavalSuthar-24/pitchup/pkg/token"
	"github.com/DhavalSuthar-24/pitchup/pkg/validator"
	"github.com/DhavalSuthar-24/pitchup/utils"
)

const healthPingTimeout = 2 * time.Second

// Dependencies are the process-wide collaborators every router needs.
type Dependencies struct {
	Config *config.Config
	Store  store.DataStore
	Tokens *token.Manager
	Hasher *utils.Hasher
	Log    *zap.Logger
}

// Services groups one instance of each domain service.
type Services struct {
	Auth   *auth.Service
	Player *player.Service
	Club   *club.Service
	Match  *match.Service
	Rating *rating.Service
}

func NewServices(d Dependencies) *Services {
	return &Services{
		Auth:   auth.NewService(d.Store, d.Hasher, d.Tokens, d.Log.Named("auth")),
		Player: player.NewService(d.Store, d.Log.Named("player")),
		Club:   club.NewService(d.Store, d.Log.Named("club")),
		Match:  match.NewService(d.Store, d.Log.Named("match")),
		Rating: rating.NewService(d.Store, d.Log.Named("rating")),
	}
}

func SetupRoutes(d Dependencies, svc *Services) *gin.Engine {
	validator.UseJSONFieldNames()
	metrics.Register()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log.Named("http")),
		gin.Recovery(),
		metrics.Middleware(),
		middleware.Timeout(d.Config.App.RequestTimeout),
	)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.Config.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		responses.SendError(c, http.StatusNotFound, "Route not found")
	})

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>PitchUp</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>PitchUp API</h1>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", healthHandler(d))

	authMiddleware := middleware.AuthMiddleware(d.Tokens, d.Store)
	auth.RegisterAuthRoutes(api, svc.Auth, authMiddleware)
	player.RegisterPlayerRoutes(api, svc.Player, authMiddleware)
	club.ClubRoutes(api, svc.Club, authMiddleware)
	match.MatchRoutes(api, svc.Match, authMiddleware)
	rating.RegisterRatingRoutes(api, svc.Rating, authMiddleware)

	return r
}

type healthStatus struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	PublicKey string `json:"publicKey"`
	Env       string `json:"env"`
}

// @Summary      Service health
// @Description  Reports data store reachability and whether a public key is configured.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  responses.Envelope{data=healthStatus}
// @Failure      503  {object}  responses.Envelope{data=healthStatus}
// @Router       /health [get]
func healthHandler(d Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		h := healthStatus{Status: "ok", Store: "up", PublicKey: "missing", Env: d.Config.App.Env}
		if d.Config.PublicKeyConfigured() {
			h.PublicKey = "configured"
		}
		if err := d.Store.Ping(ctx); err != nil {
			d.Log.Warn("health check: data store unreachable", zap.Error(err))
			h.Status, h.Store = "degraded", "down"
			c.JSON(http.StatusServiceUnavailable, responses.Envelope{
				Success: false,
				Data:    h,
				Error:   "Data store unavailable",
				Metadata: responses.Metadata{
					Timestamp: time.Now().UTC(),
					RequestID: c.GetString(responses.RequestIDKey),
				},
			})
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Service is healthy", h)
	}
}
