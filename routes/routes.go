package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/config"
	"github.com/snap-point/insta-api/controllers"
	"github.com/snap-point/insta-api/events"
	"github.com/snap-point/insta-api/middleware"
	"github.com/snap-point/insta-api/social"
	"github.com/snap-point/insta-api/storage"
	"github.com/snap-point/insta-api/store"
)

// Dependencies is everything the HTTP layer is built from.
type Dependencies struct {
	Store      *store.Store
	Storage    storage.Storage
	Events     events.Publisher
	JWTSecret  []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Google     *config.GoogleConfig
	// MediaRoot is served under MediaURL when set (disk storage).
	MediaRoot string
	MediaURL  string
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Events == nil {
		deps.Events = events.LogPublisher{}
	}

	r := gin.New()
	r.Use(gin.LoggerWithWriter(os.Stdout), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		if err := deps.Store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.MediaRoot != "" && deps.MediaURL != "" {
		r.Static(deps.MediaURL, deps.MediaRoot)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(deps.JWTSecret))
	SetupRoutes(api, deps)

	return r
}

func SetupRoutes(api *gin.RouterGroup, deps Dependencies) {
	guard := social.NewGuard(deps.Store)
	likes := social.NewLikes(deps.Store)
	serializer := controllers.NewSerializer(likes, deps.Storage)

	authController := controllers.NewAuthController(deps.Store, deps.JWTSecret, deps.AccessTTL, deps.RefreshTTL, deps.Google)
	userController := controllers.NewUserController(deps.Store)
	postController := controllers.NewPostController(deps.Store, deps.Storage, deps.Events, serializer)
	commentController := controllers.NewCommentController(deps.Store, deps.Events, serializer)
	tagController := controllers.NewTagController(deps.Store, serializer)
	interactionController := controllers.NewInteractionController(deps.Store, guard, likes, deps.Events)
	validationController := controllers.NewValidationController(deps.Store)

	SetupAccountRoutes(api, authController)
	SetupUserRoutes(api, userController, authController)
	SetupPostRoutes(api, postController)
	SetupUploadRoutes(api, postController)
	SetupFeedRoutes(api, postController)
	SetupCommentRoutes(api, commentController)
	SetupTagRoutes(api, tagController)
	SetupInteractionRoutes(api, interactionController)
	SetupValidationRoutes(api, validationController)
}
