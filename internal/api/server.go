package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/tohsaka888/societies-server/internal/api/docs"
	"github.com/tohsaka888/societies-server/internal/api/handler"
	"github.com/tohsaka888/societies-server/internal/api/middleware"
	"github.com/tohsaka888/societies-server/internal/core/service"
	"github.com/tohsaka888/societies-server/internal/logging"
	"github.com/tohsaka888/societies-server/pkg/config"
)

// Services bundles everything the routes depend on.
type Services struct {
	Auth    *service.AuthService
	Admin   *service.AdminService
	SignUp  *service.SignUpService
	Content *service.ContentService
}

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
	log    logging.Logger
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, svc Services, log logging.Logger) *Server {
	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := NewRouter(cfg.CORSOrigins, svc, log)
	if cfg.DevMode {
		MountDocs(router)
	}

	return &Server{
		router: router,
		srv: &http.Server{
			Addr:           cfg.APIAddr(),
			Handler:        router,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		config: cfg,
		log:    log,
	}
}

// NewRouter builds the route table.
func NewRouter(corsOrigins []string, svc Services, log logging.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(corsOrigins))

	authHandler := handler.NewAuthHandler(svc.Auth)
	adminHandler := handler.NewAdminHandler(svc.Admin)
	signUpHandler := handler.NewSignUpHandler(svc.SignUp)
	contentHandler := handler.NewContentHandler(svc.Content)

	// Accounts
	router.POST("/login", authHandler.Login)
	router.POST("/login/status", authHandler.Status)
	router.POST("/logout", authHandler.Logout)
	router.POST("/register", authHandler.Register)
	router.POST("/adminLogin", adminHandler.Login)

	// Competition sign-ups
	router.POST("/signUpCompetition", signUpHandler.SignUpCompetition)
	router.POST("/isSignUp", signUpHandler.IsSignUp)
	router.POST("/competitionUserList", signUpHandler.CompetitionUserList)

	// Site content
	router.POST("/competitionList", contentHandler.CompetitionList)
	router.POST("/pages", contentHandler.Pages)
	router.POST("/awardList", contentHandler.AwardList)
	router.POST("/competitionImages", contentHandler.CompetitionImages)
	router.POST("/addArticle", contentHandler.AddArticle)
	router.GET("/getArticles", contentHandler.GetArticles)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the societies server")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return router
}

// MountDocs serves the OpenAPI description and its UI under /swagger.
func MountDocs(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.log.Info(context.Background(), "starting HTTP server", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server. After Shutdown, Start returns
// http.ErrServerClosed immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
