package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"netdash/internal/artifact"
	"netdash/internal/layout"
	"netdash/pkg/config"
)

// protectedPrefix gates the dashboard and everything the interactive page
// needs under it (the JSON API and the PDF export included).
const protectedPrefix = "/dashboard"

const loginErrorMessage = "Please enter any username and password"

// New builds the gin engine: session store, middleware, public login routes
// and the protected dashboard group. The page and bundle are read-only after
// startup, so handlers share them without locking.
func New(cfg *config.Config, log *zap.Logger, bundle artifact.Bundle, page *layout.Page) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestID())
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("netdash_session", store))

	// Health check
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Login flow
	router.GET("/", func(c *gin.Context) {
		renderLogin(c, log, "")
	})

	router.POST("/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if !validCredentials(username, password) {
			renderLogin(c, log, loginErrorMessage)
			return
		}

		if err := setLoggedIn(c); err != nil {
			log.Error("Failed to save session", zap.Error(err))
			c.String(http.StatusInternalServerError, "session error")
			return
		}
		c.Redirect(http.StatusFound, protectedPrefix+"/")
	})

	router.GET("/logout", func(c *gin.Context) {
		if err := clearSession(c); err != nil {
			log.Error("Failed to clear session", zap.Error(err))
		}
		c.Redirect(http.StatusFound, "/")
	})

	// Protected dashboard
	dash := router.Group(protectedPrefix)
	dash.Use(requireLogin())
	{
		servePage := func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", page.Dashboard)
		}
		dash.GET("", servePage)
		dash.GET("/", servePage)

		dash.GET("/api/clusters/:res", func(c *gin.Context) {
			switch c.Param("res") {
			case "1":
				c.JSON(http.StatusOK, bundle.Community)
			case "2":
				c.JSON(http.StatusOK, bundle.Granular)
			default:
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown resolution"})
			}
		})

		dash.GET("/api/users", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"users":   bundle.Users.Users,
				"columns": bundle.Users.Columns,
			})
		})

		dash.GET("/export.pdf", reportPDF(bundle, log))
	}

	// Unrouted paths under the protected prefix are still gated: an
	// unauthenticated probe gets the login redirect, never a 404 that
	// confirms the path exists.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, protectedPrefix) && !currentSession(c).LoggedIn {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.String(http.StatusNotFound, "not found")
	})

	return router
}

// validCredentials is the deliberate placeholder policy: any non-empty pair
// passes. TODO(auth): replace with a real credential check before exposing
// this outside sample-data demos.
func validCredentials(username, password string) bool {
	return username != "" && password != ""
}

// requireLogin short-circuits unauthenticated requests with a redirect to
// the login page. Read-only: it never mutates session state.
func requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).LoggedIn {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func renderLogin(c *gin.Context, log *zap.Logger, errMsg string) {
	html, err := layout.RenderLogin(errMsg)
	if err != nil {
		log.Error("Failed to render login page", zap.Error(err))
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// requestID tags every request with an id for log correlation
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
