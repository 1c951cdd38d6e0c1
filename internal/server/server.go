// Package server exposes tournaments over HTTP and the spectator feed
// over WebSocket.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"StarGame/internal/archive"
	"StarGame/internal/game/manager"
	"StarGame/internal/middleware"
	"StarGame/internal/utils"
	"StarGame/internal/websocket"
)

// Options configures NewRouter.
type Options struct {
	// Secret protects POST /tournaments. Empty leaves it open.
	Secret []byte
	// Defaults fill the zero fields of a start request.
	Defaults manager.StartRequest
}

type Handler struct {
	mgr      *manager.GameManager
	defaults manager.StartRequest
}

func NewRouter(mgr *manager.GameManager, hub *websocket.Hub, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &Handler{mgr: mgr, defaults: opts.Defaults}

	api := r.Group("/tournaments")
	{
		api.GET("", h.List)
		api.GET("/:id", h.Get)
		api.GET("/:id/rounds", h.Rounds)
		api.GET("/:id/standings", h.Standings)

		if len(opts.Secret) > 0 {
			api.POST("", middleware.JwtAuthMiddleware(opts.Secret), h.Create)
		} else {
			utils.Log.Warn("jwt.secret is empty, POST /tournaments is open")
			api.POST("", h.Create)
		}
	}

	if hub != nil {
		r.GET("/ws", websocket.ServeWS(hub))
	}
	return r
}

// POST /tournaments body: {actors, rounds, seed, names}
func (h *Handler) Create(c *gin.Context) {
	var req manager.StartRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Actors == 0 {
		req.Actors = h.defaults.Actors
	}
	if req.Rounds == 0 {
		req.Rounds = h.defaults.Rounds
	}
	if req.Seed == 0 {
		req.Seed = h.defaults.Seed
	}
	if len(req.Names) == 0 {
		req.Names = h.defaults.Names
	}

	id, err := h.mgr.Start(req)
	if errors.Is(err, manager.ErrBadRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Log.Info("tournament created", "id", id, "by", c.GetString(middleware.ContextSubject))
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

// GET /tournaments
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"running": h.mgr.Running()})
}

// GET /tournaments/:id
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	res, finished, err := h.mgr.Result(c.Request.Context(), id)
	if errors.Is(err, archive.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{"id": id, "finished": finished}
	if st, ok := h.mgr.Status(id); ok {
		body["status"] = st
	}
	if finished {
		body["result"] = res
	}
	c.JSON(http.StatusOK, body)
}

// GET /tournaments/:id/rounds
func (h *Handler) Rounds(c *gin.Context) {
	rounds, err := h.mgr.Rounds(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(rounds) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": archive.ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rounds": rounds})
}

// GET /tournaments/:id/standings
func (h *Handler) Standings(c *gin.Context) {
	rows, ok := h.mgr.Standings(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": archive.ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"standings": rows})
}
