// Package api wires the Gin HTTP gateway: authentication, posts, follow
// relations, a raw key-value surface, and ring introspection.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErnestoAbreu/distributed-social-network/internal/app"
	"github.com/ErnestoAbreu/distributed-social-network/internal/chord"
)

// Handler holds all dependencies injected from main.
type Handler struct {
	auth      *app.AuthService
	posts     *app.PostRepository
	relations *app.RelationsRepository
	node      *chord.Node
	router    *chord.Router
}

// NewHandler creates a Handler.
func NewHandler(auth *app.AuthService, posts *app.PostRepository, relations *app.RelationsRepository, node *chord.Node, router *chord.Router) *Handler {
	return &Handler{auth: auth, posts: posts, relations: relations, node: node, router: router}
}

// Register mounts all routes on r.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/auth/register", h.RegisterUser)
	r.POST("/auth/login", h.Login)

	authed := r.Group("/", Auth(h.auth))
	authed.POST("/posts", h.CreatePost)
	authed.GET("/posts/:id", h.GetPost)
	authed.POST("/posts/:id/repost", h.Repost)
	authed.GET("/users/:username/posts", h.UserPosts)
	authed.POST("/users/:username/follow", h.Follow)
	authed.DELETE("/users/:username/follow", h.Unfollow)
	authed.GET("/users/:username/following", h.Following)
	authed.GET("/users/:username/followers", h.Followers)
	authed.GET("/feed", h.Feed)

	// Raw KV surface, useful for operators and debugging.
	kv := r.Group("/kv")
	kv.GET("/*key", h.KVGet)
	kv.PUT("/*key", h.KVPut)
	kv.DELETE("/*key", h.KVDelete)

	r.GET("/ring/status", h.RingStatus)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, chord.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, chord.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, chord.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, app.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, app.ErrBadCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}

// ─── Auth ────────────────────────────────────────────────────────────────────

// RegisterUser handles POST /auth/register
// Body: {"username": "...", "display_name": "...", "password": "..."}
func (h *Handler) RegisterUser(c *gin.Context) {
	var body struct {
		Username    string `json:"username" binding:"required"`
		DisplayName string `json:"display_name"`
		Password    string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.auth.Register(body.Username, body.DisplayName, body.Password); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"registered": body.Username})
}

// Login handles POST /auth/login
// Body: {"username": "...", "password": "..."}
func (h *Handler) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.auth.Login(body.Username, body.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ─── Posts ───────────────────────────────────────────────────────────────────

// CreatePost handles POST /posts
// Body: {"content": "..."}
func (h *Handler) CreatePost(c *gin.Context) {
	var body struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := h.posts.CreatePost(currentUser(c), body.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /posts/:id
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.posts.LoadPost(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Repost handles POST /posts/:id/repost
func (h *Handler) Repost(c *gin.Context) {
	post, err := h.posts.Repost(currentUser(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UserPosts handles GET /users/:username/posts
func (h *Handler) UserPosts(c *gin.Context) {
	posts, err := h.posts.LoadPosts(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Feed handles GET /feed
func (h *Handler) Feed(c *gin.Context) {
	posts, err := h.posts.Feed(currentUser(c), h.relations)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ─── Relations ───────────────────────────────────────────────────────────────

// Follow handles POST /users/:username/follow
func (h *Handler) Follow(c *gin.Context) {
	if err := h.relations.Follow(currentUser(c), c.Param("username")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": c.Param("username")})
}

// Unfollow handles DELETE /users/:username/follow
func (h *Handler) Unfollow(c *gin.Context) {
	if err := h.relations.Unfollow(currentUser(c), c.Param("username")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unfollowed": c.Param("username")})
}

// Following handles GET /users/:username/following
func (h *Handler) Following(c *gin.Context) {
	users, err := h.relations.Following(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": users})
}

// Followers handles GET /users/:username/followers
func (h *Handler) Followers(c *gin.Context) {
	users, err := h.relations.Followers(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": users})
}

// ─── Raw KV ──────────────────────────────────────────────────────────────────

func kvKey(c *gin.Context) string {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	return key
}

// KVGet handles GET /kv/*key
func (h *Handler) KVGet(c *gin.Context) {
	value, err := h.router.Load(kvKey(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": kvKey(c), "value": string(value)})
}

// KVPut handles PUT /kv/*key
// Body: {"value": "..."}
func (h *Handler) KVPut(c *gin.Context) {
	var body struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.router.Save(kvKey(c), []byte(body.Value)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": kvKey(c)})
}

// KVDelete handles DELETE /kv/*key
func (h *Handler) KVDelete(c *gin.Context) {
	if err := h.router.Delete(kvKey(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": kvKey(c)})
}

// ─── Ring ────────────────────────────────────────────────────────────────────

// RingStatus handles GET /ring/status
func (h *Handler) RingStatus(c *gin.Context) {
	self := h.node.Self()
	succ := h.node.Successor()
	pred, hasPred := h.node.Predecessor()

	status := gin.H{
		"id":      self.ID,
		"address": self.Address,
		"alone":   h.node.Alone(),
	}
	if !succ.IsZero() {
		status["successor"] = gin.H{"id": succ.ID, "address": succ.Address}
	}
	if hasPred {
		status["predecessor"] = gin.H{"id": pred.ID, "address": pred.Address}
	}
	c.JSON(http.StatusOK, status)
}
