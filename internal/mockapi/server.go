// Package mockapi is a faithful fake of the club backend's REST surface,
// used by cmd/mockapi for local development and by the test suite. It keeps
// the production quirks on purpose: per-endpoint envelope keys, the `_id`
// versus `id` identifier split, the authToken header scheme, and the public
// student registration route.
package mockapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clubsync/internal/auth"
)

// Config carries the knobs the fake backend needs.
type Config struct {
	AuthHeader    string
	JWTIssuer     string
	JWTSigningKey string
	SessionTTL    time.Duration
	AdminEmail    string
	AdminPassword string
	AdminName     string
	Seed          bool
}

// Server holds the in-memory resource tables. Nothing persists across
// restarts.
type Server struct {
	cfg Config

	mu     sync.Mutex
	tables []*table
}

// table is one resource's storage plus its wire contract: the identifier key
// it serializes, the envelope keys each endpoint wraps records under (empty
// means bare body), and whether creation requires a credential.
type table struct {
	base       string
	idKey      string // "_id" for the Mongo-shaped resources, "id" for team
	listKey    string
	createKey  string
	updateKey  string
	getKey     string
	createVerb string
	publicAdd  bool

	docs []map[string]any
}

// New builds a server with the six resource tables, optionally seeded.
func New(cfg Config) *Server {
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = "authToken"
	}
	if cfg.AdminName == "" {
		cfg.AdminName = "Admin"
	}
	s := &Server{
		cfg: cfg,
		tables: []*table{
			{base: "events", idKey: "_id", listKey: "events", createKey: "event", updateKey: "event", getKey: "event", createVerb: "create"},
			{base: "results", idKey: "_id", listKey: "results", createKey: "result", updateKey: "result", getKey: "result", createVerb: "create"},
			{base: "team", idKey: "id", listKey: "teams", createKey: "user", updateKey: "member", getKey: "member", createVerb: "add"},
			{base: "professors", idKey: "_id", listKey: "faculties", createKey: "professor", updateKey: "professor", getKey: "professor", createVerb: "add"},
			{base: "students", idKey: "_id", listKey: "students", createKey: "Student", updateKey: "user", getKey: "student", createVerb: "add", publicAdd: true},
			{base: "announcements", idKey: "_id", listKey: "announcements", createVerb: "create"},
		},
	}
	if cfg.Seed {
		s.seed()
	}
	return s
}

// Router mounts the REST surface on a fresh gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	s.Mount(r)
	return r
}

// Mount registers all routes on an existing engine, so callers can layer
// their own middleware first.
func (s *Server) Mount(r *gin.Engine) {
	r.POST("/auth/login", s.login)
	r.GET("/auth/me", s.authRequired(), s.me)

	for _, t := range s.tables {
		t := t
		g := r.Group("/" + t.base)
		// "all" shares the parameterized segment, like the real backend
		g.GET("/get/:id", s.get(t))
		if t.publicAdd {
			g.POST("/"+t.createVerb, s.create(t))
		} else {
			g.POST("/"+t.createVerb, s.authRequired(), s.create(t))
		}
		g.PUT("/update/:id", s.authRequired(), s.update(t))
		g.DELETE("/delete/:id", s.authRequired(), s.delete(t))
	}
}

func (s *Server) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if body.Email != s.cfg.AdminEmail || body.Password != s.cfg.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token, err := auth.Issue(s.cfg.AdminEmail, s.cfg.AdminName, "admin", s.cfg.JWTIssuer, s.cfg.JWTSigningKey, s.cfg.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token issue failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authToken": token,
		"user":      s.adminUser(),
		"message":   "login successful",
	})
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": s.adminUser()})
}

func (s *Server) adminUser() gin.H {
	return gin.H{
		"_id":   "admin-1",
		"name":  s.cfg.AdminName,
		"email": s.cfg.AdminEmail,
		"role":  "admin",
	}
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(s.cfg.AuthHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing auth token"})
			return
		}
		if _, err := auth.Parse(token, s.cfg.JWTSigningKey, s.cfg.JWTIssuer); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid auth token"})
			return
		}
		c.Next()
	}
}

func (s *Server) get(t *table) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s.mu.Lock()
		defer s.mu.Unlock()

		if id == "all" {
			docs := make([]map[string]any, len(t.docs))
			copy(docs, t.docs)
			c.JSON(http.StatusOK, gin.H{t.listKey: docs})
			return
		}

		doc := t.find(id)
		if doc == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": t.base + " not found"})
			return
		}
		c.JSON(http.StatusOK, envelope(t.getKey, doc))
	}
}

func (s *Server) create(t *table) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		body[t.idKey] = uuid.NewString()

		s.mu.Lock()
		t.docs = append(t.docs, body)
		s.mu.Unlock()

		c.JSON(http.StatusOK, envelope(t.createKey, body))
	}
}

func (s *Server) update(t *table) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		s.mu.Lock()
		doc := t.find(c.Param("id"))
		if doc != nil {
			for k, v := range body {
				if k != t.idKey {
					doc[k] = v
				}
			}
		}
		s.mu.Unlock()

		if doc == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": t.base + " not found"})
			return
		}
		c.JSON(http.StatusOK, envelope(t.updateKey, doc))
	}
}

func (s *Server) delete(t *table) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s.mu.Lock()
		defer s.mu.Unlock()

		if id == "all" {
			t.docs = nil
			c.JSON(http.StatusOK, gin.H{"message": "deleted all"})
			return
		}

		for i, doc := range t.docs {
			if idOf(doc, t.idKey) == id {
				t.docs = append(t.docs[:i], t.docs[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "deleted"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": t.base + " not found"})
	}
}

func (t *table) find(id string) map[string]any {
	for _, doc := range t.docs {
		if idOf(doc, t.idKey) == id {
			return doc
		}
	}
	return nil
}

func idOf(doc map[string]any, idKey string) string {
	id, _ := doc[idKey].(string)
	return id
}

// envelope wraps a record under its endpoint key, or returns it bare when
// the endpoint has none (announcements).
func envelope(key string, doc map[string]any) any {
	if key == "" {
		return doc
	}
	return gin.H{key: doc}
}
