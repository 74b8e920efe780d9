package server

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/spektr-org/momwatch/config"
	"github.com/spektr-org/momwatch/dashboard"
	"github.com/spektr-org/momwatch/dataset"
	"github.com/spektr-org/momwatch/engine"
	"github.com/spektr-org/momwatch/loader"
	"github.com/spektr-org/momwatch/render"
)

// Server serves the dashboard page, chart images and the JSON API.
type Server struct {
	loader *loader.Loader
	cycle  *dashboard.Cycle
}

// New returns a Server over l.
func New(l *loader.Loader) *Server {
	return &Server{loader: l, cycle: dashboard.New(l)}
}

// Router builds the gin engine. The gin mode is the caller's business.
func (s *Server) Router(cfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	r.SetHTMLTemplate(template.Must(template.New("dashboard").Parse(dashboardHTML)))

	r.GET("/", s.Dashboard)
	r.GET("/health", s.Health)

	charts := r.Group("/charts")
	{
		charts.GET("/proportion.png", s.ProportionChart)
		charts.GET("/relationship.png", s.RelationshipChart)
	}

	api := r.Group("/api/v1")
	{
		api.GET("/datasets", s.Datasets)
		api.GET("/datasets/:id/schema", s.Schema)
		api.GET("/datasets/:id/schema/:column", s.SchemaColumn)
		api.GET("/dashboard", s.DashboardJSON)
		api.POST("/predict", s.Predict)
	}
	return r
}

// ── Request parsing ──────────────────────────────────────────────────────────

// cycleQuery is the dashboard's query string. The number boxes are bound
// as text so an empty or malformed entry can fall back to its default.
type cycleQuery struct {
	Dataset string `form:"dataset"`
	Value1  string `form:"value_1"`
	Value2  string `form:"value_2"`
	Value3  string `form:"value_3"`
	Predict string `form:"predict"`
}

func bindCycle(c *gin.Context) (dashboard.Request, bool) {
	var q cycleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abort(c, http.StatusBadRequest, "invalid request", err)
		return dashboard.Request{}, false
	}
	id, err := dataset.Parse(q.Dataset)
	if err != nil {
		abort(c, http.StatusBadRequest, "invalid dataset", err)
		return dashboard.Request{}, false
	}
	return dashboard.Request{
		Dataset: id,
		Inputs: engine.PredictorInputs{
			Value1: inputValue(q.Value1, engine.Value1Field),
			Value2: inputValue(q.Value2, engine.Value2Field),
			Value3: inputValue(q.Value3, engine.Value3Field),
		},
		Trigger: q.Predict != "",
	}, true
}

// inputValue reads one number box. Anything that is not a whole number
// keeps the field's default.
func inputValue(raw string, f engine.InputField) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return f.Default
	}
	return v
}

func abort(c *gin.Context, status int, msg string, err error) {
	log.WithField(requestIDKey, RequestID(c)).WithError(err).Debug(msg)
	c.AbortWithStatusJSON(status, gin.H{
		"error":   msg,
		"details": err.Error(),
	})
}

// ── Page ─────────────────────────────────────────────────────────────────────

type pageView struct {
	*dashboard.Page
	Title           string
	ProportionURL   string
	RelationshipURL string
}

// Dashboard renders one interaction cycle as HTML. A load failure still
// answers 200 with only the error banner, like the interactive app.
func (s *Server) Dashboard(c *gin.Context) {
	req, ok := bindCycle(c)
	if !ok {
		return
	}
	page := s.cycle.Run(req)

	view := pageView{Page: page, Title: render.Title}
	if page.Result != nil {
		q := url.Values{"dataset": {string(page.Dataset)}}.Encode()
		if page.Result.ProportionChart != nil {
			view.ProportionURL = "/charts/proportion.png?" + q
		}
		if page.Result.RelationshipChart != nil {
			view.RelationshipURL = "/charts/relationship.png?" + q
		}
	}
	c.HTML(http.StatusOK, "dashboard", view)
}

// DashboardJSON returns the Page for one cycle.
func (s *Server) DashboardJSON(c *gin.Context) {
	req, ok := bindCycle(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.cycle.Run(req))
}

// ── Charts ───────────────────────────────────────────────────────────────────

func (s *Server) ProportionChart(c *gin.Context) {
	s.chart(c, engine.BuildProportionChart)
}

func (s *Server) RelationshipChart(c *gin.Context) {
	s.chart(c, engine.BuildRelationshipChart)
}

func (s *Server) chart(c *gin.Context, build func(engine.View, string) *engine.ChartConfig) {
	id, err := dataset.Parse(c.Query("dataset"))
	if err != nil {
		abort(c, http.StatusBadRequest, "invalid dataset", err)
		return
	}
	table, err := s.loader.Load(id)
	if err != nil {
		abort(c, http.StatusInternalServerError, "dataset load failed", err)
		return
	}

	cfg := build(table, engine.TargetColumn(table))
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "chart not available",
			"details": "the dataset has no data for this chart",
		})
		return
	}

	width := queryInt(c, "width", render.DefaultWidth)
	height := queryInt(c, "height", render.DefaultHeight)
	var buf bytes.Buffer
	if err := render.Chart(&buf, cfg, width, height); err != nil {
		abort(c, http.StatusInternalServerError, "chart render failed", err)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 || v > 4096 {
		return def
	}
	return v
}

// ── API ──────────────────────────────────────────────────────────────────────

// Datasets lists the selector entries.
func (s *Server) Datasets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"datasets": dashboard.Choices(dataset.Default())})
}

// Schema returns the discovered column metadata of one dataset.
func (s *Server) Schema(c *gin.Context) {
	id, err := dataset.Parse(c.Param("id"))
	if err != nil {
		abort(c, http.StatusNotFound, "unknown dataset", err)
		return
	}
	sch, err := s.loader.Schema(id)
	if err != nil {
		abort(c, http.StatusInternalServerError, "dataset load failed", err)
		return
	}
	c.JSON(http.StatusOK, sch)
}

// SchemaColumn returns the metadata of one column.
func (s *Server) SchemaColumn(c *gin.Context) {
	id, err := dataset.Parse(c.Param("id"))
	if err != nil {
		abort(c, http.StatusNotFound, "unknown dataset", err)
		return
	}
	sch, err := s.loader.Schema(id)
	if err != nil {
		abort(c, http.StatusInternalServerError, "dataset load failed", err)
		return
	}
	col, ok := sch.Column(c.Param("column"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "unknown column",
			"details": c.Param("column"),
		})
		return
	}
	c.JSON(http.StatusOK, col)
}

// Predict evaluates the manual predictor. Missing fields keep their defaults.
func (s *Server) Predict(c *gin.Context) {
	in := engine.DefaultInputs()
	if err := c.ShouldBindJSON(&in); err != nil {
		abort(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	var p engine.Predictor
	c.JSON(http.StatusOK, p.Trigger(in))
}

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
