// Package server exposes the geodesic routines over HTTP. Inverse, direct,
// polygon and line sampling requests are plain JSON; live polygon editing
// runs over a WebSocket.
package server

import (
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geodlib/geodesic"
	"github.com/geodlib/geodesic/internal/config"
)

// Server holds the handlers' shared state. The ellipsoid is immutable so
// handlers may run concurrently.
type Server struct {
	cfg *config.Config
	e   *geodesic.Ellipsoid
	log *slog.Logger
}

// New returns the gin engine serving the API for ellipsoid e.
func New(cfg *config.Config, e *geodesic.Ellipsoid, log *slog.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Server{cfg: cfg, e: e, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog())

	r.GET("/healthz", s.health)
	v1 := r.Group("/v1")
	{
		v1.POST("/inverse", s.inverse)
		v1.POST("/direct", s.direct)
		v1.POST("/polygon", s.polygon)
		v1.POST("/line", s.line)
		v1.GET("/polygon/live", s.live)
	}
	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"radius":     s.e.Radius(),
		"flattening": s.e.Flattening(),
	})
}

// number converts x for JSON, which has no NaN or infinities.
func number(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

// resultJSON is geodesic.Result with the quantities that were not computed
// left out.
type resultJSON struct {
	Lat1       *float64 `json:"lat1,omitempty"`
	Lon1       *float64 `json:"lon1,omitempty"`
	Azi1       *float64 `json:"azi1,omitempty"`
	Lat2       *float64 `json:"lat2,omitempty"`
	Lon2       *float64 `json:"lon2,omitempty"`
	Azi2       *float64 `json:"azi2,omitempty"`
	S12        *float64 `json:"s12,omitempty"`
	A12        *float64 `json:"a12,omitempty"`
	M12Reduced *float64 `json:"m12,omitempty"`
	M12        *float64 `json:"M12,omitempty"`
	M21        *float64 `json:"M21,omitempty"`
	S12Area    *float64 `json:"S12,omitempty"`
}

func toJSON(r geodesic.Result) resultJSON {
	return resultJSON{
		Lat1:       number(r.Lat1),
		Lon1:       number(r.Lon1),
		Azi1:       number(r.Azi1),
		Lat2:       number(r.Lat2),
		Lon2:       number(r.Lon2),
		Azi2:       number(r.Azi2),
		S12:        number(r.Distance),
		A12:        number(r.Arc),
		M12Reduced: number(r.ReducedLength),
		M12:        number(r.M12),
		M21:        number(r.M21),
		S12Area:    number(r.Area),
	}
}

type polygonJSON struct {
	Num       int      `json:"num"`
	Perimeter *float64 `json:"perimeter"`
	Area      *float64 `json:"area,omitempty"`
}
