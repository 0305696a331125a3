package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geodlib/geodesic"
)

// validMask is every bit a client may set in an outmask.
const validMask = geodesic.All | geodesic.LongUnroll

func outmask(m *uint32) (geodesic.Mask, error) {
	if m == nil {
		return geodesic.Standard, nil
	}
	mask := geodesic.Mask(*m)
	if mask&^validMask != 0 {
		return 0, fmt.Errorf("outmask %#x has unknown bits", *m)
	}
	return mask, nil
}

type inverseRequest struct {
	Lat1    *float64 `json:"lat1" binding:"required"`
	Lon1    *float64 `json:"lon1" binding:"required"`
	Lat2    *float64 `json:"lat2" binding:"required"`
	Lon2    *float64 `json:"lon2" binding:"required"`
	Outmask *uint32  `json:"outmask"`
}

func (s *Server) inverse(c *gin.Context) {
	var req inverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mask, err := outmask(req.Outmask)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r := s.e.GenInverse(*req.Lat1, *req.Lon1, *req.Lat2, *req.Lon2, mask)
	c.JSON(http.StatusOK, toJSON(r))
}

type directRequest struct {
	Lat1 *float64 `json:"lat1" binding:"required"`
	Lon1 *float64 `json:"lon1" binding:"required"`
	Azi1 *float64 `json:"azi1" binding:"required"`
	// S12 is the distance, or the arc length in degrees if Arc is set.
	S12     *float64 `json:"s12" binding:"required"`
	Arc     bool     `json:"arc"`
	Outmask *uint32  `json:"outmask"`
}

func (s *Server) direct(c *gin.Context) {
	var req directRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mask, err := outmask(req.Outmask)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r := s.e.GenDirect(*req.Lat1, *req.Lon1, *req.Azi1, req.Arc, *req.S12, mask)
	c.JSON(http.StatusOK, toJSON(r))
}

type polygonRequest struct {
	// Points are [lat, lon] pairs in degrees.
	Points   [][2]float64 `json:"points" binding:"required"`
	Polyline bool         `json:"polyline"`
	Reverse  bool         `json:"reverse"`
	// Sign defaults to true.
	Sign *bool `json:"sign"`
}

func (s *Server) polygon(c *gin.Context) {
	var req polygonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Points) > s.cfg.Polygon.MaxPoints {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("too many points: %d > %d", len(req.Points), s.cfg.Polygon.MaxPoints),
		})
		return
	}
	sign := req.Sign == nil || *req.Sign
	p := s.e.PolygonInit(req.Polyline)
	for _, pt := range req.Points {
		p.AddPoint(pt[0], pt[1])
	}
	var area, perimeter float64
	num := p.Compute(req.Reverse, sign, &area, &perimeter)
	resp := polygonJSON{Num: num, Perimeter: number(perimeter)}
	if !req.Polyline {
		resp.Area = number(area)
	}
	c.JSON(http.StatusOK, resp)
}

type lineRequest struct {
	Lat1 *float64 `json:"lat1" binding:"required"`
	Lon1 *float64 `json:"lon1" binding:"required"`
	// Either Azi1 and Step, or Lat2 and Lon2 must be given. With Lat2 and
	// Lon2 the count points are spread evenly from point 1 to point 2.
	Azi1  *float64 `json:"azi1"`
	Step  float64  `json:"step"`
	Lat2  *float64 `json:"lat2"`
	Lon2  *float64 `json:"lon2"`
	Count int      `json:"count" binding:"required,min=1"`
	// Arc makes Step an arc length in degrees.
	Arc    bool `json:"arc"`
	Unroll bool `json:"unroll"`
}

type linePoint struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
	Azi *float64 `json:"azi"`
	S   *float64 `json:"s"`
	A   *float64 `json:"a"`
}

func (s *Server) line(c *gin.Context) {
	var req lineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count > s.cfg.Polygon.MaxPoints {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("too many points: %d > %d", req.Count, s.cfg.Polygon.MaxPoints),
		})
		return
	}
	caps := geodesic.Standard | geodesic.DistanceIn
	var (
		l    *geodesic.Line
		step = req.Step
		arc  = req.Arc
	)
	switch {
	case req.Lat2 != nil && req.Lon2 != nil:
		l = s.e.InverseLine(*req.Lat1, *req.Lon1, *req.Lat2, *req.Lon2, caps)
		// spacing by arc length is exact for the end point
		arc = true
		step = 0
		if req.Count > 1 {
			step = l.Arc() / float64(req.Count-1)
		}
	case req.Azi1 != nil:
		l = s.e.Line(*req.Lat1, *req.Lon1, *req.Azi1, caps)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either azi1 or lat2 and lon2 are required"})
		return
	}
	mask := geodesic.Standard
	if req.Unroll {
		mask |= geodesic.LongUnroll
	}
	points := make([]linePoint, req.Count)
	for i := range points {
		r := l.GenPosition(arc, float64(i)*step, mask)
		points[i] = linePoint{
			Lat: number(r.Lat2),
			Lon: number(r.Lon2),
			Azi: number(r.Azi2),
			S:   number(r.Distance),
			A:   number(r.Arc),
		}
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}
