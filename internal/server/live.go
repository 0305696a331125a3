package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveRequest is one client message on /v1/polygon/live.
//
//	{"op":"add","lat":..,"lon":..}   append a vertex
//	{"op":"edge","azi":..,"s":..}    append an edge
//	{"op":"test","lat":..,"lon":..}  preview a vertex without adding it
//	{"op":"clear"}                   start over
//
// Reverse and Sign apply to the reported area; Sign defaults to true.
type liveRequest struct {
	Op      string  `json:"op"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Azi     float64 `json:"azi"`
	S       float64 `json:"s"`
	Reverse bool    `json:"reverse"`
	Sign    *bool   `json:"sign"`
}

type liveResponse struct {
	Op string `json:"op"`
	polygonJSON
	Error string `json:"error,omitempty"`
}

// live upgrades to a WebSocket owning one polygon. Every message is
// answered with the running totals, or for "test" with the preview.
func (s *Server) live(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	conn.SetReadLimit(4096)

	p := s.e.PolygonInit(false)
	for {
		var req liveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("live polygon closed", "err", err)
			}
			return
		}
		resp := liveResponse{Op: req.Op}
		sign := req.Sign == nil || *req.Sign
		var area, perimeter float64
		switch req.Op {
		case "add", "edge":
			if p.Num() >= s.cfg.Polygon.MaxPoints {
				resp.Error = "too many points"
				break
			}
			if req.Op == "add" {
				p.AddPoint(req.Lat, req.Lon)
			} else if p.Num() == 0 {
				resp.Error = "edge needs a starting point"
				break
			} else {
				p.AddEdge(req.Azi, req.S)
			}
			resp.Num = p.Compute(req.Reverse, sign, &area, &perimeter)
		case "test":
			resp.Num = p.TestPoint(req.Lat, req.Lon, req.Reverse, sign, &area, &perimeter)
		case "clear":
			p.Clear()
		default:
			resp.Error = "unknown op " + req.Op
		}
		if resp.Error == "" {
			resp.Perimeter = number(perimeter)
			resp.Area = number(area)
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
