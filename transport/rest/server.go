package rest

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Register - mounts the REST routes on the shared router.
func Register(router *httprouter.Router, h Handlers) {
	router.GET("/ping", PingHandler)

	router.POST("/games", h.CreateGame)
	router.GET("/games/:id", h.GetGame)
	router.DELETE("/games/:id", h.DeleteGame)
	router.PUT("/games/:id/players", h.SetPlayerNames)
	router.POST("/games/:id/moves", h.PlaceMarker)
	router.POST("/games/:id/reset", h.ResetGame)
	router.GET("/games/:id/qr", h.GameQRCode)

	router.GET("/users", h.ListUsers)
	router.PUT("/users/:id", h.SaveUser)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
