package handler

import "github.com/labstack/echo/v4"

// Register mounts the search API on e.
func Register(e *echo.Echo, h *SearchHandler) {
	api := e.Group("/api/v1")
	api.POST("/flights/search", h.SearchFlights)
	api.POST("/hotels/search", h.SearchHotels)
	api.POST("/trains/search", h.SearchTrains)
	api.POST("/ships/search", h.SearchShips)
	api.GET("/history/:mode", h.History)
	api.POST("/bookings", h.Book)
	e.GET("/health", HealthHandler)
}
