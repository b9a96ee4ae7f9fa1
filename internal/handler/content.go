package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skybook/skybook/internal/models"
	"github.com/skybook/skybook/internal/ratelimit"
)

// siteContent is the static marketing copy a front end renders around the
// search form.
var siteContent = models.ContentResponse{
	Hero: models.Hero{
		Title: "Professional Flight Solutions",
		Subtitle: "Trusted by businesses worldwide for reliable, efficient flight booking " +
			"services. Advanced technology, competitive rates, and 24/7 support.",
		Stats: []models.Stat{
			{Number: "500+", Label: "Destinations"},
			{Number: "50k+", Label: "Happy Travelers"},
			{Number: "24/7", Label: "Support"},
		},
	},
	About: models.About{
		Text: "SkyBook is your trusted partner for flight booking. We provide " +
			"easy-to-use search functionality and competitive prices for flights worldwide.",
		Features: []models.Feature{
			{Title: "Global Coverage", Description: "Connect to 500+ destinations worldwide"},
			{Title: "Best Prices", Description: "Competitive rates guaranteed"},
			{Title: "Secure Booking", Description: "Safe and secure transactions"},
		},
	},
	Airlines: []models.Airline{
		{Title: "Premium Fleet", Description: "Modern aircraft with latest technology"},
		{Title: "Comfort First", Description: "Spacious seating and premium amenities"},
		{Title: "Global Reach", Description: "International destinations worldwide"},
	},
}

func ContentHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, siteContent)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// RateLimit rejects requests from clients that exhausted their token bucket.
func RateLimit(limiter *ratelimit.ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests, slow down",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}
