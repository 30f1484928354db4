package controllers

import (
	"github.com/jaekwan-dev/soccer-schedule-manager/api/middlewares"
)

func (s *Server) initializeRoutes() {

	v1 := s.Router.Group("/api/v1")
	{
		// Admin session
		v1.POST("/login", middlewares.LoginRateLimitMiddleware(), s.Login)

		// Match routes
		v1.GET("/matches", s.GetMatches)
		v1.GET("/matches/partitioned", s.GetMatchesPartitioned)
		v1.GET("/matches/venues", s.GetVenueSuggestions)
		v1.GET("/matches/:id", s.GetMatch)
		v1.POST("/matches", middlewares.AdminAuthMiddleware(), s.CreateMatch)
		v1.PUT("/matches/:id", middlewares.AdminAuthMiddleware(), s.UpdateMatch)
		v1.DELETE("/matches/:id", middlewares.AdminAuthMiddleware(), s.DeleteMatch)

		// Vote routes
		v1.POST("/matches/:id/vote", s.CastVote)
		v1.DELETE("/matches/:id/vote", middlewares.AdminAuthMiddleware(), s.RemoveVote)

		// Team generation
		v1.POST("/matches/:id/teams", middlewares.AdminAuthMiddleware(), s.GenerateTeams)

		// Member roster routes
		v1.GET("/members", s.GetMembers)
		v1.POST("/members", middlewares.AdminAuthMiddleware(), s.CreateMember)
		v1.PUT("/members/:id", middlewares.AdminAuthMiddleware(), s.UpdateMember)
		v1.DELETE("/members/:id", middlewares.AdminAuthMiddleware(), s.DeleteMember)

		// Comment routes
		v1.GET("/matches/:id/comments", s.GetComments)
		v1.POST("/matches/:id/comments", s.CreateComment)
		v1.DELETE("/comments/:id", middlewares.AdminAuthMiddleware(), s.DeleteComment)
	}
}
