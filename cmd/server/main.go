package main

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"boatrace/internal/game"
	"boatrace/internal/shared/configs"
	"boatrace/internal/shared/logger"
)

func main() {
	if configs.Envs.GIN_MODE != "" {
		gin.SetMode(configs.Envs.GIN_MODE)
	}

	service := game.NewService()
	service.StartTickers(configs.Envs.ROOM_TTL)

	r := gin.Default()

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if configs.Envs.FRONTEND_ORIGIN != "" {
		allowedOrigins := []string{}
		if configs.Envs.GIN_MODE == "release" {
			allowedOrigins = append(allowedOrigins, "https://"+configs.Envs.FRONTEND_ORIGIN)
			allowedOrigins = append(allowedOrigins, "https://www."+configs.Envs.FRONTEND_ORIGIN)
		} else {
			allowedOrigins = append(allowedOrigins, "http://"+configs.Envs.FRONTEND_ORIGIN)
		}

		r.Use(func(ctx *gin.Context) {
			origin := ctx.Request.Header.Get("Origin")
			if origin == "" || slices.Contains(allowedOrigins, origin) {
				ctx.Next()
				return
			}
			ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden origin"})
			ctx.Abort()
		})

		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowCredentials: true,
			AllowHeaders:     []string{"Content-Type", "Origin"},
		}))
	}

	game.NewHandler(service).RegisterRoute(r)

	logger.Infof("game server listening on %s", configs.Envs.LISTEN_ADDR)
	err := r.Run(configs.Envs.LISTEN_ADDR)
	logger.Fatalf("couldn't start server: %v", err)
}
