package api

import (
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/handler/profile"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 모든 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: 생존 확인(/), 헬스체크(/health), 버전 정보(/version)
//   - 프로필 조회 엔드포인트: /api/*
//   - API 문서: Swagger UI (/swagger/*)
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, profileHandler *profile.Handler) {
	registerSystemRoutes(e, systemHandler)
	registerProfileRoutes(e, profileHandler)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/", h.LivenessHandler)
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

func registerProfileRoutes(e *echo.Echo, h *profile.Handler) {
	g := e.Group("/api")

	g.GET("/dunam", h.DamageHandler)
	g.GET("/dfgear", h.GearHandler)
	g.GET("/taecho", h.TaechoHandler)
	g.GET("/adventure-stat", h.AdventureStatHandler)
	g.GET("/taecho-channel-image", h.TaechoChannelImageHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
