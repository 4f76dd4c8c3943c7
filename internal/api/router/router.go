package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kvrvenkatca-ai/firm-timesheet/config"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/api/handler"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/api/middleware"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/jwt"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 仪表盘（按角色分流）
			authorized.GET("/dashboard", h.Dashboard.Get)

			// 客户模块（列表所有人可见，新增仅管理员）
			clients := authorized.Group("/clients")
			{
				clients.GET("", h.Client.List)
				clients.POST("", middleware.RoleAuth(model.RoleAdmin), h.Client.Create)
			}

			// 工时模块（员工）
			entries := authorized.Group("/entries")
			entries.Use(middleware.RoleAuth(model.RoleEmployee))
			{
				entries.POST("", h.Timesheet.CreateEntry)
				entries.GET("/week", h.Timesheet.WeeklySummary)
			}

			// 周提交模块
			submissions := authorized.Group("/submissions")
			{
				submissions.POST("", middleware.RoleAuth(model.RoleEmployee), h.Submission.SubmitWeek)
				submissions.GET("/status", middleware.RoleAuth(model.RoleEmployee), h.Submission.WeekStatus)
				submissions.GET("", middleware.RoleAuth(model.RoleAdmin), h.Submission.List)
				submissions.PUT("/:id/approve", middleware.RoleAuth(model.RoleAdmin), h.Submission.Approve)
				submissions.PUT("/:id/reject", middleware.RoleAuth(model.RoleAdmin), h.Submission.Reject)
			}

			// 报表模块（管理员）
			reports := authorized.Group("/reports")
			reports.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				reports.GET("/entries", h.Report.ListEntries)
				reports.GET("/export", h.Report.Export)
			}
		}
	}

	return r
}
