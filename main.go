// @title Team Tracker 后端 API
// @version 1.0
// @description 团队目标、任务、每日状态追踪与基于状态更新的语义检索和周报。

// @host localhost:8000
// @BasePath /

package main

import (
	"flag"
	"log"
	"team_tracker_backend/internal/app"
	"team_tracker_backend/internal/config"
	"team_tracker_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	mcpMode := flag.Bool("mcp", false, "以 MCP stdio 模式运行，不启动 HTTP 服务")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	// stdout 归 MCP 协议使用，日志改写到 stderr
	if *mcpMode {
		cfg.Server.Mode = "mcp"
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()
	defer application.Close()

	// 迁移完成后直接退出
	if *migrateOnly {
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	if *mcpMode {
		if err := application.RunMCP(); err != nil {
			logger.Log.Sugar().Fatalf("MCP server stopped: %v", err)
		}
		return
	}

	application.Run()
}
