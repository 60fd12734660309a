// Package mcptools 通过 MCP (stdio) 暴露检索、周报与进度查询，
// 与 HTTP 接口调用同一组 service。
package mcptools

import (
	"context"
	"io"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "team-tracker"
	serverVersion = "1.0.0"
)

type InsightService interface {
	Search(ctx context.Context, query string, limit int) (*service.SearchResult, error)
	PeriodSummary(ctx context.Context, req service.PeriodSummaryRequest) (*service.PeriodSummary, error)
}

type ProgressService interface {
	GoalProgress(goalID uint) (*model.GoalProgressReport, error)
	MemberProgress(memberID uint) (*model.MemberProgressReport, error)
}

type tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Tools struct {
	server *server.MCPServer
	tools  []tool
}

func NewTools(insight InsightService, progress ProgressService) *Tools {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	t := &Tools{
		server: s,
		tools: []tool{
			NewSearchTool(insight),
			NewSummaryTool(insight),
			NewGoalProgressTool(progress),
			NewMemberProgressTool(progress),
		},
	}
	for _, tl := range t.tools {
		s.AddTool(tl.Definition(), tl.Handle)
	}
	return t
}

// ServeStdio 阻塞直到 ctx 结束或输入流关闭
func (t *Tools) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(t.server).Listen(ctx, in, out)
}

// intArg JSON 数字解码为 float64
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// idArg 缺失或非正数时 ok=false
func idArg(req mcp.CallToolRequest, key string) (uint, bool) {
	v := intArg(req, key, 0)
	if v <= 0 {
		return 0, false
	}
	return uint(v), true
}
