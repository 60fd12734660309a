package mcptools

import (
	"context"
	"fmt"
	"strings"
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/util"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchTool semantic_search
type SearchTool struct {
	insight InsightService
}

func NewSearchTool(insight InsightService) *SearchTool {
	return &SearchTool{insight: insight}
}

func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("semantic_search",
		mcp.WithDescription(
			"Answer a natural-language question about the team's work using the most relevant status updates.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Question, e.g. \"What did John work on last week?\""),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max status updates used as context (default: 10, max: 100)"),
		),
	)
}

func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(req.GetString("query", ""))
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	limit := intArg(req, "limit", util.DefaultSearchLimit)
	if limit < 1 || limit > util.MaxSearchLimit {
		return mcp.NewToolResultError("'limit' must be between 1 and 100"), nil
	}

	result, err := t.insight.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	var sb strings.Builder
	sb.WriteString(result.Answer)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "## Relevant updates (%d)\n", result.Count)
	for _, hit := range result.RelevantUpdates {
		u := hit.StatusUpdate
		name := u.MemberName()
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(&sb, "- #%d %s, %s (score %.2f): %s\n",
			u.ID, name, u.Date.Format(util.TimeFormat), hit.RelevanceScore, u.StatusText)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// SummaryTool period_summary
type SummaryTool struct {
	insight InsightService
}

func NewSummaryTool(insight InsightService) *SummaryTool {
	return &SummaryTool{insight: insight}
}

func (t *SummaryTool) Definition() mcp.Tool {
	return mcp.NewTool("period_summary",
		mcp.WithDescription(
			"Summarize the status updates of a period for the whole team or one member.",
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Period start, RFC3339 or YYYY-MM-DD"),
		),
		mcp.WithString("end_date",
			mcp.Description("Period end, defaults to start_date + 7 days"),
		),
		mcp.WithNumber("team_member_id",
			mcp.Description("Only include this member's updates"),
		),
	)
}

func (t *SummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := util.ParseDate(req.GetString("start_date", ""))
	if err != nil || start == nil {
		return mcp.NewToolResultError("'start_date' is required (RFC3339 or YYYY-MM-DD)"), nil
	}
	end, err := util.ParseDate(req.GetString("end_date", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid 'end_date': %v", err)), nil
	}

	summaryReq := service.PeriodSummaryRequest{StartDate: *start, EndDate: end}
	if id, ok := idArg(req, "team_member_id"); ok {
		summaryReq.TeamMemberID = &id
	}

	summary, err := t.insight.PeriodSummary(ctx, summaryReq)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	subject := "Team"
	if summary.TeamMember != nil {
		subject = *summary.TeamMember
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s: %s to %s (%d updates)\n\n",
		subject, summary.StartDate.Format(util.TimeFormat), summary.EndDate.Format(util.TimeFormat), summary.StatusCount)
	sb.WriteString(summary.Summary)
	if summary.ReportURL != "" {
		fmt.Fprintf(&sb, "\n\nReport: %s", summary.ReportURL)
	}
	return mcp.NewToolResultText(sb.String()), nil
}
