package mcptools

import (
	"context"
	"fmt"
	"strings"
	"team_tracker_backend/internal/util"

	"github.com/mark3labs/mcp-go/mcp"
)

// GoalProgressTool goal_progress
type GoalProgressTool struct {
	progress ProgressService
}

func NewGoalProgressTool(progress ProgressService) *GoalProgressTool {
	return &GoalProgressTool{progress: progress}
}

func (t *GoalProgressTool) Definition() mcp.Tool {
	return mcp.NewTool("goal_progress",
		mcp.WithDescription("Task breakdown, completion percentage and schedule status of a goal."),
		mcp.WithNumber("goal_id",
			mcp.Required(),
			mcp.Description("Goal ID"),
		),
	)
}

func (t *GoalProgressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := idArg(req, "goal_id")
	if !ok {
		return mcp.NewToolResultError("'goal_id' must be a positive integer"), nil
	}

	report, err := t.progress.GoalProgress(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("goal progress failed: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Goal #%d: %s\n\n", report.Goal.ID, report.Goal.Title)
	fmt.Fprintf(&sb, "- **Status**: %s\n", report.Goal.Status)
	fmt.Fprintf(&sb, "- **Progress**: %.2f%% (%d/%d tasks completed)\n",
		report.ProgressPercentage, report.CompletedTasks, report.TotalTasks)
	fmt.Fprintf(&sb, "- **In progress**: %d\n", report.InProgressTasks)
	fmt.Fprintf(&sb, "- **Blocked**: %d\n", report.BlockedTasks)
	if report.Goal.TargetDate != nil {
		fmt.Fprintf(&sb, "- **Target date**: %s\n", report.Goal.TargetDate.Format(util.DateFormat))
	}
	if report.DaysRemaining != nil {
		fmt.Fprintf(&sb, "- **Days remaining**: %d\n", *report.DaysRemaining)
	}
	fmt.Fprintf(&sb, "- **On track**: %t\n", report.OnTrack)
	return mcp.NewToolResultText(sb.String()), nil
}

// MemberProgressTool member_progress
type MemberProgressTool struct {
	progress ProgressService
}

func NewMemberProgressTool(progress ProgressService) *MemberProgressTool {
	return &MemberProgressTool{progress: progress}
}

func (t *MemberProgressTool) Definition() mcp.Tool {
	return mcp.NewTool("member_progress",
		mcp.WithDescription("Assigned, completed, in-progress and overdue task counts of a team member."),
		mcp.WithNumber("team_member_id",
			mcp.Required(),
			mcp.Description("Team member ID"),
		),
	)
}

func (t *MemberProgressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := idArg(req, "team_member_id")
	if !ok {
		return mcp.NewToolResultError("'team_member_id' must be a positive integer"), nil
	}

	report, err := t.progress.MemberProgress(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("member progress failed: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s (#%d)\n\n", report.TeamMember.Name, report.TeamMember.ID)
	fmt.Fprintf(&sb, "- **Assigned**: %d\n", report.AssignedTasks)
	fmt.Fprintf(&sb, "- **Completed**: %d\n", report.CompletedTasks)
	fmt.Fprintf(&sb, "- **In progress**: %d\n", report.InProgressTasks)
	fmt.Fprintf(&sb, "- **Overdue**: %d\n", report.OverdueTasks)
	fmt.Fprintf(&sb, "- **Completion rate**: %.2f%%\n", report.CompletionRate)
	return mcp.NewToolResultText(sb.String()), nil
}
