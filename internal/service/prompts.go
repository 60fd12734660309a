package service

import (
	"fmt"
	"strings"
	"team_tracker_backend/internal/model"
	"team_tracker_backend/internal/util"
	"time"
)

const (
	unknownMember = "Unknown"
	unknownDate   = "Unknown date"

	noUpdatesMessage = "No status updates found for the specified period."
)

// ContextEntry 上下文中的一条状态更新；字段优先取直接值，缺失时回落到索引元数据
type ContextEntry struct {
	Text       string
	MemberName string
	Date       *time.Time
	Metadata   map[string]interface{}
}

func EntryFromUpdate(u *model.StatusUpdate) ContextEntry {
	date := u.Date
	return ContextEntry{
		Text:       u.StatusText,
		MemberName: u.MemberName(),
		Date:       &date,
	}
}

func (e ContextEntry) memberName() string {
	if e.MemberName != "" {
		return e.MemberName
	}
	if name, ok := e.Metadata["team_member_name"].(string); ok && name != "" {
		return name
	}
	return unknownMember
}

func (e ContextEntry) date() string {
	if e.Date != nil {
		return e.Date.Format(util.TimeFormat)
	}
	if v, ok := e.Metadata["date"]; ok && v != nil {
		if s := fmt.Sprint(v); s != "" {
			return s
		}
	}
	return unknownDate
}

// BuildContext 编号从 1 开始，每条之间空一行
func BuildContext(entries []ContextEntry) string {
	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		parts = append(parts, fmt.Sprintf("%d. [%s] on %s:\n   %s\n", i+1, e.memberName(), e.date(), e.Text))
	}
	return strings.Join(parts, "\n")
}

func AnswerPrompt(query, contextBlock string) string {
	return fmt.Sprintf(`You are an AI assistant helping to answer questions about team activities and progress.

User Question: %s

Relevant Status Updates:
%s

Based on the status updates above, please provide a clear and accurate answer to the user's question.
If the information is not sufficient to fully answer the question, please state what information is available and what is missing.`,
		query, contextBlock)
}

// SummaryPrompt memberName 为空时生成团队周报
func SummaryPrompt(contextBlock, memberName string) string {
	scope := ""
	if memberName != "" {
		scope = " for " + memberName
	}
	return fmt.Sprintf(`You are an AI assistant creating a weekly progress report%s.

Status Updates from this period:
%s

Please create a professional weekly summary that includes:
1. Overview of the period's activities
2. Key accomplishments and deliverables
3. Main focus areas or projects
4. Any blockers or challenges mentioned

Format the summary in a clear, structured manner suitable for management review.`,
		scope, contextBlock)
}

func answerError(err error) string {
	return "Error generating answer: " + err.Error()
}

func summaryError(err error) string {
	return "Error generating summary: " + err.Error()
}
