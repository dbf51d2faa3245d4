// Package mcptools exposes the question bank and the scoring engine as MCP
// tools, so an assistant can run an assessment conversationally.
//
// Each tool is a struct holding its dependencies with a Definition for
// registration and a Handle compatible with mcp-go's CallToolRequest.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harrison/careerfit/internal/models"
	"github.com/harrison/careerfit/internal/report"
	"github.com/harrison/careerfit/internal/scoring"
)

// ResultRecorder stores scored results. *history.Store satisfies it.
type ResultRecorder interface {
	Record(ctx context.Context, r *models.AssessmentResult) error
}

// NewServer registers every careerfit tool on a new MCP server.
// rec may be nil to skip recording results.
func NewServer(a *models.Assessment, rec ResultRecorder, userID, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"careerfit",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	catalogTool := NewCatalogTool(a)
	s.AddTool(catalogTool.Definition(), catalogTool.Handle)

	scoreTool := NewScoreTool(a, rec, userID)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	insightsTool := NewInsightsTool()
	s.AddTool(insightsTool.Definition(), insightsTool.Handle)

	return s
}

// CatalogTool handles careerfit_catalog
type CatalogTool struct {
	assessment *models.Assessment
}

// NewCatalogTool creates a CatalogTool over a
func NewCatalogTool(a *models.Assessment) *CatalogTool {
	return &CatalogTool{assessment: a}
}

// Definition returns the MCP tool definition for registration.
func (t *CatalogTool) Definition() mcp.Tool {
	return mcp.NewTool("careerfit_catalog",
		mcp.WithDescription(
			"List every section and question of the career readiness assessment, "+
				"with question ids, types, options and scales. "+
				"Use it to ask the questions before calling careerfit_score.",
		),
	)
}

// Handle processes the careerfit_catalog tool call.
func (t *CatalogTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(report.CatalogMarkdown(t.assessment)), nil
}

// ScoreTool handles careerfit_score
type ScoreTool struct {
	assessment *models.Assessment
	recorder   ResultRecorder
	userID     string
	now        func() time.Time
}

// NewScoreTool creates a ScoreTool. rec may be nil.
func NewScoreTool(a *models.Assessment, rec ResultRecorder, userID string) *ScoreTool {
	return &ScoreTool{assessment: a, recorder: rec, userID: userID, now: time.Now}
}

// Definition returns the MCP tool definition for registration.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("careerfit_score",
		mcp.WithDescription(
			"Score a set of assessment responses and return section scores, "+
				"the WISCAR profile and a fit recommendation as Markdown.",
		),
		mcp.WithString("responses",
			mcp.Required(),
			mcp.Description(`JSON array of responses. Example: [{"questionId":"psych-1","answer":4},{"questionId":"psych-4","answer":"b"}]. `+
				"Likert answers are numbers on the question's scale; other answers are option ids."),
		),
		mcp.WithNumber("total_time",
			mcp.Description("Seconds the respondent spent on the assessment (default: 0)"),
		),
		mcp.WithString("user_id",
			mcp.Description("Identifier stamped on the result (default: configured user)"),
		),
	)
}

// Handle processes the careerfit_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("responses", "")
	if strings.TrimSpace(raw) == "" {
		return mcp.NewToolResultError("'responses' is required"), nil
	}

	var responses []models.Response
	if err := json.Unmarshal([]byte(raw), &responses); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid responses JSON: %v", err)), nil
	}

	userID := req.GetString("user_id", t.userID)
	result, err := scoring.Evaluate(t.assessment, responses, scoring.Options{
		UserID:      userID,
		CompletedAt: t.now().UTC(),
		TimeSpent:   int64(numberArg(req, "total_time", 0)),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if t.recorder != nil {
		if err := t.recorder.Record(ctx, result); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to record result: %v", err)), nil
		}
	}

	return mcp.NewToolResultText(report.Markdown(result) + fmt.Sprintf("_Result id: %s_\n", result.ID)), nil
}

// InsightsTool handles careerfit_insights
type InsightsTool struct{}

// NewInsightsTool creates an InsightsTool
func NewInsightsTool() *InsightsTool {
	return &InsightsTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *InsightsTool) Definition() mcp.Tool {
	return mcp.NewTool("careerfit_insights",
		mcp.WithDescription("Return the feedback shown for a section score."),
		mcp.WithString("section_id",
			mcp.Required(),
			mcp.Description("Section id: psychometric, technical-aptitude or domain-expertise"),
		),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Section score, 0-100"),
		),
	)
}

// Handle processes the careerfit_insights tool call.
func (t *InsightsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sectionID := req.GetString("section_id", "")
	if sectionID == "" {
		return mcp.NewToolResultError("'section_id' is required"), nil
	}
	raw, ok := req.GetArguments()["score"]
	if !ok {
		return mcp.NewToolResultError("'score' is required"), nil
	}
	score, ok := raw.(float64)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("'score' must be a number, got %T", raw)), nil
	}

	insights := scoring.SectionInsights(score, sectionID)
	if len(insights) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No insights for section %q.", sectionID)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Insights for %s at %.0f%%:\n\n", sectionID, score)
	for _, s := range insights {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// numberArg extracts a numeric argument; JSON numbers arrive as float64.
func numberArg(req mcp.CallToolRequest, key string, defaultVal float64) float64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return v
}
