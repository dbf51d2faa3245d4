package mcptools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harrison/careerfit/internal/catalog"
	"github.com/harrison/careerfit/internal/models"
)

func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

func getResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

type memoryRecorder struct {
	results []*models.AssessmentResult
	err     error
}

func (m *memoryRecorder) Record(ctx context.Context, r *models.AssessmentResult) error {
	if m.err != nil {
		return m.err
	}
	m.results = append(m.results, r)
	return nil
}

func callWith(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestCatalogTool(t *testing.T) {
	tool := NewCatalogTool(catalog.Default())
	if tool.Definition().Name != "careerfit_catalog" {
		t.Errorf("name = %q", tool.Definition().Name)
	}

	result, err := tool.Handle(context.Background(), callWith(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	text := getResultText(result)
	for _, id := range []string{"psych-1", "tech-8", "domain-6"} {
		if !strings.Contains(text, id) {
			t.Errorf("catalog should list %s", id)
		}
	}
}

func TestScoreTool_Success(t *testing.T) {
	rec := &memoryRecorder{}
	tool := NewScoreTool(catalog.Default(), rec, "anonymous")
	tool.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	result, err := tool.Handle(context.Background(), callWith(map[string]interface{}{
		"responses":  `[{"questionId":"psych-1","answer":5},{"questionId":"psych-4","answer":"b"}]`,
		"total_time": float64(90),
		"user_id":    "casey",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	text := getResultText(result)
	if !strings.Contains(text, "# Assessment Results") {
		t.Errorf("expected Markdown report, got %q", text)
	}
	if len(rec.results) != 1 {
		t.Fatalf("expected one recorded result, got %d", len(rec.results))
	}
	got := rec.results[0]
	if got.UserID != "casey" || got.TimeSpent != 90 {
		t.Errorf("unexpected metadata: user %q time %d", got.UserID, got.TimeSpent)
	}
	if !strings.Contains(text, got.ID) {
		t.Error("report should mention the result id")
	}
}

func TestScoreTool_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{"missing responses", map[string]interface{}{}, "'responses' is required"},
		{"bad json", map[string]interface{}{"responses": "[{"}, "invalid responses JSON"},
		{"out of range", map[string]interface{}{"responses": `[{"questionId":"psych-1","answer":9}]`}, "outside scale range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewScoreTool(catalog.Default(), nil, "anonymous")
			result, err := tool.Handle(context.Background(), callWith(tt.args))
			if err != nil {
				t.Fatalf("Handle returned Go error: %v", err)
			}
			if !isErrorResult(result) {
				t.Fatal("expected error result")
			}
			if !strings.Contains(getResultText(result), tt.wantMsg) {
				t.Errorf("error %q should contain %q", getResultText(result), tt.wantMsg)
			}
		})
	}
}

func TestScoreTool_RecorderFailure(t *testing.T) {
	tool := NewScoreTool(catalog.Default(), &memoryRecorder{err: errors.New("disk full")}, "anonymous")
	result, _ := tool.Handle(context.Background(), callWith(map[string]interface{}{
		"responses": `[]`,
	}))
	if !isErrorResult(result) || !strings.Contains(getResultText(result), "disk full") {
		t.Errorf("expected recorder error, got %q", getResultText(result))
	}
}

func TestInsightsTool(t *testing.T) {
	tool := NewInsightsTool()

	result, _ := tool.Handle(context.Background(), callWith(map[string]interface{}{
		"section_id": "technical-aptitude",
		"score":      float64(85),
	}))
	text := getResultText(result)
	if !strings.Contains(text, "Strong technical foundation and problem-solving abilities") {
		t.Errorf("unexpected insights %q", text)
	}
	if strings.Count(text, "\n- ") != 2 {
		t.Errorf("expected two insights, got %q", text)
	}

	result, _ = tool.Handle(context.Background(), callWith(map[string]interface{}{
		"section_id": "unknown",
		"score":      float64(50),
	}))
	if isErrorResult(result) || !strings.Contains(getResultText(result), "No insights") {
		t.Errorf("unknown section should be a plain empty answer, got %q", getResultText(result))
	}

	result, _ = tool.Handle(context.Background(), callWith(map[string]interface{}{
		"section_id": "psychometric",
	}))
	if !isErrorResult(result) {
		t.Error("missing score should be an error")
	}
}

func TestInsightsTool_NonNumericScore(t *testing.T) {
	tool := NewInsightsTool()

	for _, score := range []interface{}{"80", true, nil} {
		result, err := tool.Handle(context.Background(), callWith(map[string]interface{}{
			"section_id": "psychometric",
			"score":      score,
		}))
		if err != nil {
			t.Fatalf("Handle returned Go error: %v", err)
		}
		if !isErrorResult(result) {
			t.Errorf("score %#v should be rejected, got %q", score, getResultText(result))
			continue
		}
		if !strings.Contains(getResultText(result), "'score' must be a number") {
			t.Errorf("unexpected error text %q", getResultText(result))
		}
	}
}

func TestNewServer(t *testing.T) {
	s := NewServer(catalog.Default(), nil, "anonymous", "test")
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}
