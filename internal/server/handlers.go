package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stdguard/stdguard/internal/report"
	"github.com/stdguard/stdguard/internal/review"
	"github.com/stdguard/stdguard/internal/rules"
)

type analyzeRequest struct {
	Code     string `json:"code"`
	Filename string `json:"filename"`
}

type fixRequest struct {
	Code   string         `json:"code"`
	Error  string         `json:"error"`
	Issues []review.Issue `json:"issues"`
}

type chatRequest struct {
	Context string `json:"context"`
	Message string `json:"message"`
}

type reportRequest struct {
	Filename     string         `json:"filename"`
	Code         string         `json:"code"`
	Issues       []review.Issue `json:"issues"`
	Score        int            `json:"score"`
	Grade        string         `json:"grade"`
	RulesChecked int            `json:"rules_checked"`
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "error": msg})
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.Requests.WithLabelValues("analyze", "error").Inc()
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Code) == "" {
		s.metrics.Requests.WithLabelValues("analyze", "error").Inc()
		return errorJSON(c, http.StatusBadRequest, "No code provided")
	}

	analysis, err := s.engine.Analyze(c.Request().Context(), req.Code, req.Filename)
	if err != nil {
		s.metrics.Requests.WithLabelValues("analyze", "error").Inc()
		s.logger.Error("analyze failed", zap.Error(err))
		return errorJSON(c, http.StatusBadGateway, "Analysis failed: "+err.Error())
	}

	s.metrics.Requests.WithLabelValues("analyze", "ok").Inc()
	s.metrics.Scores.Observe(float64(analysis.Score))
	s.metrics.Issues.Observe(float64(len(analysis.Issues)))

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"issues":        analysis.Issues,
		"score":         analysis.Score,
		"grade":         analysis.Grade,
		"file_type":     analysis.FileType,
		"rules_checked": analysis.RulesChecked,
		"statistics":    analysis.Stats,
	})
}

func (s *Server) handleFix(c echo.Context) error {
	var req fixRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.Requests.WithLabelValues("fix", "error").Inc()
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Code) == "" {
		s.metrics.Requests.WithLabelValues("fix", "error").Inc()
		return errorJSON(c, http.StatusBadRequest, "No code provided")
	}

	fixed, err := s.engine.Fix(c.Request().Context(), req.Code, req.Error, req.Issues)
	if err != nil {
		s.metrics.Requests.WithLabelValues("fix", "error").Inc()
		s.logger.Error("fix failed", zap.Error(err))
		return errorJSON(c, http.StatusBadGateway, "Fix failed: "+err.Error())
	}

	s.metrics.Requests.WithLabelValues("fix", "ok").Inc()
	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"fixed_code": fixed,
	})
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.Requests.WithLabelValues("chat", "error").Inc()
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		s.metrics.Requests.WithLabelValues("chat", "error").Inc()
		return errorJSON(c, http.StatusBadRequest, "No message provided")
	}

	reply, err := s.engine.Chat(c.Request().Context(), req.Context, req.Message)
	if err != nil {
		s.metrics.Requests.WithLabelValues("chat", "error").Inc()
		s.logger.Error("chat failed", zap.Error(err))
		return errorJSON(c, http.StatusBadGateway, "Chat failed: "+err.Error())
	}

	s.metrics.Requests.WithLabelValues("chat", "ok").Inc()
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"reply":   reply,
	})
}

func (s *Server) handleGenerateReport(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.Requests.WithLabelValues("report", "error").Inc()
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Filename == "" {
		req.Filename = "code.py"
	}

	name, err := report.Generate(s.cfg.ReportsDir, report.Input{
		Filename:     req.Filename,
		Code:         req.Code,
		Issues:       req.Issues,
		Score:        req.Score,
		Grade:        req.Grade,
		RulesChecked: req.RulesChecked,
		Provider:     s.engine.Provider().Name(),
		Model:        s.engine.Provider().Model(),
	})
	if err != nil {
		s.metrics.Requests.WithLabelValues("report", "error").Inc()
		s.logger.Error("report generation failed", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Report generation failed: "+err.Error())
	}

	s.metrics.Requests.WithLabelValues("report", "ok").Inc()
	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"filename":     name,
		"path":         filepath.Join(s.cfg.ReportsDir, name),
		"download_url": "/download_report/" + name,
	})
}

func (s *Server) handleDownloadReport(c echo.Context) error {
	// Base strips any path traversal out of the requested name.
	name := filepath.Base(c.Param("filename"))
	path := filepath.Join(s.cfg.ReportsDir, name)

	if _, err := os.Stat(path); err != nil {
		return errorJSON(c, http.StatusNotFound, "Report not found")
	}
	return c.Attachment(path, name)
}

func (s *Server) handleRules(c echo.Context) error {
	category := c.QueryParam("category")

	all := s.engine.Rules()
	counts := map[string]int{}
	for name, size := range s.engine.BucketSizes() {
		counts[string(name)] = size
	}

	listed := all
	if category != "" && category != "all" {
		cat, ok := rules.ValidCategory(category)
		if !ok {
			return errorJSON(c, http.StatusBadRequest, "Unknown category: "+category)
		}
		listed = s.engine.RulesInBucket(cat)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"rules":      listed,
		"total":      len(all),
		"categories": counts,
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":       "healthy",
		"version":      Version,
		"provider":     s.engine.Provider().Name(),
		"model":        s.engine.Provider().Model(),
		"configured":   s.engine.Provider().Configured(),
		"rules_loaded": len(s.engine.Rules()),
		"features":     []string{"analyze", "fix", "chat", "report", "rules", "statistics"},
	})
}

func (s *Server) handleStatistics(c echo.Context) error {
	counts := map[string]int{}
	for name, size := range s.engine.BucketSizes() {
		counts[string(name)] = size
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"total_rules": len(s.engine.Rules()),
		"categories":  counts,
		"provider":    s.engine.Provider().Name(),
		"model":       s.engine.Provider().Model(),
	})
}
