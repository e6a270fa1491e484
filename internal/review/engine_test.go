package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdguard/stdguard/internal/providers"
	"github.com/stdguard/stdguard/internal/rules"
)

// fakeGenerator returns a canned response and records the last request.
type fakeGenerator struct {
	content string
	err     error
	lastReq providers.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req providers.Request) (*providers.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &providers.Response{Content: f.content}, nil
}

func (f *fakeGenerator) Name() string     { return "fake" }
func (f *fakeGenerator) Model() string    { return "fake-model" }
func (f *fakeGenerator) Configured() bool { return true }

func testRules() []rules.Rule {
	return []rules.Rule{
		{ID: "R001", Statement: "Variables must use snake_case names", SuggestedFix: "Rename the variable", Category: rules.CategoryNaming, Severity: rules.SeverityError},
		{ID: "R002", Statement: "Never hardcode security credentials", Category: rules.CategorySecurity, Severity: rules.SeverityCritical},
	}
}

func TestAnalyze(t *testing.T) {
	gen := &fakeGenerator{content: `[{"rule": "R001", "message": "bad name", "line": 3, "severity": "error", "category": "naming"}]`}
	eng := NewEngine(testRules(), gen, nil)

	a, err := eng.Analyze(context.Background(), "x=1", "main.py")
	require.NoError(t, err)

	assert.Equal(t, 94, a.Score)
	assert.Equal(t, "A", a.Grade)
	assert.Equal(t, "py", a.FileType)
	assert.Equal(t, 2, a.RulesChecked)
	assert.Equal(t, Statistics{Errors: 1}, a.Stats)
	require.Len(t, a.Issues, 1)

	assert.Contains(t, gen.lastReq.System, "MANDATORY ORGANIZATION CODING STANDARDS")
	assert.Contains(t, gen.lastReq.Prompt, "x=1")
	assert.Equal(t, generateMaxTokens, gen.lastReq.MaxTokens)
	assert.InDelta(t, generateTemperature, gen.lastReq.Temperature, 0.001)
}

func TestAnalyzeEmptyCode(t *testing.T) {
	eng := NewEngine(nil, &fakeGenerator{}, nil)
	_, err := eng.Analyze(context.Background(), "   \n", "main.py")
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestAnalyzeProviderFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	eng := NewEngine(nil, gen, nil)

	_, err := eng.Analyze(context.Background(), "x=1", "main.py")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAnalyzeUnparseableResponse(t *testing.T) {
	gen := &fakeGenerator{content: "I could not find any structured issues."}
	eng := NewEngine(nil, gen, nil)

	a, err := eng.Analyze(context.Background(), "x=1", "main.py")
	require.NoError(t, err)
	assert.Empty(t, a.Issues)
	assert.Equal(t, 100, a.Score)
	assert.Equal(t, "A+", a.Grade)
}

func TestAnalyzeDefaultsExtension(t *testing.T) {
	gen := &fakeGenerator{content: "[]"}
	eng := NewEngine(nil, gen, nil)

	a, err := eng.Analyze(context.Background(), "x=1", "noext")
	require.NoError(t, err)
	assert.Equal(t, "py", a.FileType)
}

func TestFix(t *testing.T) {
	gen := &fakeGenerator{content: "```python\nx = 1\n```"}
	eng := NewEngine(testRules(), gen, nil)

	issues := []Issue{{Rule: "R001", Message: "bad name", Line: 3, Fix: "rename"}}
	fixed, err := eng.Fix(context.Background(), "x=1", "", issues)
	require.NoError(t, err)
	assert.Equal(t, "x = 1", fixed)

	assert.Contains(t, gen.lastReq.Prompt, "- Line 3: bad name -> rename")
	assert.Contains(t, gen.lastReq.Prompt, "[R001] Variables must use snake_case names")
}

func TestFixDetectsStructuredText(t *testing.T) {
	gen := &fakeGenerator{content: "```st\nVAR\n  iCount : INT;\nEND_VAR\n```"}
	eng := NewEngine(nil, gen, nil)

	fixed, err := eng.Fix(context.Background(), "VAR iCount:INT; END_VAR", "", nil)
	require.NoError(t, err)
	assert.Contains(t, fixed, "iCount : INT;")
	assert.Contains(t, gen.lastReq.System, "IEC 61131-3")
}

func TestFixShortResponseKeepsOriginal(t *testing.T) {
	gen := &fakeGenerator{content: "ok"}
	eng := NewEngine(nil, gen, nil)

	original := "def f():\n    pass"
	fixed, err := eng.Fix(context.Background(), original, "style errors", nil)
	require.NoError(t, err)
	assert.Equal(t, original, fixed)
}

func TestFixProviderFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	eng := NewEngine(nil, gen, nil)

	_, err := eng.Fix(context.Background(), "x=1", "", nil)
	assert.Error(t, err)
}

func TestChat(t *testing.T) {
	gen := &fakeGenerator{content: "Rename the variable on line 3."}
	eng := NewEngine(nil, gen, nil)

	reply, err := eng.Chat(context.Background(), "Review of main.py scored 94", "how do I fix it?")
	require.NoError(t, err)
	assert.Equal(t, "Rename the variable on line 3.", reply)
	assert.Contains(t, gen.lastReq.Prompt, "User Question: how do I fix it?")
}

func TestBucketSizes(t *testing.T) {
	eng := NewEngine(testRules(), &fakeGenerator{}, nil)
	sizes := eng.BucketSizes()
	assert.Equal(t, 1, sizes[rules.CategoryNaming])
	assert.Equal(t, 1, sizes[rules.CategorySecurity])
	assert.Equal(t, 0, sizes[rules.CategoryGeneral])
}
