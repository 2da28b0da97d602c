package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwell/nourish-cli/internal/assistant"
	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/pipeline"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	result := pipeline.New(catalog.New()).Run(demoProfile())
	return &session{
		result:    result,
		assistant: assistant.New(nil, "", 0),
	}
}

func TestDispatch_Quit(t *testing.T) {
	s := newTestSession(t)
	for _, cmd := range []string{"quit", "exit", "q"} {
		keepGoing, _ := s.dispatch(context.Background(), cmd)
		assert.False(t, keepGoing, cmd)
	}
}

func TestDispatch_Help(t *testing.T) {
	s := newTestSession(t)
	keepGoing, out := s.dispatch(context.Background(), "help")
	assert.True(t, keepGoing)
	assert.Contains(t, out, "why [item]")
	assert.Contains(t, out, "markers")
}

func TestDispatch_Empty(t *testing.T) {
	s := newTestSession(t)
	_, out := s.dispatch(context.Background(), "   ")
	assert.Equal(t, "Type 'help' for available commands.", out)
}

func TestDispatch_WhyNeedsArgument(t *testing.T) {
	s := newTestSession(t)
	_, out := s.dispatch(context.Background(), "why")
	assert.Contains(t, out, "Usage: why")
}

func TestDispatch_WhyItem(t *testing.T) {
	s := newTestSession(t)
	require.NotEmpty(t, s.result.Plan.Items)
	name := s.result.Plan.Items[0].Food.Name

	_, out := s.dispatch(context.Background(), "why "+name)
	assert.Contains(t, out, name)
	assert.Contains(t, out, "BIOLOGICAL CONNECTION")
}

func TestDispatch_BareItemNameActsLikeWhy(t *testing.T) {
	s := newTestSession(t)

	// the demo plan addresses B12 with a canned fish item
	_, out := s.dispatch(context.Background(), "sardines")
	assert.Contains(t, out, "Sardines")
}

func TestDispatch_ExplainNutrient(t *testing.T) {
	s := newTestSession(t)
	_, out := s.dispatch(context.Background(), "explain b12")
	assert.Contains(t, out, "Vitamin B12")
	assert.Contains(t, out, "Priority Level:")
}

func TestDispatch_Views(t *testing.T) {
	s := newTestSession(t)

	_, out := s.dispatch(context.Background(), "list")
	assert.Contains(t, out, "YOUR SHOPPING LIST:")

	_, out = s.dispatch(context.Background(), "nutrients")
	assert.Contains(t, out, "YOUR NUTRIENT PRIORITIES:")

	_, out = s.dispatch(context.Background(), "markers")
	assert.Contains(t, out, "MTHFR: C677T")
	assert.Contains(t, out, "Vitamin B12: 280 pg/mL [Low]")
	assert.Contains(t, out, "Fasting Glucose: 105 mg/dL [Pre-diabetic]")

	_, out = s.dispatch(context.Background(), "budget")
	assert.Contains(t, out, "Weekly Budget: $60.00")
	assert.Contains(t, out, "Budget Tier: LOW")
	assert.Contains(t, out, "Cost by Priority:")

	_, out = s.dispatch(context.Background(), "stores")
	assert.Contains(t, out, "STORE RECOMMENDATIONS")
}

func TestDispatch_FreeFormGoesToAssistant(t *testing.T) {
	s := newTestSession(t)
	_, out := s.dispatch(context.Background(), "what is mthfr")
	assert.Contains(t, out, "MTHFR")
	assert.Contains(t, out, "Simple explanation:")
}

func TestSessionRun_QuitEndsLoop(t *testing.T) {
	s := newTestSession(t)
	var buf strings.Builder
	s.in = strings.NewReader("help\nquit\n")
	s.out = &buf

	s.run(context.Background())

	assert.Contains(t, buf.String(), "INTERACTIVE FEEDBACK SESSION")
	assert.Contains(t, buf.String(), "Goodbye")
}

func TestMarkersAnalysis_NoLabs(t *testing.T) {
	s := newTestSession(t)
	s.result.Profile.LabResults = nil

	out := s.markersAnalysis()
	assert.Contains(t, out, "No lab results on file.")
}
