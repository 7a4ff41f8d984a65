package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	s := NewStatus(&buf, false)

	s.Success("definition %q is valid", "Approval")
	s.Failure("2 problems")
	s.Warn("unused trigger")

	assert.Equal(t, "✔ definition \"Approval\" is valid\n✘ 2 problems\n• unused trigger\n", buf.String())
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer("notty", 80)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	out, err := render("# Title\n\nbody")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}
