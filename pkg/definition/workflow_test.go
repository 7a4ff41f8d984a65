package definition_test

import (
	"testing"

	"github.com/aretw0/cascade/pkg/definition"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const approvalWorkflow = `<?xml version="1.0" encoding="UTF-8"?>
<system-workflow-definition name="Approval" initial-step="initialize">
  <triggers>
    <trigger name="email" class="com.example.EmailTrigger"/>
    <trigger name="publish" class="com.example.PublishTrigger"/>
  </triggers>
  <steps>
    <step type="system" label="Initialize" identifier="initialize">
      <actions>
        <action type="auto" label="Start" identifier="start" move="forward"/>
      </actions>
    </step>
    <step type="transition" label="Review" identifier="review" default-user="editor">
      <actions>
        <action type="general" label="Approve" identifier="approve" move="forward">
          <trigger name="publish"/>
        </action>
        <action type="general" label="Reject" identifier="reject" next-id="rework">
          <trigger name="email">
            <parameter><name>recipient</name><value>owner</value></parameter>
          </trigger>
        </action>
      </actions>
    </step>
    <step type="system" label="Finished" identifier="finished"/>
  </steps>
  <non-ordered-steps>
    <step type="edit" label="Rework" identifier="rework">
      <actions>
        <action type="general" label="Resubmit" identifier="resubmit" next-id="review"/>
      </actions>
    </step>
  </non-ordered-steps>
</system-workflow-definition>`

func TestWorkflowDefinition_Parse(t *testing.T) {
	wf, err := definition.ParseWorkflowDefinition(approvalWorkflow)
	require.NoError(t, err)

	assert.Equal(t, "Approval", wf.Name())
	assert.Equal(t, "initialize", wf.InitialStep())
	assert.Len(t, wf.Triggers(), 2)
	assert.Len(t, wf.Steps(), 3)
	assert.Len(t, wf.NonOrderedSteps(), 1)
	assert.Len(t, wf.AllSteps(), 4)

	rework, ok := wf.Step("rework")
	require.True(t, ok)
	assert.Equal(t, definition.StepTypeEdit, rework.Type())

	email, ok := wf.Trigger("email")
	require.True(t, ok)
	assert.Equal(t, "com.example.EmailTrigger", email.Class())

	assert.NoError(t, wf.Validate())
	assert.Empty(t, wf.Problems())
}

func TestWorkflowDefinition_ToXML_RoundTrip(t *testing.T) {
	wf, err := definition.ParseWorkflowDefinition(approvalWorkflow)
	require.NoError(t, err)

	out := wf.ToXML()
	assert.Contains(t, out, `<system-workflow-definition name="Approval" initial-step="initialize"><triggers><trigger name="email" class="com.example.EmailTrigger"/>`)
	assert.Contains(t, out, `<non-ordered-steps><step type="edit" label="Rework" identifier="rework">`)

	again, err := definition.ParseWorkflowDefinition(out)
	require.NoError(t, err)
	assert.Equal(t, out, again.ToXML(), "serialisation must be a fixed point")
}

func TestWorkflowDefinition_Target(t *testing.T) {
	wf, err := definition.ParseWorkflowDefinition(approvalWorkflow)
	require.NoError(t, err)

	initialize, _ := wf.Step("initialize")
	start, _ := initialize.Action("start")
	assert.Equal(t, "review", wf.Target(initialize, start))

	review, _ := wf.Step("review")
	approve, _ := review.Action("approve")
	reject, _ := review.Action("reject")
	assert.Equal(t, "finished", wf.Target(review, approve))
	assert.Equal(t, "rework", wf.Target(review, reject))

	rework, _ := wf.Step("rework")
	resubmit, _ := rework.Action("resubmit")
	assert.Equal(t, "review", wf.Target(rework, resubmit))
}

func TestWorkflowDefinition_Problems(t *testing.T) {
	doc := `<system-workflow-definition name="Broken" initial-step="nowhere">
  <steps>
    <step type="edit" identifier="a">
      <actions>
        <action type="general" identifier="go" next-id="missing">
          <trigger name="undeclared"/>
        </action>
      </actions>
    </step>
    <step type="edit" identifier="a"/>
  </steps>
</system-workflow-definition>`

	wf, err := definition.ParseWorkflowDefinition(doc)
	require.NoError(t, err)

	problems := wf.Problems()
	assert.Equal(t, []string{
		"duplicate step identifier 'a'",
		"initial-step 'nowhere' does not exist",
		"step 'a' action 'go': next-id 'missing' does not exist",
		"step 'a' action 'go': trigger 'undeclared' is not declared",
	}, problems)

	err = wf.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, definition.ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "found 4 errors")
}

func TestWorkflowDefinition_MissingInitialStep(t *testing.T) {
	wf, err := definition.ParseWorkflowDefinition(`<system-workflow-definition name="Empty"/>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"missing initial-step"}, wf.Problems())
	assert.Equal(t, `<system-workflow-definition name="Empty" initial-step=""><steps/></system-workflow-definition>`, wf.ToXML())
}

func TestWorkflowDefinition_Errors(t *testing.T) {
	_, err := definition.NewWorkflowDefinition(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyValue)

	_, err = definition.ParseWorkflowDefinition(`<workflow/>`)
	assert.ErrorIs(t, err, domain.ErrUnacceptableValue)

	_, err = definition.ParseWorkflowDefinition(`<system-workflow-definition><triggers><trigger name="x"/></triggers></system-workflow-definition>`)
	assert.ErrorIs(t, err, domain.ErrEmptyValue)

	_, err = definition.ParseWorkflowDefinition(`not xml`)
	assert.Error(t, err)
}
