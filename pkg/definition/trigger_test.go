package definition_test

import (
	"testing"

	"github.com/aretw0/cascade/pkg/definition"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerDeclaration_RoundTrip(t *testing.T) {
	src := `<trigger name="x" class="y"/>`

	trigger, err := definition.NewTriggerDeclaration(parse(t, src))
	require.NoError(t, err)

	assert.Equal(t, definition.DeclaredTrigger, trigger.Kind())
	assert.Equal(t, "x", trigger.Name())
	assert.Equal(t, "y", trigger.Class())
	assert.Empty(t, trigger.Parameters())
	assert.Equal(t, src, trigger.ToXML())
}

func TestTriggerDeclaration_IgnoresParameters(t *testing.T) {
	trigger, err := definition.NewTriggerDeclaration(parse(t,
		`<trigger name="x" class="y"><parameter><name>a</name><value>1</value></parameter></trigger>`))
	require.NoError(t, err)

	assert.Empty(t, trigger.Parameters())
	assert.Equal(t, `<trigger name="x" class="y"/>`, trigger.ToXML())
}

func TestTriggerInvocation_PreservesParameterOrder(t *testing.T) {
	src := `<trigger name="x">` +
		`<parameter><name>b</name><value>2</value></parameter>` +
		`<parameter><name>a</name><value>1</value></parameter>` +
		`<parameter><name>c</name><value></value></parameter>` +
		`</trigger>`

	trigger, err := definition.NewTriggerInvocation(parse(t, src))
	require.NoError(t, err)

	assert.Equal(t, definition.InvokedTrigger, trigger.Kind())
	assert.Equal(t, "", trigger.Class())

	params := trigger.Parameters()
	require.Len(t, params, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{params[0].Name(), params[1].Name(), params[2].Name()})
	assert.Equal(t, src, trigger.ToXML())
}

func TestTriggerInvocation_KeepsValueWhitespace(t *testing.T) {
	src := `<trigger name="x"><parameter><name>body</name><value>  hello  </value></parameter></trigger>`

	trigger, err := definition.NewTriggerInvocation(parse(t, src))
	require.NoError(t, err)

	params := trigger.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "  hello  ", params[0].Value())
	assert.Equal(t, src, trigger.ToXML())
}

func TestTriggerInvocation_DropsClass(t *testing.T) {
	trigger, err := definition.NewTriggerInvocation(parse(t, `<trigger name="publish" class="ignored"/>`))
	require.NoError(t, err)

	assert.Equal(t, `<trigger name="publish"/>`, trigger.ToXML())
}

func TestTrigger_Errors(t *testing.T) {
	_, err := definition.NewTriggerDeclaration(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyValue)

	_, err = definition.NewTriggerDeclaration(parse(t, `<trigger name="x"/>`))
	assert.ErrorIs(t, err, domain.ErrEmptyValue, "declared triggers need a class")

	_, err = definition.NewTriggerInvocation(parse(t, `<trigger/>`))
	assert.ErrorIs(t, err, domain.ErrEmptyValue)

	_, err = definition.NewTriggerInvocation(parse(t, `<trigger name="x"><parameter><value>v</value></parameter></trigger>`))
	assert.ErrorIs(t, err, domain.ErrEmptyValue, "parameters need a name")

	_, err = definition.NewTriggerInvocation(parse(t, `<trigger name="x"><parameter><name>  </name></parameter></trigger>`))
	assert.ErrorIs(t, err, domain.ErrEmptyValue, "a blank name is missing")

	_, err = definition.NewParameterDefinition(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyValue)
}

func TestTriggerKind_String(t *testing.T) {
	assert.Equal(t, "declared", definition.DeclaredTrigger.String())
	assert.Equal(t, "invoked", definition.InvokedTrigger.String())
	assert.Equal(t, "TriggerKind(9)", definition.TriggerKind(9).String())
}

func TestParameterDefinition_Escaping(t *testing.T) {
	p, err := definition.NewParameterDefinition(parse(t, `<parameter><name>expr</name><value>a &lt; b</value></parameter>`))
	require.NoError(t, err)

	assert.Equal(t, "a < b", p.Value())
	assert.Equal(t, `<parameter><name>expr</name><value>a &lt; b</value></parameter>`, p.ToXML())
}
