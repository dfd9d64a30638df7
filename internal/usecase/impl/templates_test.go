package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate_InterpolatesVariables(t *testing.T) {
	title, body, err := renderTemplate(TemplateVaccineDue, map[string]string{
		"dogName":     "Rocky",
		"vaccineName": "Rabia",
		"dueDate":     "2026-09-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "Recordatorio de vacuna", title)
	assert.Equal(t, "La vacuna Rabia de Rocky vence el 2026-09-01.", body)
}

func TestRenderTemplate_TitlePlaceholders(t *testing.T) {
	title, _, err := renderTemplate(TemplateStopCompletedPickup, map[string]string{
		"dogName": "Luna",
		"time":    "07:45",
	})

	require.NoError(t, err)
	assert.Equal(t, "¡Luna va en camino!", title)
}

func TestRenderTemplate_MissingVariableLeftAsIs(t *testing.T) {
	_, body, err := renderTemplate(TemplateMedicineDue, map[string]string{
		"dogName": "Max",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Max")
	assert.Contains(t, body, "{medicineName}")
}

func TestRenderTemplate_UnknownKey(t *testing.T) {
	_, _, err := renderTemplate("no_such_template", nil)
	assert.Error(t, err)
}

func TestRenderTemplate_NoVariables(t *testing.T) {
	title, body, err := renderTemplate(TemplateTestNotification, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, title)
	assert.NotEmpty(t, body)
}
