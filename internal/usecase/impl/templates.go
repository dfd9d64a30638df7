// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"strings"

	"github.com/pkg/errors"
)

// Template keys for scheduled notifications. The key is part of the dedup
// tuple, so renaming one changes what counts as a duplicate.
const (
	TemplateVaccineDue           = "vaccine_due"
	TemplateMedicineDue          = "medicine_due"
	TemplateRoutineDue           = "routine_due"
	TemplateStopCompletedPickup  = "stop_completed_pickup"
	TemplateStopCompletedDropoff = "stop_completed_dropoff"
	TemplateRouteStarted         = "route_started"
	TemplateRouteCompleted       = "route_completed"
	TemplateEvaluationReady      = "evaluation_ready"
	TemplateTestNotification     = "test_notification"
)

type notificationTemplate struct {
	Title string
	Body  string
}

// notificationTemplates holds the guardian-facing texts. Placeholders use
// {name} syntax and are interpolated from the notification's variables.
//
//nolint:gochecknoglobals
var notificationTemplates = map[string]notificationTemplate{
	TemplateVaccineDue: {
		Title: "Recordatorio de vacuna",
		Body:  "La vacuna {vaccineName} de {dogName} vence el {dueDate}.",
	},
	TemplateMedicineDue: {
		Title: "Hora del medicamento",
		Body:  "{dogName} debe recibir {medicineName} ({dosage}) hoy.",
	},
	TemplateRoutineDue: {
		Title: "Rutina programada",
		Body:  "Es hora de {routineName} para {dogName}.",
	},
	TemplateStopCompletedPickup: {
		Title: "¡{dogName} va en camino!",
		Body:  "Recogimos a {dogName} a las {time}. Puedes seguir el recorrido en vivo.",
	},
	TemplateStopCompletedDropoff: {
		Title: "¡{dogName} llegó a casa!",
		Body:  "Dejamos a {dogName} en casa a las {time}.",
	},
	TemplateRouteStarted: {
		Title: "La ruta comenzó",
		Body:  "El vehículo inició la ruta de {routeType}. Sigue el recorrido en vivo.",
	},
	TemplateRouteCompleted: {
		Title: "Ruta finalizada",
		Body:  "La ruta de {routeType} terminó. Todos los peludos llegaron bien.",
	},
	TemplateEvaluationReady: {
		Title: "Informe del día listo",
		Body:  "El informe de {dogName} del {date} ya está disponible.",
	},
	TemplateTestNotification: {
		Title: "Notificación de prueba",
		Body:  "Las notificaciones de Club Canino funcionan correctamente.",
	},
}

// renderTemplate interpolates a template with the notification's variables.
// Placeholders without a matching variable are left as-is rather than
// failing the delivery.
func renderTemplate(key string, vars map[string]string) (title, body string, err error) {
	tmpl, ok := notificationTemplates[key]
	if !ok {
		return "", "", errors.Errorf("unknown notification template: %s", key)
	}

	title = interpolate(tmpl.Title, vars)
	body = interpolate(tmpl.Body, vars)

	return title, body, nil
}

func interpolate(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}

	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(text)
}
