package notify

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"logistics/internal/core/ports"
)

type message struct {
	Subject string
	Body    string
}

type templatePair struct {
	subject *template.Template
	body    *template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format(time.DateOnly) },
	"datep": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(time.DateOnly)
	},
}

func mustPair(name, subject, body string) templatePair {
	return templatePair{
		subject: template.Must(template.New(name + "-subject").Funcs(funcs).Parse(subject)),
		body:    template.Must(template.New(name + "-body").Funcs(funcs).Parse(body)),
	}
}

var templates = map[ports.NotificationKind]templatePair{
	ports.NotifyForwardingResponse: mustPair("forwarding-response",
		`Odpowiedź na zlecenie spedycyjne {{.Order.Number}}`,
		`Zlecenie {{.Order.Number}} otrzymało odpowiedź ({{.Actor}}).
{{with .Order.Response}}Kierowca: {{.DriverName}} {{.DriverSurname}} {{.DriverPhone}}
Pojazd: {{.VehicleNumber}}
Cena: {{.DeliveryPrice.StringFixed 2}} PLN, {{.DistanceKm}} km ({{.PricePerKm.StringFixed 2}} PLN/km)
{{if .DateChanged}}Nowa data dostawy: {{datep .NewDeliveryDate}} (pierwotnie {{datep .OriginalDeliveryDate}})
{{end}}{{if .AdminNotes}}Uwagi: {{.AdminNotes}}
{{end}}{{end}}`),
	ports.NotifyTransportRequestCreated: mustPair("transport-request-created",
		`Nowy wniosek transportowy #{{.Request.ID}}`,
		`{{.Request.Requester.Email}} złożył wniosek #{{.Request.ID}} ({{.Request.Content.TransportType}}).
{{with .Request.Content}}Dostawa: {{date .DeliveryDate}}{{if .DestinationCity}}, {{.DestinationCity}}{{end}}
Uzasadnienie: {{.Justification}}
{{end}}`),
	ports.NotifyTransportRequestApproved: mustPair("transport-request-approved",
		`Wniosek transportowy #{{.Request.ID}} zaakceptowany`,
		`Wniosek #{{.Request.ID}} został zaakceptowany przez {{.Actor}}.
Transport #{{.TransportID}} realizuje {{.WarehouseName}}, dostawa {{date .Request.Content.DeliveryDate}}.
`),
	ports.NotifyTransportRequestRejected: mustPair("transport-request-rejected",
		`Wniosek transportowy #{{.Request.ID}} odrzucony`,
		`Wniosek #{{.Request.ID}} został odrzucony przez {{.Actor}}.
Powód: {{.Request.RejectionReason}}
`),
}

func render(n ports.Notification) (message, error) {
	pair, ok := templates[n.Kind]
	if !ok {
		return message{}, fmt.Errorf("no template for %q", n.Kind)
	}
	var subject, body bytes.Buffer
	if err := pair.subject.Execute(&subject, n); err != nil {
		return message{}, fmt.Errorf("render %s subject: %w", n.Kind, err)
	}
	if err := pair.body.Execute(&body, n); err != nil {
		return message{}, fmt.Errorf("render %s body: %w", n.Kind, err)
	}
	return message{Subject: strings.TrimSpace(subject.String()), Body: body.String()}, nil
}
