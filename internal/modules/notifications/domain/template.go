package domain

import (
	"fmt"
	"html"
	"strings"
)

// kindStyle drives the highlighted status block of the shared email template.
type kindStyle struct {
	subject  string
	headline string
	body     string
	color    string
}

var kindStyles = map[string]kindStyle{
	KindCreated: {
		subject:  "We received your reservation",
		headline: "Reservation received",
		body:     "Your reservation is pending review by the restaurant. We will let you know as soon as it is confirmed.",
		color:    "#b8860b",
	},
	KindConfirmed: {
		subject:  "Your reservation is confirmed",
		headline: "Reservation confirmed",
		body:     "The restaurant has confirmed your reservation. We look forward to seeing you.",
		color:    "#2e7d32",
	},
	KindCancelled: {
		subject:  "Your reservation was cancelled",
		headline: "Reservation cancelled",
		body:     "This reservation has been cancelled.",
		color:    "#c62828",
	},
	KindCompleted: {
		subject:  "Thanks for visiting",
		headline: "Reservation completed",
		body:     "We hope you enjoyed your visit. See you next time!",
		color:    "#1565c0",
	},
	KindRescheduled: {
		subject:  "Your reservation was rescheduled",
		headline: "Reservation rescheduled",
		body:     "Your reservation has been moved to a new date and time.",
		color:    "#6a1b9a",
	},
	KindWelcome: {
		subject:  "Welcome to MesaYa",
		headline: "Welcome aboard",
		body:     "Your account is ready. Browse restaurants and book your first table today.",
		color:    "#2e7d32",
	},
}

// BuildReservationEmail assembles the shared HTML template for the given kind:
// header band, highlighted status block, detail rows and footer.
func BuildReservationEmail(kind, recipient string, details ReservationDetails) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	style, ok := kindStyles[normalized]
	if !ok {
		return Email{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	var rows strings.Builder
	appendRow(&rows, "Restaurant", details.RestaurantName)
	appendRow(&rows, "Date", details.DateLabel)
	appendRow(&rows, "Time", details.TimeLabel)
	if details.PartySize > 0 {
		appendRow(&rows, "Party size", fmt.Sprintf("%d", details.PartySize))
	}
	appendRow(&rows, "Special request", details.SpecialRequest)
	if normalized == KindCancelled {
		appendRow(&rows, "Reason", details.CancelReason)
	}

	greeting := "Hello"
	if name := strings.TrimSpace(details.CustomerName); name != "" {
		greeting = "Hello " + html.EscapeString(name)
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;">
    <div style="background:#1a1a2e;padding:24px;text-align:center;">
      <span style="color:#ffffff;font-size:22px;font-weight:bold;">MesaYa</span>
    </div>
    <div style="padding:32px 24px;">
      <p style="font-size:15px;color:#333333;">%s,</p>
      <div style="border-left:4px solid %s;background:#fafafa;padding:16px;margin:16px 0;">
        <p style="margin:0;font-size:18px;font-weight:bold;color:%s;">%s</p>
        <p style="margin:8px 0 0;font-size:14px;color:#555555;">%s</p>
      </div>
      <table style="width:100%%;border-collapse:collapse;font-size:14px;color:#333333;">%s</table>
    </div>
    <div style="background:#f0f0f0;padding:16px 24px;text-align:center;">
      <p style="margin:0;font-size:12px;color:#888888;">This is an automated message from MesaYa. Please do not reply.</p>
    </div>
  </div>
</body>
</html>`, greeting, style.color, style.color, style.headline, style.body, rows.String())

	return Email{
		To:      strings.TrimSpace(recipient),
		Subject: style.subject,
		HTML:    body,
	}, nil
}

func appendRow(rows *strings.Builder, label, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	fmt.Fprintf(rows,
		`<tr><td style="padding:6px 0;color:#888888;width:40%%;">%s</td><td style="padding:6px 0;">%s</td></tr>`,
		html.EscapeString(label), html.EscapeString(trimmed))
}
