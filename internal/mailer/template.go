package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// welcomeTemplate is the funnel's confirmation email. Inline styles only,
// for mail client compatibility.
const welcomeTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Your Free Book is Ready</title>
</head>
<body style="font-family: 'Poppins', Arial, sans-serif; margin: 0; padding: 0; color: #333;">
	<div style="max-width: 600px; margin: 0 auto;">
		<div style="background: linear-gradient(135deg, #111, #333); color: white; padding: 30px; text-align: center;">
			<h1 style="margin: 0;">Welcome to The Invisible Workforce!</h1>
			<p>Your AI transformation starts now</p>
		</div>
		<div style="background: white; padding: 30px; line-height: 1.6;">
			<h2>Your Free Book is Ready!</h2>
			<p>{{if .FirstName}}Hi {{.FirstName}}!{{else}}Hi there!{{end}}</p>
			<p>Thanks for joining over 12,000+ entrepreneurs who are using AI to scale their businesses effortlessly. Your free copy of "The Invisible Workforce" is just one click away!</p>
			<div style="text-align: center;">
				<a href="{{.BookURL}}" style="display: inline-block; background: #2aff9f; color: #111; padding: 15px 30px; text-decoration: none; border-radius: 50px; font-weight: 600; margin: 20px 0;">DOWNLOAD YOUR BOOK NOW</a>
			</div>
			{{if .CommunityURL}}
			<div style="background: linear-gradient(45deg, #2aff9f, #00d4aa); color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
				<h3>Welcome to Our Community!</h3>
				<p>Connect with 2,500+ entrepreneurs from 47 countries who are already putting AI to work.</p>
				<p style="text-align: center;">
					<a href="{{.CommunityURL}}" style="display: inline-block; background: white; color: #2aff9f; padding: 15px 30px; text-decoration: none; border-radius: 50px; font-weight: 600;">Join Community Now</a>
				</p>
			</div>
			{{end}}
			<h3>What to do next:</h3>
			<ol>
				<li><strong>Download your book</strong> using the link above</li>
				<li><strong>Read Chapter 1</strong> to discover the #1 mistake businesses make</li>
				<li><strong>Implement the first AI strategy</strong> within 24 hours</li>
			</ol>
			<p>To your success,<br><strong>The DBMansion Labs Team</strong></p>
			<hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
			<p style="font-size: 12px; color: #666;">
				You received this email because you requested "The Invisible Workforce" from our website.
			</p>
		</div>
	</div>
</body>
</html>`

// RenderWelcome renders the confirmation email body. firstName may be
// empty (simple funnel variant); the greeting falls back to a generic one.
func RenderWelcome(firstName, bookURL, communityURL string) (string, error) {
	t, err := template.New("welcome").Parse(welcomeTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		FirstName    string
		BookURL      string
		CommunityURL string
	}{
		FirstName:    firstName,
		BookURL:      bookURL,
		CommunityURL: communityURL,
	}

	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
