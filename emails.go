package clubcore

import "embed"

// EmailFS holds the email templates, one directory per message with
// html.tmpl and plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS
