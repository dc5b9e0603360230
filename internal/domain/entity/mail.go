package entity

// MailMessage is one outbound email.
type MailMessage struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []MailAttachment
}

// MailAttachment is a file attached to a MailMessage.
type MailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}
