package requests

type EmailPayload struct {
	Subject     string            `json:"subject"`
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Text        string            `json:"text"`
	Attachments []EmailAttachment `json:"attachments,omitempty"`
}

type EmailAttachment struct {
	FileName    string `json:"filename"`
	ContentType string `json:"type"`
	// base64
	Content     string `json:"content"`
	Disposition string `json:"disposition"`
}
