package constvars

const (
	EmailHeaderFormat        = "%s: %s\r\n"
	EmailMIMEVersion         = "1.0"
	EmailAttachmentFormat    = "attachment; filename=%q"
	EmailTransferBase64      = "base64"
	EmailAttachmentLineWidth = 76
	EmailAddressSeparator    = ", "
)
