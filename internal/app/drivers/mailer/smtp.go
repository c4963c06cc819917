package mailer

import (
	"appointment-skill/internal/app/config"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type SMTPClient struct {
	Host string
	Port int
	Auth smtp.Auth
	// SendMail defaults to smtp.SendMail and is swapped in tests.
	SendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPClient(driverConfig *config.DriverConfig, log *zap.Logger) *SMTPClient {
	var auth smtp.Auth
	if driverConfig.SMTP.Username != "" {
		auth = smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	}

	log.Info("SMTP client configured",
		zap.String("host", driverConfig.SMTP.Host),
		zap.Int("port", driverConfig.SMTP.Port),
	)
	return &SMTPClient{
		Host:     driverConfig.SMTP.Host,
		Port:     driverConfig.SMTP.Port,
		Auth:     auth,
		SendMail: smtp.SendMail,
	}
}

func (c *SMTPClient) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
