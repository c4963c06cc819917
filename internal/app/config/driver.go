package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Minio    Minio
		Google   Google
		CalDAV   CalDAV
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	// Google holds the OAuth2 credentials of the calendar owner.
	Google struct {
		ClientID     string
		ClientSecret string
		RedirectURIs []string
		AccessToken  string
		RefreshToken string
		TokenType    string
		// ExpireDate is in epoch milliseconds.
		ExpireDate int64
		Scope      string
	}
	CalDAV struct {
		URL      string
		Username string
		Password string
	}
)
