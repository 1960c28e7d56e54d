package providers

import (
	"funneld/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Store: structures.StoreConfig{
			FilePath:       "/tmp/subscribers.csv",
			BackupInterval: 300,
		},
		Funnel: structures.FunnelConfig{
			BookURL: "https://example.com/book.pdf",
		},
		Stats: structures.StatsConfig{
			Timezone:    "UTC",
			CopiesFloor: 50,
			RestockMax:  200,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyStorePath(t *testing.T) {
	c := validConfig()
	c.Store.FilePath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MailEnabledRequiresCredentials(t *testing.T) {
	c := validConfig()
	c.Mail.Enabled = true
	c.Mail.Host = "smtp.example.com"
	c.Mail.Port = 587
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate(), "missing username/password must fail")

	c.Mail.Username = "user"
	c.Mail.Password = "secret"
	c.Mail.FromEmail = "noreply@example.com"
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_MailDisabledSkipsSMTPChecks(t *testing.T) {
	c := validConfig()
	c.Mail.Enabled = false
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_FloorAboveRestockMax(t *testing.T) {
	c := validConfig()
	c.Stats.CopiesFloor = 300
	c.Stats.RestockMax = 200
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
