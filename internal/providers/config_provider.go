package providers

import (
	"fmt"
	"funneld/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "FUNNELD_LOG_LEVEL")
	viper.BindEnv("cache.enabled", "FUNNELD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FUNNELD_CACHE_SIZE")
	viper.BindEnv("store.filePath", "FUNNELD_STORE_PATH")

	// SMTP credentials use the same variable names as the landing page's
	// original .env so existing deployments keep working.
	viper.BindEnv("mail.host", "SMTP_HOST")
	viper.BindEnv("mail.port", "SMTP_PORT")
	viper.BindEnv("mail.username", "SMTP_USERNAME")
	viper.BindEnv("mail.password", "SMTP_PASSWORD")
	viper.BindEnv("mail.fromEmail", "FROM_EMAIL")
	viper.BindEnv("funnel.bookUrl", "BOOK_URL")
	viper.BindEnv("funnel.communityUrl", "COMMUNITY_URL")

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "FunnelDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

// setDefaults documents the fallbacks for keys the config file may omit.
// The engagement figures keep the values the landing page shipped with.
func setDefaults() {
	viper.SetDefault("store.filePath", "subscribers.csv")
	viper.SetDefault("store.backupInterval", 300)

	viper.SetDefault("mail.port", 587)
	viper.SetDefault("mail.fromName", "DBMansion Labs")
	viper.SetDefault("mail.subject", "Your Free Copy of \"The Invisible Workforce\" is Here!")

	viper.SetDefault("funnel.source", "invisible-workforce-landing")
	viper.SetDefault("funnel.requireProfile", false)

	viper.SetDefault("stats.timezone", "UTC")
	viper.SetDefault("stats.baselineDownloads", 523)
	viper.SetDefault("stats.downloadCap", 950)
	viper.SetDefault("stats.copiesPool", 1000)
	viper.SetDefault("stats.copiesFloor", 50)
	viper.SetDefault("stats.restockMax", 200)
	viper.SetDefault("stats.monthlyDownloads", 12847)
	viper.SetDefault("stats.rating", "4.9")
}
