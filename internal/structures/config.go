package structures

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StoreConfig struct {
	FilePath       string `yaml:"filePath" validate:"required|unixPath"`
	BackupInterval int    `yaml:"backupInterval" validate:"required|min:1"`
}

type MailConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"fromEmail"`
	FromName  string `yaml:"fromName"`
	Subject   string `yaml:"subject"`
}

type FunnelConfig struct {
	Source         string `yaml:"source"`
	RequireProfile bool   `yaml:"requireProfile"`
	BookURL        string `yaml:"bookUrl" validate:"required"`
	CommunityURL   string `yaml:"communityUrl"`
}

type StatsConfig struct {
	Timezone          string `yaml:"timezone" validate:"required"`
	BaselineDownloads int    `yaml:"baselineDownloads"`
	DownloadCap       int    `yaml:"downloadCap"`
	CopiesPool        int    `yaml:"copiesPool"`
	CopiesFloor       int    `yaml:"copiesFloor"`
	RestockMax        int    `yaml:"restockMax"`
	MonthlyDownloads  int    `yaml:"monthlyDownloads"`
	Rating            string `yaml:"rating"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Store     StoreConfig   `yaml:"store"`
	Mail      MailConfig    `yaml:"mail"`
	Funnel    FunnelConfig  `yaml:"funnel"`
	Stats     StatsConfig   `yaml:"stats"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
