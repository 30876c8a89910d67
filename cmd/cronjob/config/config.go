package config

type BaseCronJobConfig struct {
	CronExpr string `yaml:"cronExpr" mapstructure:"cronExpr"`
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Timeout  int    `yaml:"timeout" mapstructure:"timeout"` // milliseconds
}

type LeaderboardRefresherConfig struct {
	BaseCronJobConfig `yaml:",inline" mapstructure:",squash"`
}

func (LeaderboardRefresherConfig) Key() string {
	return "leaderboardRefresher"
}

type ArtifactCleanerConfig struct {
	BaseCronJobConfig `yaml:",inline" mapstructure:",squash"`

	TimeRange int `yaml:"timeRange" mapstructure:"timeRange"` // days
}

func (ArtifactCleanerConfig) Key() string {
	return "artifactCleaner"
}
