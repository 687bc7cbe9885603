package appconfig

import (
	"github.com/SaiNageswarS/go-api-boot/config"
)

const (
	DefaultSecurityGroupID = "SG_AB_BIDBOT"
	DefaultTargetGroupName = "chatbot_user"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	MongoURI        string `env:"MONGO-URI" ini:"mongo_uri"`
	Tenant          string `env:"TENANT" ini:"tenant"`
	SecurityGroupID string `env:"SECURITY-GROUP-ID" ini:"security_group_id"`
	TargetGroupName string `env:"TARGET-GROUP-NAME" ini:"target_group_name"`
}

// Load reads config.ini (env overrides ini) and fills in group defaults.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := config.LoadConfig(path, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if len(c.SecurityGroupID) == 0 {
		c.SecurityGroupID = DefaultSecurityGroupID
	}
	if len(c.TargetGroupName) == 0 {
		c.TargetGroupName = DefaultTargetGroupName
	}
}
