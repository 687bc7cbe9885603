package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("empty config gets defaults", func(t *testing.T) {
		cfg := &AppConfig{}
		cfg.applyDefaults()

		assert.Equal(t, DefaultSecurityGroupID, cfg.SecurityGroupID)
		assert.Equal(t, DefaultTargetGroupName, cfg.TargetGroupName)
	})

	t.Run("configured values are kept", func(t *testing.T) {
		cfg := &AppConfig{SecurityGroupID: "SG_X", TargetGroupName: "admin"}
		cfg.applyDefaults()

		assert.Equal(t, "SG_X", cfg.SecurityGroupID)
		assert.Equal(t, "admin", cfg.TargetGroupName)
	})
}
