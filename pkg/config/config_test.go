package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	if got := GetString("backup.output_dir"); got != "./backup" {
		t.Errorf("Expected backup.output_dir ./backup, got %s", got)
	}

	if got := GetDuration("download.timeout"); got != 5*time.Minute {
		t.Errorf("Expected download.timeout 5m, got %v", got)
	}

	if got := GetInt("server.port"); got != 8080 {
		t.Errorf("Expected server.port 8080, got %d", got)
	}

	if got := GetString("backup.feed_url"); got != "" {
		t.Errorf("Expected empty default feed_url, got %s", got)
	}
}

func TestEnvOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("PODBACKUP_BACKUP_FEED_URL", "https://example.com/feed.xml")

	setDefaults()
	viper.SetEnvPrefix("PODBACKUP")
	viper.SetEnvKeyReplacer(envKeyReplacer())
	viper.AutomaticEnv()

	if got := GetString("backup.feed_url"); got != "https://example.com/feed.xml" {
		t.Errorf("Expected env override to win, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			setup:   func() {},
			wantErr: false,
		},
		{
			name:    "invalid port",
			setup:   func() { viper.Set("server.port", 0) },
			wantErr: true,
		},
		{
			name:    "negative max size",
			setup:   func() { viper.Set("download.max_size", -1) },
			wantErr: true,
		},
		{
			name:    "negative rate limit",
			setup:   func() { viper.Set("download.rate_limit", -0.5) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			setDefaults()
			tt.setup()

			err := validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CorrectsTimeout(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("download.timeout", -time.Second)

	if err := validate(); err != nil {
		t.Fatalf("validate() returned error: %v", err)
	}

	if got := GetDuration("download.timeout"); got != 5*time.Minute {
		t.Errorf("Expected timeout corrected to 5m, got %v", got)
	}
}
