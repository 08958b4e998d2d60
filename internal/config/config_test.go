package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		envFile  string
		expected Config
		isErr    bool
	}{
		{
			name: "defaults",
			env:  map[string]string{"STAGE": StageDev},
			expected: Config{
				Stage:        StageDev,
				LogLevel:     defaultLogLevel,
				MigrationDir: defaultMigrationDir,
			},
		},
		{
			name:    "values from env file",
			env:     map[string]string{"STAGE": StageDev},
			envFile: "LOG_LEVEL=debug\nDATABASE_URL=postgres://localhost/battleship\n",
			expected: Config{
				Stage:        StageDev,
				LogLevel:     "debug",
				DatabaseUrl:  "postgres://localhost/battleship",
				MigrationDir: defaultMigrationDir,
			},
		},
		{
			name:  "invalid stage",
			env:   map[string]string{"STAGE": "staging"},
			isErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, key := range []string{"STAGE", "LOG_LEVEL", "DATABASE_URL", "MIGRATION_DIR"} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			envPath := filepath.Join(t.TempDir(), ".env")
			if test.envFile != "" {
				if err := os.WriteFile(envPath, []byte(test.envFile), 0644); err != nil {
					t.Fatal(err)
				}
			}

			cfg, err := Load(envPath)
			if test.isErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg != test.expected {
				t.Fatalf("expected: %+v\tgot: %+v", test.expected, cfg)
			}
			if cfg.AnalyticsEnabled() != (test.expected.DatabaseUrl != "") {
				t.Fatal("analytics should be enabled only with a database url")
			}
		})
	}
}
