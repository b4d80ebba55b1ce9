package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

type initCLI struct {
	LogLevel string            `default:"info"`
	Pretty   bool              `default:"true"`
	Count    int               `default:"3"`
	Empty    string            `default:""`
	Source   []string          `short:"s"`
	Define   map[string]string `mapsep:"none" short:"D"`
	PprofDir string            `default:"/tmp"`
}

func initContext(t *testing.T, confPath string, args ...string) *kong.Context {
	t.Helper()

	var cli initCLI

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return ktx
}

func TestInitRun(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create new config"},
		{name: "overwrite existing with force", force: true, exists: true},
		{name: "fail without force", exists: true, wantErr: ErrWriteConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.exists {
				if err := os.WriteFile(confPath, []byte("existing: true\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			ctx := WithContext(t.Context(), initContext(t, confPath, "--log-level=debug"))

			err := (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrFileExists) {
					t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(data, &got); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, data)
			}

			if got["log_level"] != "debug" {
				t.Errorf("log_level = %v, want debug", got["log_level"])
			}
		})
	}
}

func TestInitSettings(t *testing.T) {
	ktx := initContext(t, "unused", "-s", "a.lox", "-D", "x=1")
	ctx := WithContext(t.Context(), ktx)

	settings := (&Init{}).settings(ctx)

	got := make(map[string]any, len(settings))
	for _, item := range settings {
		got[item.Key.(string)] = item.Value
	}

	want := map[string]bool{
		"log_level": true,
		"pretty":    true,
		"count":     true,
		"source":    true,
		"define":    true,
	}

	for key := range want {
		if _, ok := got[key]; !ok {
			t.Errorf("settings missing %q", key)
		}
	}

	for _, key := range []string{"empty", "help", "pprof_dir"} {
		if _, ok := got[key]; ok {
			t.Errorf("settings should omit %q", key)
		}
	}

	if got["count"] != 3 {
		t.Errorf("count = %v (%T), want 3", got["count"], got["count"])
	}
}

func TestInitWithInvalidPath(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), "missing", "config.yaml")
	ctx := WithContext(t.Context(), initContext(t, confPath))

	err := (&Init{}).Run(ctx)
	if !errors.Is(err, ErrWriteConfig) {
		t.Errorf("Run() error = %v, want ErrWriteConfig", err)
	}
}
