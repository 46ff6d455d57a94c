package startup

import (
	"net/http"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gorilla/mux"
)

func TestLoadConfig_Defaults(t *testing.T) {
	root := t.TempDir()

	config, err := LoadConfig([]string{"--media-root", root})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.MediaRoot != root {
		t.Errorf("MediaRoot = %q, want %q", config.MediaRoot, root)
	}
	if config.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", config.Host)
	}
	if config.Port != "8000" {
		t.Errorf("Port = %q, want 8000", config.Port)
	}
	if config.MetricsPort != "9090" {
		t.Errorf("MetricsPort = %q, want 9090", config.MetricsPort)
	}
	if !config.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true")
	}
	if config.LogStaticFiles {
		t.Error("LogStaticFiles = true, want false")
	}
	if !config.LogHealthChecks {
		t.Error("LogHealthChecks = false, want true")
	}
	if len(config.ImageExts) == 0 || len(config.VideoExts) == 0 {
		t.Error("extension defaults not applied")
	}
}

func TestLoadConfig_EnvFallback(t *testing.T) {
	root := t.TempDir()
	t.Setenv("MEDIA_ROOT", root)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9999")
	t.Setenv("METRICS_ENABLED", "false")

	config, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.MediaRoot != root {
		t.Errorf("MediaRoot = %q, want %q", config.MediaRoot, root)
	}
	if config.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want 127.0.0.1", config.Host)
	}
	if config.Port != "9999" {
		t.Errorf("Port = %q, want 9999", config.Port)
	}
	if config.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	envRoot := t.TempDir()
	flagRoot := t.TempDir()
	t.Setenv("MEDIA_ROOT", envRoot)

	config, err := LoadConfig([]string{"--media-root", flagRoot})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.MediaRoot != flagRoot {
		t.Errorf("MediaRoot = %q, want flag value %q", config.MediaRoot, flagRoot)
	}
}

func TestLoadConfig_MissingMediaRoot(t *testing.T) {
	t.Setenv("MEDIA_ROOT", "")

	if _, err := LoadConfig(nil); err == nil {
		t.Error("LoadConfig() error = nil, want error for missing media root")
	}
}

func TestLoadConfig_NonexistentMediaRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	if _, err := LoadConfig([]string{"--media-root", missing}); err == nil {
		t.Error("LoadConfig() error = nil, want error for nonexistent media root")
	}
}

func TestLoadConfig_CustomExtensions(t *testing.T) {
	root := t.TempDir()

	config, err := LoadConfig([]string{
		"--media-root", root,
		"--image-exts", "jpg,PNG, .heic",
		"--video-exts", "mp4",
	})
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	wantImages := []string{"jpg", "png", "heic"}
	if !reflect.DeepEqual(config.ImageExts, wantImages) {
		t.Errorf("ImageExts = %v, want %v", config.ImageExts, wantImages)
	}
	if !reflect.DeepEqual(config.VideoExts, []string{"mp4"}) {
		t.Errorf("VideoExts = %v, want [mp4]", config.VideoExts)
	}

	set := config.Extensions()
	if !set.IsMedia("photo.heic") {
		t.Error("custom heic extension not recognized")
	}
	if set.IsMedia("clip.mov") {
		t.Error("mov recognized despite custom video list")
	}
}

func TestConfigAddr(t *testing.T) {
	config := &Config{Host: "0.0.0.0", Port: "8000"}
	if got := config.Addr(); got != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8000", got)
	}
}

func TestSplitExts(t *testing.T) {
	defaults := []string{"jpg", "png"}

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty falls back", "", defaults},
		{"whitespace falls back", "   ", defaults},
		{"simple list", "mp4,mov", []string{"mp4", "mov"}},
		{"dots and case normalized", ".MP4, .Mov", []string{"mp4", "mov"}},
		{"empty entries skipped", "mp4,,mov,", []string{"mp4", "mov"}},
		{"only separators falls back", ",,,", defaults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitExts(tt.raw, defaults)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitExts(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{"unset uses default", "", true, true},
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"one", "1", false, true},
		{"zero", "0", true, false},
		{"garbage uses default", "banana", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_BOOL_VAR", tt.value)
			}
			got := getEnvBool("TEST_BOOL_VAR", tt.fallback)
			if got != tt.want {
				t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.OS == "" || info.Arch == "" {
		t.Error("OS/Arch not populated")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion not populated")
	}
}

func TestGetRoutes(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/health", func(http.ResponseWriter, *http.Request) {}).Methods("GET")
	router.HandleFunc("/api/media", func(http.ResponseWriter, *http.Request) {}).Methods("GET")
	router.HandleFunc("/media/{path:.*}", func(http.ResponseWriter, *http.Request) {}).Methods("GET", "HEAD")

	routes, err := GetRoutes(router)
	if err != nil {
		t.Fatalf("GetRoutes() error = %v", err)
	}

	// /media route expands to one entry per method.
	if len(routes) != 4 {
		t.Errorf("len(routes) = %d, want 4", len(routes))
	}

	found := false
	for _, route := range routes {
		if route.Path == "/api/media" && route.Method == "GET" {
			found = true
		}
	}
	if !found {
		t.Error("GET /api/media not found in routes")
	}
}

func TestGetRouteGroup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/media", "api/media"},
		{"/api/directories", "api/directories"},
		{"/media/{path:.*}", "media"},
		{"/slideshow/{kind}", "slideshow"},
		{"/health", "health"},
		{"/", ""},
	}

	for _, tt := range tests {
		got := getRouteGroup(tt.path)
		if got != tt.want {
			t.Errorf("getRouteGroup(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
