package config

import (
	"testing"
)

// clearActionEnv blanks every variable the resolver reads so leftover CI
// context cannot leak into a test case.
func clearActionEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"INPUT_OPERATION",
		"INPUT_LIBRARY_NAME",
		"INPUT_REPO_URL",
		"INPUT_TIMEOUT",
		"GITHUB_REPOSITORY",
		"GITHUB_SERVER_URL",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestNewWithDefaults(t *testing.T) {
	clearActionEnv(t)

	cfg := New()

	if cfg.Operation != OperationRefresh {
		t.Errorf("Expected operation 'refresh', got '%s'", cfg.Operation)
	}
	if cfg.LibraryName != "" {
		t.Errorf("Expected empty library name, got '%s'", cfg.LibraryName)
	}
	if cfg.RepoURL != "" {
		t.Errorf("Expected empty repo URL, got '%s'", cfg.RepoURL)
	}
	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected timeout %d, got %d", DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	}
	if cfg.GitHubServerURL != "https://github.com" {
		t.Errorf("Expected default server URL, got '%s'", cfg.GitHubServerURL)
	}
}

func TestOperationResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "Unset defaults to refresh",
			raw:  "",
			want: OperationRefresh,
		},
		{
			name: "Whitespace only defaults to refresh",
			raw:  "   ",
			want: OperationRefresh,
		},
		{
			name: "Unrecognized word defaults to refresh",
			raw:  "delete",
			want: OperationRefresh,
		},
		{
			name: "Add is accepted",
			raw:  "add",
			want: OperationAdd,
		},
		{
			name: "Uppercase is normalized",
			raw:  "ADD",
			want: OperationAdd,
		},
		{
			name: "Mixed case with padding is normalized",
			raw:  "  Refresh  ",
			want: OperationRefresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearActionEnv(t)
			t.Setenv("INPUT_OPERATION", tt.raw)

			cfg := New()
			if cfg.Operation != tt.want {
				t.Errorf("Expected operation '%s', got '%s'", tt.want, cfg.Operation)
			}
		})
	}
}

func TestTimeoutResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{
			name: "Unset uses default",
			raw:  "",
			want: DefaultTimeoutSeconds,
		},
		{
			name: "Zero uses default",
			raw:  "0",
			want: DefaultTimeoutSeconds,
		},
		{
			name: "Negative uses default",
			raw:  "-5",
			want: DefaultTimeoutSeconds,
		},
		{
			name: "Non-numeric uses default",
			raw:  "abc",
			want: DefaultTimeoutSeconds,
		},
		{
			name: "Float uses default",
			raw:  "30.5",
			want: DefaultTimeoutSeconds,
		},
		{
			name: "Valid positive integer is used",
			raw:  "45",
			want: 45,
		},
		{
			name: "Very large value has no upper bound",
			raw:  "86400",
			want: 86400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearActionEnv(t)
			t.Setenv("INPUT_TIMEOUT", tt.raw)

			cfg := New()
			if cfg.TimeoutSeconds != tt.want {
				t.Errorf("Expected timeout %d, got %d", tt.want, cfg.TimeoutSeconds)
			}
		})
	}
}

func TestAutoDetection(t *testing.T) {
	clearActionEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "user/awesome-lib")
	t.Setenv("GITHUB_SERVER_URL", "https://github.com")

	cfg := New()

	if cfg.LibraryName != "/user/awesome-lib" {
		t.Errorf("Expected library name '/user/awesome-lib', got '%s'", cfg.LibraryName)
	}
	if cfg.RepoURL != "https://github.com/user/awesome-lib" {
		t.Errorf("Expected repo URL 'https://github.com/user/awesome-lib', got '%s'", cfg.RepoURL)
	}
}

func TestAutoDetectionWithCustomServerURL(t *testing.T) {
	clearActionEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "team/lib")
	t.Setenv("GITHUB_SERVER_URL", "https://ghe.example.com")

	cfg := New()

	if cfg.RepoURL != "https://ghe.example.com/team/lib" {
		t.Errorf("Expected enterprise repo URL, got '%s'", cfg.RepoURL)
	}
}

func TestExplicitInputsWinOverAutoDetection(t *testing.T) {
	clearActionEnv(t)
	t.Setenv("INPUT_LIBRARY_NAME", "/explicit/name")
	t.Setenv("INPUT_REPO_URL", "https://github.com/explicit/repo")
	t.Setenv("GITHUB_REPOSITORY", "ambient/repo")

	cfg := New()

	if cfg.LibraryName != "/explicit/name" {
		t.Errorf("Auto-detection overwrote explicit library name: '%s'", cfg.LibraryName)
	}
	if cfg.RepoURL != "https://github.com/explicit/repo" {
		t.Errorf("Auto-detection overwrote explicit repo URL: '%s'", cfg.RepoURL)
	}
}

func TestWhitespaceTrimming(t *testing.T) {
	clearActionEnv(t)
	t.Setenv("INPUT_LIBRARY_NAME", "  /test/repo  ")
	t.Setenv("INPUT_REPO_URL", "  https://github.com/test/repo  ")

	cfg := New()

	if cfg.LibraryName != "/test/repo" {
		t.Errorf("Expected trimmed library name, got '%s'", cfg.LibraryName)
	}
	if cfg.RepoURL != "https://github.com/test/repo" {
		t.Errorf("Expected trimmed repo URL, got '%s'", cfg.RepoURL)
	}
}

func TestOverridesBeatEnvironment(t *testing.T) {
	clearActionEnv(t)
	t.Setenv("INPUT_OPERATION", "refresh")
	t.Setenv("INPUT_REPO_URL", "https://github.com/env/repo")
	t.Setenv("INPUT_TIMEOUT", "60")

	cfg := NewWithOverrides(Overrides{
		Operation: "ADD",
		RepoURL:   "https://github.com/flag/repo",
		Timeout:   "90",
	})

	if cfg.Operation != OperationAdd {
		t.Errorf("Expected overridden operation 'add', got '%s'", cfg.Operation)
	}
	if cfg.RepoURL != "https://github.com/flag/repo" {
		t.Errorf("Expected overridden repo URL, got '%s'", cfg.RepoURL)
	}
	if cfg.TimeoutSeconds != 90 {
		t.Errorf("Expected overridden timeout 90, got %d", cfg.TimeoutSeconds)
	}
}

func TestEmptyOverridesDeferToEnvironment(t *testing.T) {
	clearActionEnv(t)
	t.Setenv("INPUT_OPERATION", "add")
	t.Setenv("INPUT_REPO_URL", "https://github.com/env/repo")

	cfg := NewWithOverrides(Overrides{})

	if cfg.Operation != OperationAdd {
		t.Errorf("Expected env operation 'add', got '%s'", cfg.Operation)
	}
	if cfg.RepoURL != "https://github.com/env/repo" {
		t.Errorf("Expected env repo URL, got '%s'", cfg.RepoURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "Valid refresh",
			cfg:     Config{Operation: OperationRefresh, LibraryName: "/test/repo"},
			wantErr: false,
		},
		{
			name:    "Valid add",
			cfg:     Config{Operation: OperationAdd, RepoURL: "https://github.com/test/repo"},
			wantErr: false,
		},
		{
			name:    "Add without repo URL",
			cfg:     Config{Operation: OperationAdd},
			wantErr: true,
		},
		{
			name:    "Refresh without library name",
			cfg:     Config{Operation: OperationRefresh},
			wantErr: true,
		},
		{
			name:    "Hand-built config with bad operation",
			cfg:     Config{Operation: "delete", LibraryName: "/test/repo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
