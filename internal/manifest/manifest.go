package manifest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// Inputs and outputs the binary actually consumes and produces. Verify
// keeps action.yml from drifting away from them.
var (
	expectedInputs  = []string{"library-name", "operation", "repo-url", "timeout"}
	expectedOutputs = []string{"message", "status-code", "success"}
)

// Action models the action.yml manifest describing this action to the
// GitHub Actions platform.
type Action struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Author      string            `yaml:"author,omitempty"`
	Inputs      map[string]Input  `yaml:"inputs,omitempty"`
	Outputs     map[string]Output `yaml:"outputs,omitempty"`
	Runs        Runs              `yaml:"runs"`
	Branding    Branding          `yaml:"branding,omitempty"`
}

// Input represents a single input parameter the action accepts.
type Input struct {
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Default     string `yaml:"default,omitempty"`
}

// Output represents a single output the action produces.
type Output struct {
	Description string `yaml:"description,omitempty"`
}

// Runs defines how the platform executes the action.
type Runs struct {
	Using string `yaml:"using"`
	Image string `yaml:"image,omitempty"`
	Main  string `yaml:"main,omitempty"`
}

// Branding holds the marketplace icon and color.
type Branding struct {
	Icon  string `yaml:"icon,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// Load reads and parses an action manifest from disk.
func Load(path string) (*Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var a Action
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &a, nil
}

// Verify checks that the manifest declares exactly the inputs and outputs
// the binary consumes and produces.
func (a *Action) Verify() error {
	if err := matchNames("input", a.inputNames(), expectedInputs); err != nil {
		return err
	}
	return matchNames("output", a.outputNames(), expectedOutputs)
}

func (a *Action) inputNames() []string {
	names := make([]string, 0, len(a.Inputs))
	for name := range a.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *Action) outputNames() []string {
	names := make([]string, 0, len(a.Outputs))
	for name := range a.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func matchNames(kind string, got, want []string) error {
	for _, name := range want {
		if !contains(got, name) {
			return fmt.Errorf("manifest is missing %s '%s'", kind, name)
		}
	}
	for _, name := range got {
		if !contains(want, name) {
			return fmt.Errorf("manifest declares unknown %s '%s'", kind, name)
		}
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
