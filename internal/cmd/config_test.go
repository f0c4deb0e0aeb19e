package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestConfigGet(t *testing.T) {
	app, out := testApp(t)

	cmd := newConfigCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"get", "theme"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "classic" {
		t.Errorf("config get theme = %q, want %q", got, "classic")
	}
}

func TestConfigGetUnknownKey(t *testing.T) {
	app, _ := testApp(t)

	cmd := newConfigCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"get", "nonexistent"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err == nil {
		t.Error("config get nonexistent succeeded, want error")
	}
}

func TestConfigGetJSON(t *testing.T) {
	app, out := testApp(t)
	app.JSON = true

	cmd := newConfigCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"get", "deploy_branch"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["key"] != "deploy_branch" || result["value"] != "main" {
		t.Errorf("JSON result = %v, want deploy_branch=main", result)
	}
}

func TestConfigList(t *testing.T) {
	app, out := testApp(t)

	cmd := newConfigCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"list"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config list: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "theme = classic") {
		t.Errorf("list missing theme entry:\n%s", got)
	}

	// Entries keep file order, not alphabetical order.
	themeAt := strings.Index(got, "theme = ")
	branchAt := strings.Index(got, "deploy_branch = ")
	if themeAt == -1 || branchAt == -1 || themeAt > branchAt {
		t.Errorf("list order does not follow the file:\n%s", got)
	}
}
