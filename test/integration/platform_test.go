package integration

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goscript-cli/goscript/internal/clock"
	"github.com/goscript-cli/goscript/internal/config"
	"github.com/goscript-cli/goscript/internal/fsops"
	"github.com/goscript-cli/goscript/internal/logging"
	"github.com/goscript-cli/goscript/internal/manifest"
	"github.com/goscript-cli/goscript/internal/migrate"
	"github.com/goscript-cli/goscript/internal/pathcodec"
	"github.com/goscript-cli/goscript/internal/templates"
)

// TestLegacyMigrationEndToEnd walks the full platform flow against a real
// filesystem: a populated legacy layout is detected and folded into the
// override root, cache manifests survive the move, and the directory
// resolver lands on the migrated locations.
func TestLegacyMigrationEndToEnd(t *testing.T) {
	home := t.TempDir()
	env := config.MapEnv{config.HomeEnv: home}
	fs := fsops.NewRealFS()
	resolver := config.NewResolver(env)

	// Seed a legacy install: both caches nested under .goscript, one cache
	// entry carrying a manifest. Templates live at the config root and are
	// not part of the migrated set.
	legacy := filepath.Join(home, config.LegacyDirName)
	entry := filepath.Join(legacy, config.ScriptCacheDir, "expr-abc123")
	for _, dir := range []string{
		entry,
		filepath.Join(legacy, config.BinaryCacheDir),
		filepath.Join(home, config.TemplateDirName),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
	}

	store := manifest.NewStore(fs, pathcodec.Default)
	want := manifest.Manifest{SourcePath: "/home/user/script.go", BuiltAtMillis: 1700000000000}
	if err := store.Write(filepath.Join(entry, manifest.FileName), want); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	tmplPath := filepath.Join(home, config.TemplateDirName, "custom"+templates.Ext)
	if err := os.WriteFile(tmplPath, []byte("package main\n#{script}\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	migrator := migrate.New(env, fs, logging.Discard())

	dry, err := migrator.Run(migrate.DryRun)
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if _, err := os.Lstat(legacy); err != nil {
		t.Fatalf("dry run touched the legacy layout: %v", err)
	}

	report, err := migrator.Run(migrate.ForReal)
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	if !reflect.DeepEqual(dry.Lines, report.Lines) {
		t.Errorf("dry run report %v differs from real report %v", dry.Lines, report.Lines)
	}
	if _, err := os.Lstat(legacy); !os.IsNotExist(err) {
		t.Error("legacy directory should be gone after migration")
	}

	// The resolver now lands on the migrated locations.
	cacheDir, err := resolver.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir failed: %v", err)
	}
	if cacheDir != home {
		t.Errorf("CacheDir = %q, want %q", cacheDir, home)
	}

	// The manifest survived the move intact.
	moved := filepath.Join(home, config.ScriptCacheDir, "expr-abc123", manifest.FileName)
	got, err := store.Read(moved)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("manifest after migration = %+v, want %+v", got, want)
	}

	// The template store sees the migrated user template and it expands.
	tstore := templates.NewStore(resolver, fs, env)
	body, err := tstore.Load("custom")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	expanded, err := templates.Expand(body, map[string]string{"script": "fmt.Println(1)"})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if expanded != "package main\nfmt.Println(1)\n" {
		t.Errorf("expanded = %q", expanded)
	}

	// A second run is a no-op.
	again, err := migrator.Run(migrate.ForReal)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !again.Empty() {
		t.Errorf("second run reported %v, want nothing", again.Lines)
	}
}

// TestManifestStalenessAcrossRebuild runs the staleness check the way the
// cache does after a source edit: stat the source, compare against the
// recorded build time.
func TestManifestStalenessAcrossRebuild(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.go")
	if err := os.WriteFile(src, []byte("package main\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	clk := clock.NewFakeClock(1700000000000)
	clk.SetFileModified(src, 1699999999000)

	f, err := os.Open(src)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	m := manifest.Manifest{SourcePath: src, BuiltAtMillis: clk.NowMillis()}
	if manifest.Stale(m, clk, f) {
		t.Error("freshly built manifest should not be stale")
	}

	clk.SetFileModified(src, 1700000000500)
	if !manifest.Stale(m, clk, f) {
		t.Error("manifest should be stale after the source changes")
	}
}
