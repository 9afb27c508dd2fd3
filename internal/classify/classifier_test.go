package classify

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/playscan/internal/files/filesystem"
)

func newMemoryClassifier() (*Classifier, *filesystem.MemoryFileSystem) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	return New(mfs), mfs
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
}

func TestNew_NilProvider(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil fsProvider")
		}
	}()
	New(nil)
}

func TestCouldBePlaybook(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     bool
	}{
		{"list of plays", "site.yml", "- hosts: all\n  tasks: []\n", true},
		{"yaml extension", "site.yaml", "---\n- hosts: web\n", true},
		{"include", "main.yml", "- include: other.yml\n", true},
		{"marker deep in file", "deploy.yml", "---\n# comment\n- name: deploy\n  hosts: db\n", true},
		{"no space after dash", "a.yml", "-hosts: all", true},
		{"indented with tabs", "b.yml", "\t\thosts:\n", true},
		{"vertical tab before key", "v.yml", "\vhosts: all\n", true},
		{"form feed after dash", "f.yml", "-\fhosts: all\n", true},
		{"invalid yaml still matches", "broken.yml", "{{{\n- hosts: [\n", true},
		{"vault on first line", "secret.yml", "$ANSIBLE_VAULT;1.1;AES256\n6231303436\n", true},
		{"vault without newline", "secret.yml", "$ANSIBLE_VAULT;1.1;AES256", true},
		{"vault not on first line", "later.yml", "---\n$ANSIBLE_VAULT;1.1;AES256\n", false},
		{"plain mapping", "vars.yaml", "foo: bar\n", false},
		{"hosts as a value", "c.yml", "name: hosts: all\n", false},
		{"hostsx key", "d.yml", "- hostsx: all\n", false},
		{"two dashes", "e.yml", "-- hosts: all\n", false},
		{"empty file", "empty.yml", "", false},
		{"wrong extension", "notes.txt", "- hosts: all\n", false},
		{"uppercase extension", "SITE.YML", "- hosts: all\n", false},
		{"extension only", ".yml", "- hosts: all\n", false},
		{"crlf line endings", "win.yml", "---\r\n- hosts: all\r\n", true},
		{"invalid utf8", "bin.yml", "\xff\xfe\x00garbage\n- hosts: all\n\x80\x81\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mfs := newMemoryClassifier()
			mfs.AddFile("playbooks/"+tt.filename, tt.content)

			rel, ok := c.CouldBePlaybook("/project", "/project/playbooks", tt.filename)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, filepath.Join("playbooks", tt.filename), rel)
			} else {
				assert.Empty(t, rel)
			}
		})
	}
}

func TestCouldBePlaybook_LongLine(t *testing.T) {
	c, mfs := newMemoryClassifier()
	content := "x: " + strings.Repeat("a", 1<<20) + "\n- hosts: all\n"
	mfs.AddFile("big.yml", content)

	rel, ok := c.CouldBePlaybook("/project", "/project", "big.yml")
	require.True(t, ok, "lines longer than any buffer must not abort the scan")
	assert.Equal(t, "big.yml", rel)
}

func TestCouldBePlaybook_Unreadable(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddUnreadableFile("secret.yml")

	_, ok := c.CouldBePlaybook("/project", "/project", "secret.yml")
	assert.False(t, ok)

	_, ok = c.CouldBePlaybook("/project", "/project", "missing.yml")
	assert.False(t, ok)
}

func TestCouldBePlaybook_ExtensionGateSkipsFilesystem(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddUnreadableFile("notes.txt")

	// Would match if read; the gate must reject before opening.
	_, ok := c.CouldBePlaybook("/project", "/project", "notes.txt")
	assert.False(t, ok)
}

func TestCouldBePlaybook_OSFilesystem(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "playbooks", "common")
	writeFile(t, filepath.Join(dir, "site.yml"), "- hosts: all\n", 0644)
	writeFile(t, filepath.Join(dir, "notes.txt"), "- hosts: all\n", 0644)

	rel, ok := CouldBePlaybook(root, dir, "site.yml")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("playbooks", "common", "site.yml"), rel)

	_, ok = CouldBePlaybook(root, dir, "notes.txt")
	assert.False(t, ok)

	_, ok = CouldBePlaybook(root, dir, "missing.yml")
	assert.False(t, ok)
}

func TestCouldBePlaybook_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "locked.yml"), "- hosts: all\n", 0000)

	_, ok := CouldBePlaybook(root, root, "locked.yml")
	assert.False(t, ok)
}

func TestCouldBePlaybook_RelativeRoot(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeFile(t, filepath.Join(root, "site.yml"), "- hosts: all\n", 0644)

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, os.Chdir(root))

	rel, ok := CouldBePlaybook(".", root, "site.yml")
	require.True(t, ok)
	assert.Equal(t, "site.yml", rel)
}

func TestCouldBeInventory_FastAccept(t *testing.T) {
	tests := []string{"hosts.ini", "prod.yml", "inventory.yaml"}

	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			c, mfs := newMemoryClassifier()
			mfs.AddFile("inventories/"+filename, "\x00\x01\x02 binary garbage\n#comment\n\n")

			rel, ok := c.CouldBeInventory("/project", "/project/inventories", filename)
			require.True(t, ok)
			assert.Equal(t, filepath.Join("inventories", filename), rel)
		})
	}
}

func TestCouldBeInventory_FastAcceptDoesNotRead(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddUnreadableFile("hosts.ini")

	rel, ok := c.CouldBeInventory("/project", "/project", "hosts.ini")
	require.True(t, ok)
	assert.Equal(t, "hosts.ini", rel)

	_, ok = c.CouldBeInventory("/project", "/project", "absent.ini")
	assert.True(t, ok, "extension alone decides, existence is not checked")
}

func TestCouldBeInventory_Executable(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddExecutable("inventory/ec2.py", "#!/usr/bin/env python\n")
	mfs.AddExecutable("inventory/dynamic", "#!/bin/sh\n")

	rel, ok := c.CouldBeInventory("/project", "/project/inventory", "ec2.py")
	require.True(t, ok, "executable files are accepted whatever their extension")
	assert.Equal(t, filepath.Join("inventory", "ec2.py"), rel)

	_, ok = c.CouldBeInventory("/project", "/project/inventory", "dynamic")
	assert.True(t, ok, "executable files skip the content check")
}

func TestCouldBeInventory_FastReject(t *testing.T) {
	tests := []string{"hosts.txt", "archive.tar.gz", "host.1", "README.md", "hosts.", "site.INI"}

	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			c, mfs := newMemoryClassifier()
			mfs.AddFile(filename, "web1\nweb2\n")

			_, ok := c.CouldBeInventory("/project", "/project", filename)
			assert.False(t, ok)
		})
	}
}

func TestCouldBeInventory_ContentHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"hostnames", "web1.example.com\nweb2.example.com\n", true},
		{"groups and vars", "[web]\nweb1\n\n[web:vars]\n", false},
		{"groups vars no blank", "[web]\nweb1 ansible_host=10.0.0.1\n[db]\ndb1\n[all:vars]\nntp=pool\n", true},
		{"key value", "=weird\n_under\n.dot\n]close\n", true},
		{"comment on line 3", "[web]\nweb1\n# comment\nweb2\n", false},
		{"semicolon comment", "; comment\nweb1\n", false},
		{"leading space", " web1\n", false},
		{"empty line", "web1\n\nweb2\n", false},
		{"crlf empty line", "web1\r\n\r\nweb2\r\n", false},
		{"empty file", "", true},
		{"no trailing newline", "web1", true},
		{"utf8 letter", "ü-host\n", false},
		{"binary", "\x7fELF\x02\x01", false},
		{
			"bad line after ten",
			strings.Repeat("web\n", 10) + "# ignored\n\n",
			true,
		},
		{
			"bad tenth line",
			strings.Repeat("web\n", 9) + "#bad\n",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mfs := newMemoryClassifier()
			mfs.AddFile("inventories/hosts", tt.content)

			rel, ok := c.CouldBeInventory("/project", "/project/inventories", "hosts")
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, filepath.Join("inventories", "hosts"), rel)
			}
		})
	}
}

func TestCouldBeInventory_DotFileHasNoExtension(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddFile(".hosts", "web1\n")

	rel, ok := c.CouldBeInventory("/project", "/project", ".hosts")
	require.True(t, ok, "a leading dot does not start an extension")
	assert.Equal(t, ".hosts", rel)
}

func TestCouldBeInventory_Unreadable(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddUnreadableFile("hosts")

	_, ok := c.CouldBeInventory("/project", "/project", "hosts")
	assert.False(t, ok)

	_, ok = c.CouldBeInventory("/project", "/project", "missing")
	assert.False(t, ok)
}

func TestCouldBeInventory_OSFilesystem(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "inventories")
	writeFile(t, filepath.Join(dir, "hosts"), "[web]\nweb1\nweb2\n", 0644)
	writeFile(t, filepath.Join(dir, "commented"), "[web]\nweb1\n# web2\n", 0644)
	writeFile(t, filepath.Join(dir, "hosts.ini"), "\x00\x00", 0644)
	writeFile(t, filepath.Join(dir, "notes.txt"), "web1\n", 0644)

	rel, ok := CouldBeInventory(root, dir, "hosts")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("inventories", "hosts"), rel)

	_, ok = CouldBeInventory(root, dir, "commented")
	assert.False(t, ok)

	_, ok = CouldBeInventory(root, dir, "hosts.ini")
	assert.True(t, ok)

	_, ok = CouldBeInventory(root, dir, "notes.txt")
	assert.False(t, ok)
}

func TestCouldBeInventory_OSExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute permission bits are not meaningful on windows")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "gce.sh"), "#!/bin/sh\necho '{}'\n", 0755)

	rel, ok := CouldBeInventory(root, root, "gce.sh")
	require.True(t, ok)
	assert.Equal(t, "gce.sh", rel)
}

func TestCouldBeInventory_DirectoryIsNotInventory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "inventory"), 0755))

	_, ok := CouldBeInventory(root, root, "inventory")
	assert.False(t, ok)

	_, ok = CouldBePlaybook(root, root, "inventory")
	assert.False(t, ok)
}

func TestClassifiers_ConcurrentUse(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddFile("site.yml", "- hosts: all\n")
	mfs.AddFile("inventory/hosts", "[web]\nweb1\n")
	mfs.AddFile("inventory/broken", "[web]\n\nweb1\n")
	mfs.AddExecutable("inventory/ec2.py", "#!/usr/bin/env python\n")

	for i := 0; i < 8; i++ {
		t.Run(fmt.Sprintf("worker-%d", i), func(t *testing.T) {
			t.Parallel()
			for j := 0; j < 50; j++ {
				rel, ok := c.CouldBePlaybook("/project", "/project", "site.yml")
				assert.True(t, ok)
				assert.Equal(t, "site.yml", rel)

				rel, ok = c.CouldBeInventory("/project", "/project/inventory", "hosts")
				assert.True(t, ok)
				assert.Equal(t, filepath.Join("inventory", "hosts"), rel)

				_, ok = c.CouldBeInventory("/project", "/project/inventory", "broken")
				assert.False(t, ok)

				_, ok = c.CouldBeInventory("/project", "/project/inventory", "ec2.py")
				assert.True(t, ok)

				assert.True(t, c.SkipDirectory("group_vars"))
			}
		})
	}
}

func TestClassifiers_Idempotent(t *testing.T) {
	c, mfs := newMemoryClassifier()
	mfs.AddFile("site.yml", "- hosts: all\n")
	mfs.AddFile("hosts", "web1\n")
	mfs.AddFile("vars.yml", "a: b\n")

	for i := 0; i < 3; i++ {
		rel, ok := c.CouldBePlaybook("/project", "/project", "site.yml")
		assert.True(t, ok)
		assert.Equal(t, "site.yml", rel)

		_, ok = c.CouldBePlaybook("/project", "/project", "vars.yml")
		assert.False(t, ok)

		rel, ok = c.CouldBeInventory("/project", "/project", "hosts")
		assert.True(t, ok)
		assert.Equal(t, "hosts", rel)

		assert.True(t, c.SkipDirectory(filepath.Join("a", "roles")))
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"site.yml":       ".yml",
		"archive.tar.gz": ".gz",
		"hosts":          "",
		".hosts":         "",
		"..yml":          "",
		".config.yml":    ".yml",
		"hosts.":         ".",
		"host.1":         ".1",
		"":               "",
	}

	for name, want := range tests {
		if got := extension(name); got != want {
			t.Errorf("extension(%q) = %q, want %q", name, got, want)
		}
	}
}
