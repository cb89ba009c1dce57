package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dl/gofile/internal/fileio"
	"github.com/dl/gofile/internal/output"
)

// isolateConfig points the config file and env at nothing so the host's
// ~/.gofile and GOFILE_* variables do not leak into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GOFILE_CONFIG_PATH", filepath.Join(t.TempDir(), "no-config"))
	t.Setenv("GOFILE_COLOR", "")
	t.Setenv("GOFILE_LOG_LEVEL", "")
}

func runApp(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	outPath := filepath.Join(t.TempDir(), "stdout")
	f, err := os.Create(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var stderr bytes.Buffer
	a := newApp(strings.NewReader(stdin), output.NewFdWriter(int(f.Fd())), &stderr)
	code := a.execute(args)

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	return code, string(out), stderr.String()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := fileio.Put(path, data); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCat_Files(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("alpha\n"))
	b := writeFile(t, dir, "b.bin", []byte{0x00, 0x80, '\n'})

	code, out, _ := runApp(t, "", "cat", a, b)
	if code != exitOK {
		t.Errorf("code = %d, want %d", code, exitOK)
	}
	if want := "alpha\n\x00\x80\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestCat_MissingFile(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("alpha\n"))

	code, out, stderr := runApp(t, "", "cat", filepath.Join(dir, "missing"), a)
	if code != exitError {
		t.Errorf("code = %d, want %d", code, exitError)
	}
	if out != "alpha\n" {
		t.Errorf("stdout = %q, want remaining file printed", out)
	}
	if !strings.Contains(stderr, "read failed") {
		t.Errorf("stderr = %q, want read failure logged", stderr)
	}
}

func TestCat_TextRejectsInvalid(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, t.TempDir(), "bad", []byte{0x80})

	code, out, stderr := runApp(t, "", "cat", "--text", path)
	if code != exitError {
		t.Errorf("code = %d, want %d", code, exitError)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing", out)
	}
	if !strings.Contains(stderr, "UTF-8") {
		t.Errorf("stderr = %q, want UTF-8 error", stderr)
	}
}

func TestPut_Stdin(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	writeFile(t, filepath.Dir(path), "out.txt", []byte("old content that is longer"))

	code, _, _ := runApp(t, "new\n", "put", path)
	if code != exitOK {
		t.Fatalf("code = %d, want %d", code, exitOK)
	}
	got, err := fileio.GetText(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "new\n" {
		t.Errorf("file = %q, want %q", got, "new\n")
	}
}

func TestPut_TextRejectsInvalid(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	code, _, _ := runApp(t, "\xff", "put", "--text", path)
	if code != exitError {
		t.Errorf("code = %d, want %d", code, exitError)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file should not have been created, stat err = %v", err)
	}
}

func TestCopy(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "src", []byte{1, 2, 3})
	dst := writeFile(t, dir, "dst", []byte("to be replaced"))

	code, _, _ := runApp(t, "", "copy", src, dst)
	if code != exitOK {
		t.Fatalf("code = %d, want %d", code, exitOK)
	}
	got, err := fileio.Get(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("dst = %v, want [1 2 3]", got)
	}
}

func TestCopy_MissingSource(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	code, _, _ := runApp(t, "", "copy", filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	if code != exitError {
		t.Errorf("code = %d, want %d", code, exitError)
	}
	if _, err := os.Stat(filepath.Join(dir, "dst")); !os.IsNotExist(err) {
		t.Error("dst should not be created when src is unreadable")
	}
}

func TestLines(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, t.TempDir(), "in.txt", []byte("a\nb\nabc\nB"))

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"all", nil, exitOK, "a\nb\nabc\nB\n"},
		{"numbered", []string{"-n"}, exitOK, "1:a\n2:b\n3:abc\n4:B\n"},
		{"filter", []string{"-n", "-e", "b"}, exitOK, "2:b\n3:abc\n"},
		{"ignore case", []string{"-i", "-e", "^b$"}, exitOK, "b\nB\n"},
		{"fixed", []string{"-F", "-e", "a.c"}, exitNegative, ""},
		{"invert", []string{"-v", "-e", "b"}, exitOK, "a\nB\n"},
		{"multiple patterns", []string{"-e", "^a$", "-e", "^B"}, exitOK, "a\nB\n"},
		{"no match", []string{"-e", "zzz"}, exitNegative, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"lines", "--color=never"}, tt.args...)
			args = append(args, path)
			code, out, stderr := runApp(t, "", args...)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestLines_EmptyMatchPatterns(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, t.TempDir(), "in.txt", []byte("abc\n\nxyz\n"))

	tests := []struct {
		pattern  string
		invert   bool
		wantCode int
		wantOut  string
	}{
		{`^$`, false, exitOK, "2:\n"},
		{`^`, false, exitOK, "1:abc\n2:\n3:xyz\n"},
		{`(?=y)`, false, exitOK, "3:xyz\n"},
		{`^$`, true, exitOK, "1:abc\n3:xyz\n"},
		{`^`, true, exitNegative, ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			args := []string{"lines", "--color=never", "-n", "-e", tt.pattern}
			if tt.invert {
				args = append(args, "-v")
			}
			code, out, stderr := runApp(t, "", append(args, path)...)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestLines_InvalidModes(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, t.TempDir(), "bad.txt", []byte("one\n\x80\nthree\n"))

	tests := []struct {
		mode     string
		wantCode int
		wantOut  string
	}{
		{"stop", exitError, "1:one\n"},
		{"skip", exitOK, "1:one\n3:three\n"},
		{"mark", exitOK, "1:one\n2:<invalid UTF-8>\n3:three\n"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			code, out, stderr := runApp(t, "", "lines", "--color=never", "-n", "--invalid="+tt.mode, path)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
			if !strings.Contains(stderr, "UTF-8") {
				t.Errorf("stderr = %q, want the bad line reported", stderr)
			}
		})
	}
}

func TestLines_BadFlags(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, t.TempDir(), "in.txt", []byte("x\n"))

	for _, args := range [][]string{
		{"lines", "--invalid=explode", path},
		{"lines", "-F", path},
		{"lines", "-e", "(unclosed", path},
		{"lines"},
	} {
		if code, _, _ := runApp(t, "", args...); code != exitError {
			t.Errorf("%v: code = %d, want %d", args, code, exitError)
		}
	}
}

func TestLines_ColorFromEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv("GOFILE_COLOR", "always")
	path := writeFile(t, t.TempDir(), "in.txt", []byte("say hello\n"))

	code, out, _ := runApp(t, "", "lines", "-e", "hello", path)
	if code != exitOK {
		t.Fatalf("code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, "hello") {
		t.Errorf("stdout = %q, want highlighted match", out)
	}
}

func TestLines_FlagOverridesEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv("GOFILE_COLOR", "always")
	path := writeFile(t, t.TempDir(), "in.txt", []byte("say hello\n"))

	_, out, _ := runApp(t, "", "lines", "--color=never", "-e", "hello", path)
	if out != "say hello\n" {
		t.Errorf("stdout = %q, want plain output", out)
	}
}

func TestCheck(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", []byte("fine\n"))
	bad := writeFile(t, dir, "bad.bin", []byte{0xc3, 0x28})

	code, out, _ := runApp(t, "", "check", "--color=never", good, bad)
	if code != exitNegative {
		t.Errorf("code = %d, want %d", code, exitNegative)
	}
	want := good + ": ok\n" + bad + ": invalid UTF-8\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestCheck_IgnoreFile(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", []byte("fine\n"))
	bad := writeFile(t, dir, "bad.bin", []byte{0xc3, 0x28})
	ign := writeFile(t, dir, "ignore", []byte("# binaries\n*.bin\n"))

	code, out, _ := runApp(t, "", "check", "--color=never", "--ignore-file", ign, good, bad)
	if code != exitOK {
		t.Errorf("code = %d, want %d", code, exitOK)
	}
	if want := good + ": ok\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestCheck_MissingIgnoreFile(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", []byte("fine\n"))

	code, _, _ := runApp(t, "", "check", "--ignore-file", filepath.Join(dir, "nope"), good)
	if code != exitError {
		t.Errorf("code = %d, want %d", code, exitError)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	isolateConfig(t)
	code, _, stderr := runApp(t, "", "check", filepath.Join(t.TempDir(), "missing"))
	if code != exitError {
		t.Errorf("code = %d, want %d", code, exitError)
	}
	if !strings.Contains(stderr, "read failed") {
		t.Errorf("stderr = %q, want read failure logged", stderr)
	}
}

func TestConfigFile_Applied(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config", []byte("# gofile defaults\n\n  --color=always  \n"))
	t.Setenv("GOFILE_CONFIG_PATH", cfg)
	path := writeFile(t, dir, "in.txt", []byte("hello\n"))

	_, out, _ := runApp(t, "", "lines", "-e", "hello", path)
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("stdout = %q, want color from config file", out)
	}

	_, out, _ = runApp(t, "", "lines", "--color=never", "-e", "hello", path)
	if out != "hello\n" {
		t.Errorf("stdout = %q, want command line to override config file", out)
	}
}

func TestConfigFile_Invalid(t *testing.T) {
	isolateConfig(t)
	cfg := writeFile(t, t.TempDir(), "config", []byte("--no-such-flag\n"))
	t.Setenv("GOFILE_CONFIG_PATH", cfg)

	if code, _, _ := runApp(t, "", "cat", cfg); code != exitError {
		t.Errorf("code = %d, want %d", code, exitError)
	}
}

func TestReadConfigArgs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config", []byte("# comment\n--color=never\n\n   \n--log-level=debug\r\n"))

	got, err := readConfigArgs(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"--color=never", "--log-level=debug"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = readConfigArgs(filepath.Join(dir, "missing"))
	if err != nil || got != nil {
		t.Errorf("missing file: got %q, %v, want nil, nil", got, err)
	}
}

func TestReadConfigArgs_Directory(t *testing.T) {
	got, err := readConfigArgs(t.TempDir())
	if err != nil || got != nil {
		t.Errorf("got %q, %v, want nil, nil", got, err)
	}
}

func TestConfigFile_DirectoryIgnored(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	t.Setenv("GOFILE_CONFIG_PATH", dir)
	path := writeFile(t, dir, "in.txt", []byte("hello\n"))

	code, out, stderr := runApp(t, "", "cat", path)
	if code != exitOK {
		t.Errorf("code = %d, want %d (stderr %q)", code, exitOK, stderr)
	}
	if out != "hello\n" {
		t.Errorf("stdout = %q, want %q", out, "hello\n")
	}
}

func TestReadConfigArgs_InvalidUTF8(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config", []byte("--color=never\n\xff\n"))
	if _, err := readConfigArgs(path); err == nil {
		t.Error("expected error for config file with invalid UTF-8")
	}
}
