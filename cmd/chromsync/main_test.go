package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v2"
)

func testApp(stdout *bytes.Buffer, stderr *bytes.Buffer) *cli.App {
	app := newApp()
	app.Writer = stdout
	app.ErrWriter = stderr
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

func expectExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr cli.ExitCoder
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected an exit error, got %v", err)
	}
	if exitErr.ExitCode() != code {
		t.Errorf("exit code = %d, expected %d", exitErr.ExitCode(), code)
	}
}

func TestNoArgumentsShowsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := testApp(&stdout, &stderr).Run([]string{"chromsync"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout.String(), "chromsync [options] <input> [output]") {
		t.Errorf("usage not shown: %q", stdout.String())
	}
}

func TestMissingInputFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.bed")
	expectExitCode(t, testApp(&stdout, &stderr).Run([]string{"chromsync", missing}), 1)
}

func TestUnknownExtensionFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	expectExitCode(t, testApp(&stdout, &stderr).Run([]string{"chromsync", "reads.bam"}), 1)
}

func TestRewriteFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "regions.bed")
	if err := os.WriteFile(input, []byte("chr1\t1\t2\nchrFOO\t1\t2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := testApp(&stdout, &stderr).Run([]string{"chromsync", "--mute-warnings", input}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "regions.ensembl.bed"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "1\t1\t2\n" {
		t.Errorf("output = %q", content)
	}
	if !strings.Contains(stdout.String(), "1 record written") || !strings.Contains(stdout.String(), "chrFOO\t1") {
		t.Errorf("summary missing from stdout: %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output %q", stderr.String())
	}
}

func TestReportWriterAvoidsStdoutOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := testApp(&stdout, &stderr)
	Cctx := cli.NewContext(app, nil, nil)

	reportWriter(Cctx, "-").Write([]byte("1 record written\n"))
	if stdout.Len() != 0 || stderr.String() != "1 record written\n" {
		t.Errorf("report for stdout output went to stdout %q / stderr %q", stdout.String(), stderr.String())
	}

	stderr.Reset()
	reportWriter(Cctx, "out.bed").Write([]byte("1 record written\n"))
	if stdout.String() != "1 record written\n" || stderr.Len() != 0 {
		t.Errorf("report for file output went to stdout %q / stderr %q", stdout.String(), stderr.String())
	}
}

func TestDumpSynonyms(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := testApp(&stdout, &stderr).Run([]string{"chromsync", "--dump-synonyms"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout.String(), "1\tchr1\n") {
		t.Errorf("synonym table not dumped: %q", stdout.String())
	}
}
