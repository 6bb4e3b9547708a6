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
	if err := testApp(&stdout, &stderr).Run([]string{"gff2refflat"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(stdout.String(), "gff2refflat [options] <input.gff3> [output]") {
		t.Errorf("usage not shown: %q", stdout.String())
	}
}

func TestWrongExtensionFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	expectExitCode(t, testApp(&stdout, &stderr).Run([]string{"gff2refflat", "genes.gtf"}), 1)
}

func TestMissingInputFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.gff3")
	expectExitCode(t, testApp(&stdout, &stderr).Run([]string{"gff2refflat", missing}), 1)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "genes.gff3")
	gff3 := "##gff-version 3\n1\tsrc\tmRNA\t1\t50\t.\t+\t.\tID=tx1;Name=G\n1\tsrc\texon\t1\t50\t.\t+\t.\tParent=tx1\n"
	if err := os.WriteFile(input, []byte(gff3), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := testApp(&stdout, &stderr).Run([]string{"gff2refflat", input}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "genes.refFlat"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(content), "G\ttx1\t1\t+\t0\t50\t50\t50\t1\t0,\t50,\n") {
		t.Errorf("output = %q", content)
	}
	if !strings.Contains(stdout.String(), "1 transcript written") {
		t.Errorf("summary missing from stdout: %q", stdout.String())
	}
}

func TestReportWriterAvoidsStdoutOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	Cctx := cli.NewContext(testApp(&stdout, &stderr), nil, nil)

	reportWriter(Cctx, "-").Write([]byte("1 transcript written\n"))
	if stdout.Len() != 0 || stderr.String() != "1 transcript written\n" {
		t.Errorf("report for stdout output went to stdout %q / stderr %q", stdout.String(), stderr.String())
	}
}
