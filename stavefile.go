//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

var Default = Build

var Aliases = map[string]any{
	"b":  Build,
	"t":  Test.Default,
	"fz": Test.Fuzz,
	"l":  Lint.Default,
	"d":  Docs,
	"g":  CI.Gate,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

const (
	binary  = "bin/prose"
	mainPkg = "./cmd/prose"
)

// Build compiles bin/prose when any Go source or module file is newer.
func Build() error {
	stale, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !stale {
		return nil
	}
	fmt.Println("build", binary)
	return sh.RunV("go", "build", "-ldflags", versionFlags(), "-o", binary, mainPkg)
}

// Install puts prose in $GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", versionFlags(), mainPkg)
}

// Docs checks the repository's own Markdown against the prose grammar.
func Docs() error {
	st.Deps(Build)
	return sh.RunV(binary, "check", "--summary", "--ignore", "_examples", ".")
}

// Clean removes bin/ and coverage output.
func Clean() error {
	for _, p := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	return nil
}

// Default runs the suite under gotestsum with the race detector.
func (Test) Default() error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race", "-p", procs, "-parallel", procs,
		"-coverprofile=coverage.out", "-covermode=atomic",
		"./...",
	)
}

// Fuzz runs every fuzz target for FUZZ_TIME (default 30s).
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZ_TIME"), "30s")
	targets := map[string]string{
		"FuzzParse":             "./pkg/markdown",
		"FuzzMarkdownRoundTrip": "./pkg/render",
		"FuzzWriteReadReplace":  "./pkg/fsutil",
	}
	for name, pkg := range targets {
		fmt.Printf("fuzz %s %s (%s)\n", pkg, name, fuzzTime)
		err := sh.RunV("go", "test", "-run=^$", "-fuzz=^"+name+"$", "-fuzztime="+fuzzTime, pkg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Default runs golangci-lint.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt fails when gofmt would change any file.
func (Lint) Fmt() error {
	out, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("not gofmt-ed:\n%s", out)
	}
	return nil
}

// Gate is what CI runs.
func (CI) Gate() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, CI.Tidy, CI.Cross, Docs)
}

// Tidy fails when go mod tidy changes go.mod or go.sum.
func (CI) Tidy() error {
	files := []string{"go.mod", "go.sum"}
	before := make([][]byte, len(files))
	for i, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		before[i] = data
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	for i, f := range files {
		after, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if !bytes.Equal(before[i], after) {
			return errors.New(f + " is not tidy")
		}
	}
	return nil
}

// Cross builds prose for each release platform.
func (CI) Cross() error {
	for _, platform := range []string{"linux/amd64", "linux/arm64", "darwin/arm64", "windows/amd64"} {
		goos, goarch, _ := strings.Cut(platform, "/")
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
			return fmt.Errorf("%s: %w", platform, err)
		}
	}
	return nil
}

// Default benchmarks parsing and rendering.
func (Bench) Default() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./pkg/markdown", "./pkg/render")
}

func versionFlags() string {
	git := func(args ...string) string {
		out, err := sh.Output("git", args...)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	}
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(git("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}
