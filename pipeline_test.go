package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"jscc/token"
)

func writeScript(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	return path
}

func TestCompileHelloWorld(t *testing.T) {
	input := writeScript(t, "hello.js", `puts('Hello, World!\n');`)
	output := filepath.Join(filepath.Dir(input), "hello.o")

	err := Compile(Options{InputFile: input, OutputFile: output})
	require.NoError(t, err)

	info, err := os.Stat(output)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0), "object file must not be empty")
}

func TestCompileWhileLoop(t *testing.T) {
	input := writeScript(t, "loop.js", `while (false) { beep(); }
done();`)
	output := filepath.Join(filepath.Dir(input), "loop.o")

	err := Compile(Options{InputFile: input, OutputFile: output})
	require.NoError(t, err)

	info, err := os.Stat(output)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestDefaultOutputPath(t *testing.T) {
	opts := Options{InputFile: filepath.Join("dir", "script.js")}
	require.Equal(t, filepath.Join("dir", "script.o"), opts.objectPath())

	opts.OutputFile = "custom.o"
	require.Equal(t, "custom.o", opts.objectPath())
}

func TestMissingInputFile(t *testing.T) {
	err := Compile(Options{InputFile: filepath.Join(t.TempDir(), "absent.js")})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrorAborts(t *testing.T) {
	input := writeScript(t, "bad.js", `while { f(); }`)
	output := filepath.Join(filepath.Dir(input), "bad.o")

	err := Compile(Options{InputFile: input, OutputFile: output})
	require.ErrorIs(t, err, ErrParse)

	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr), "no object file on parse failure")
}

func TestUnsupportedConstructAborts(t *testing.T) {
	input := writeScript(t, "unsupported.js", `if (true) { f(); }`)
	output := filepath.Join(filepath.Dir(input), "unsupported.o")

	err := Compile(Options{InputFile: input, OutputFile: output})
	require.Error(t, err)

	var cerr *token.CompileError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, token.UnsupportedConstruct, cerr.Kind)

	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr), "no partial object file on lowering failure")
}

func TestBadTargetTriple(t *testing.T) {
	input := writeScript(t, "triple.js", `puts('x\n');`)
	output := filepath.Join(filepath.Dir(input), "triple.o")

	err := Compile(Options{
		InputFile:  input,
		OutputFile: output,
		Target:     "zorkmid9-unknown-nowhere",
	})
	require.ErrorIs(t, err, ErrTargetResolution)

	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr), "no object file on target failure")
}

func TestMissingLinkerFails(t *testing.T) {
	input := writeScript(t, "link.js", `puts('x\n');`)
	output := filepath.Join(filepath.Dir(input), "link.o")

	err := Compile(Options{
		InputFile:  input,
		OutputFile: output,
		Linker:     filepath.Join(t.TempDir(), "no-such-linker"),
	})
	require.ErrorIs(t, err, ErrLink)

	// the object was emitted before the link step failed
	_, statErr := os.Stat(output)
	require.NoError(t, statErr)
}
