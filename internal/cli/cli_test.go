// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linreg/internal/cli"
	"github.com/katalvlaran/linreg/internal/dataset"
	"github.com/katalvlaran/linreg/ols"
)

const lineYAML = `
name: line
predictors: [age]
x: [[1], [2], [3], [4]]
y: [3, 5, 6, 9]
predict: [[5]]
`

// writeDataset writes doc to a temp file and returns its path.
func writeDataset(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

// run executes the CLI with args and returns stdout, stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestFitCommand(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "fit", writeDataset(t, lineYAML))
	require.NoError(t, err)

	assert.Contains(t, out, "Dataset: line")
	assert.Contains(t, out, "n=4  p=2  df=2")
	assert.Contains(t, out, "LOWER 95%")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "1.9")
	assert.Contains(t, out, "0.761625") // 1.9 − 4.3027·sqrt(0.07)
}

func TestFitCommand_SolverFlags(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, lineYAML)
	for _, args := range [][]string{
		{"--path", "fused"},
		{"--backend", "gonum"},
		{"--pivot", "column-one"},
	} {
		out, _, err := run(t, append([]string{"fit", path}, args...)...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "0.761625", args)
		assert.Contains(t, out, "-2.11757", args) // intercept lower bound
	}
}

func TestFitCommand_AlphaPrecedence(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, "alpha: 0.1\n"+lineYAML)

	out, _, err := run(t, "fit", path)
	require.NoError(t, err)
	assert.Contains(t, out, "LOWER 90%")

	// --alpha equal to the flag default still counts as set.
	out, _, err = run(t, "fit", path, "--alpha", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "LOWER 95%")

	out, _, err = run(t, "fit", path, "--alpha", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "LOWER 99%")
}

func TestFitCommand_Verbose(t *testing.T) {
	t.Parallel()

	_, errOut, err := run(t, "fit", writeDataset(t, lineYAML), "-v", "--alpha", "0.01")
	require.NoError(t, err)
	assert.Contains(t, errOut, "dataset loaded")
	assert.Contains(t, errOut, "ols fit")
}

func TestPredictCommand(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "predict", writeDataset(t, lineYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "[5]")
	assert.Contains(t, out, "10.5")
	assert.Contains(t, out, "6.47524")
	assert.Contains(t, out, "14.5248")
}

func TestCommands_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "fit")
	require.Error(t, err)

	_, _, err = run(t, "fit", writeDataset(t, lineYAML), "--backend", "blas")
	require.Error(t, err)

	_, _, err = run(t, "fit", writeDataset(t, lineYAML), "--alpha", "2")
	require.Error(t, err)

	// An explicit zero is rejected, not treated as unset.
	_, _, err = run(t, "fit", writeDataset(t, lineYAML), "--alpha", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--alpha 0 not in (0,1)")

	_, _, err = run(t, "fit", writeDataset(t, "alpha: 0\nx: [[1], [2], [3]]\ny: [1, 2, 4]\n"))
	assert.True(t, errors.Is(err, dataset.ErrInvalidDataset), "got %v", err)

	_, _, err = run(t, "fit", writeDataset(t, "x: [[1], [2]]\ny: [1, 2]\n"))
	assert.True(t, errors.Is(err, ols.ErrDegenerateModel), "got %v", err)

	_, _, err = run(t, "predict", writeDataset(t, "x: [[1], [2], [3]]\ny: [1, 2, 4]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no predict rows")
}
