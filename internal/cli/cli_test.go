package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/tightbinding/foundation"
	"github.com/katalvlaran/tightbinding/internal/cli"
	"github.com/katalvlaran/tightbinding/internal/config"
	"github.com/katalvlaran/tightbinding/lattice"
	"github.com/katalvlaran/tightbinding/repository"
	"github.com/katalvlaran/tightbinding/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in an empty directory and returns stdout
// and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// csvRows splits CSV output into lines.
func csvRows(out string) []string {
	return strings.Split(strings.TrimSpace(out), "\n")
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut []string
	}{
		{
			name: "chain line",
			args: []string{"build", "--preset", "chain", "--region", "line", "--length", "4", "-o", "csv"},
			wantOut: []string{
				"lattice,chain", "num_sites,7", "valid,5", "trimmed,0", "valid_A,5", "components,1", "hamiltonian_dim,5",
			},
		},
		{
			name: "chain line annihilated",
			args: []string{"build", "--preset", "chain", "--region", "line", "--length", "4", "--min-neighbours", "2", "-o", "csv"},
			wantOut: []string{
				"min_neighbours,2", "valid,0", "trimmed,5", "components,0", "hamiltonian_dim,0",
			},
		},
		{
			name: "square primitive",
			args: []string{"build", "--preset", "square", "--region", "primitive", "--size", "3,2", "-o", "csv"},
			wantOut: []string{
				"ndim,2", "num_sites,6", "valid,6", "trimmed,0", "hamiltonian_dim,6",
			},
		},
		{
			name:    "graphene householder",
			args:    []string{"build", "--radius", "0.8", "--solver", "householder", "-o", "csv"},
			wantOut: []string{"lattice,graphene", "sublattices,A B", "min_neighbours,2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			rows := csvRows(out)
			for _, want := range tt.wantOut {
				assert.Contains(t, rows, want)
			}
		})
	}
}

func TestBuildCommand_Formats(t *testing.T) {
	args := []string{"build", "--preset", "chain", "--region", "primitive", "--size", "4"}

	out, _, err := run(t, append(args, "-o", "markdown")...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "|"), out)
	assert.Contains(t, out, "num_sites")

	out, _, err = run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "hamiltonian_dim")
	assert.Contains(t, out, "┌")
}

func TestBuildCommand_Errors(t *testing.T) {
	_, _, err := run(t, "build", "--preset", "kagome")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "build", "--region", "primitive", "--size", "2,2,2", "--preset", "square")
	require.ErrorIs(t, err, foundation.ErrBadSize)

	_, _, err = run(t, "build", "extra")
	require.Error(t, err)
}

func TestBuildCommand_DebugLog(t *testing.T) {
	_, stderr, err := run(t, "build", "--preset", "chain", "--region", "line", "--length", "4",
		"--min-neighbours", "2", "--log-level", "debug", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, stderr, "site trimmed")
	assert.Contains(t, stderr, "foundation: edges trimmed")
}

func TestSitesCommand(t *testing.T) {
	out, _, err := run(t, "sites", "--preset", "chain", "--region", "line", "--length", "4", "--limit", "2", "-o", "csv")
	require.NoError(t, err)
	rows := csvRows(out)
	require.Len(t, rows, 3)
	assert.True(t, strings.HasPrefix(rows[1], "0,1,"), rows[1])
	assert.Contains(t, rows[1], "-2.0000")
	assert.True(t, strings.HasPrefix(rows[2], "1,2,"), rows[2])

	out, _, err = run(t, "sites", "--preset", "chain", "--region", "line", "--length", "4", "--limit", "0", "-o", "csv")
	require.NoError(t, err)
	assert.Len(t, csvRows(out), 6)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tightbinding v"+cli.Version)
}

func TestNewReport(t *testing.T) {
	line, err := shape.NewLine(lattice.Cartesian{-2}, lattice.Cartesian{2})
	require.NoError(t, err)
	f, err := foundation.NewFromShape(repository.Chain(1), line)
	require.NoError(t, err)

	got := cli.NewReport("chain", f, 0)
	want := cli.Report{
		Preset:         "chain",
		NDim:           1,
		Sublattices:    []string{"A"},
		MinNeighbours:  1,
		Size:           lattice.Index3D{7, 1, 1},
		NumSites:       7,
		Valid:          5,
		ValidPerSub:    []int{5},
		Components:     1,
		HamiltonianDim: 5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewReport mismatch (-want +got):\n%s", diff)
	}

	circle, err := shape.NewCircle(1)
	require.NoError(t, err)
	f, err = foundation.NewFromShape(repository.GrapheneMonolayer(), circle)
	require.NoError(t, err)
	r := cli.NewReport("graphene", f, 0)
	assert.Equal(t, r.Valid, r.ValidPerSub[0]+r.ValidPerSub[1])
	assert.Equal(t, r.Valid, r.HamiltonianDim)
}
