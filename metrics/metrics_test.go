// SPDX-License-Identifier: MIT

package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/metrics"
)

// TestRecorder_Observe counts successes, failures and cells.
func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe("nucleotide", 6, time.Millisecond, -1, nil)
	r.Observe("nucleotide", 12, time.Millisecond, 4, nil)
	r.Observe("protein", 99, time.Millisecond, 7, errors.New("bad residue"))

	expected := `
# HELP nwalign_alignments_total Alignment runs by mode and outcome.
# TYPE nwalign_alignments_total counter
nwalign_alignments_total{mode="nucleotide",outcome="ok"} 2
nwalign_alignments_total{mode="protein",outcome="error"} 1
# HELP nwalign_best_score Optimal score of the last successful run.
# TYPE nwalign_best_score gauge
nwalign_best_score{mode="nucleotide"} 4
# HELP nwalign_cells_total Dynamic-programming cells filled by successful runs.
# TYPE nwalign_cells_total counter
nwalign_cells_total{mode="nucleotide"} 18
`
	err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"nwalign_alignments_total", "nwalign_best_score", "nwalign_cells_total")
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(r.Registry(), "nwalign_alignment_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one histogram series per mode")
}

// TestRecorder_WriteTextfile writes the exposition to disk.
func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe("nucleotide", 4, time.Microsecond, 2, nil)

	path := filepath.Join(t.TempDir(), "nwalign.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `nwalign_alignments_total{mode="nucleotide",outcome="ok"} 1`)
}
