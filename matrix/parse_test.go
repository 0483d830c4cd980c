package matrix_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/tourlab/matrix"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := "1\n2 3\n4 5 6\n"
	m, err := matrix.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, m.Lines())
	require.Equal(t, in, m.String())
}

func TestParse_ToleratesBlankLinesAndSpacing(t *testing.T) {
	in := "\n  1\n\n2\t3  \n 4 5 6\n\n"
	m, err := matrix.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6}, m.Values())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty":        {"", matrix.ErrFormat},
		"only blanks":  {"\n \n\t\n", matrix.ErrFormat},
		"non integer":  {"1\n2 x\n", matrix.ErrFormat},
		"float":        {"1\n2 3.5\n", matrix.ErrFormat},
		"short":        {"1\n2 3\n4 5\n", matrix.ErrFormat},
		"long":         {"1\n2 3 9\n", matrix.ErrFormat},
		"negative":     {"1\n-2 3\n", matrix.ErrNegative},
		"single value": {"7\n", nil},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Parse(strings.NewReader(c.in))
			if c.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestParse_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := matrix.Parse(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "costs.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n1 2\n"), 0o600))

	m, err := matrix.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, m.Nodes())

	_, err = matrix.ParseFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
