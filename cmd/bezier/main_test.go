package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/bezier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParsePoints(t *testing.T) {
	pts, err := parsePoints("0,0 10,20;40,50")
	require.NoError(t, err)
	assert.Equal(t, []bezier.Pair{bezier.P(0, 0), bezier.P(10, 20)}, pts[:2])
	assert.Len(t, pts, 3)
	_, err = parsePoints("1,2,3")
	assert.ErrorIs(t, err, bezier.ErrInvalidArgument)
	_, err = parsePoints("a,2")
	assert.ErrorIs(t, err, bezier.ErrInvalidArgument)
	pts, err = parsePoints("")
	assert.NoError(t, err)
	assert.Empty(t, pts)
}

func TestPointCommand(t *testing.T) {
	out, err := run(t, "point", "--points", "0,0 10,20 40,50", "--t", "0.5", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "casteljau (15,22.5)\nbernstein (15,22.5)\n", out)
}

func TestTraceCommand(t *testing.T) {
	out, err := run(t, "trace", "--points", "0,0 10,0", "--step", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n2.5 0\n5 0\n7.5 0\n", out)
	_, err = run(t, "trace", "--points", "0,0", "--step", "0.25")
	assert.ErrorIs(t, err, bezier.ErrEmptyCurve)
}

func TestCurveCommand(t *testing.T) {
	out, err := run(t, "curve", "--points", "0,0 10,0", "--step", "0.25")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "10 0", lines[4])
	_, err = run(t, "curve", "--points", "0,0 10,0", "--from", "0.5", "--to", "0.2")
	assert.ErrorIs(t, err, bezier.ErrInvalidArgument)
}

func TestLevelsCommand(t *testing.T) {
	out, err := run(t, "levels", "--points", "0,0 10,20 40,50", "--t", "0.5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[8], "point (15,22.5) #"), lines[8])
}

func TestInvalidParameter(t *testing.T) {
	_, err := run(t, "point", "--t", "1.5")
	assert.ErrorIs(t, err, bezier.ErrInvalidArgument)
}

func TestRotateAndShift(t *testing.T) {
	out, err := run(t, "curve", "--points", "10,0 20,0", "--rotate", "90", "--shift", "1,1", "--step", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1 11\n1 16\n1 21\n", out)
	_, err = run(t, "curve", "--shift", "1;1")
	assert.ErrorIs(t, err, bezier.ErrInvalidArgument)
}

func TestBBoxCommand(t *testing.T) {
	out, err := run(t, "bbox", "--points", "0,0 10,20 40,50", "--contains", "15,22.5")
	require.NoError(t, err)
	assert.Equal(t, "polygon (0,0) -- (10,20) -- (40,50) -- cycle\n"+
		"bbox (0,0) (40,50)\n"+
		"contains (15,22.5) true\n", out)
	out, err = run(t, "bbox", "--points", "0,0 10,20 40,50", "--contains", "40,0")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "contains (40,0) false\n"), out)
	_, err = run(t, "bbox", "--points", "")
	assert.ErrorIs(t, err, bezier.ErrEmptyCurve)
}
