package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aero-sizing/wingweight/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBaselineCmd(t *testing.T) {
	out, err := run(t, "baseline")
	require.NoError(t, err)

	assert.Contains(t, out, "pegasus: 784.8907100235")
	assert.Contains(t, out, "tbw: 4757.88328411")
	assert.Contains(t, out, "relative error against JMP prediction 784.890710023572")
	assert.Contains(t, out, "relative error against JMP prediction 4757.88328411493")

	out, err = run(t, "baseline", "tbw")
	require.NoError(t, err)
	assert.NotContains(t, out, "pegasus")

	_, err = run(t, "baseline", "concorde")
	assert.Error(t, err)
}

func TestEvalCmd(t *testing.T) {
	out, err := run(t, "eval", "pegasus", "--params", `{"battery_weight_ratio": 0.3}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"battery_weight_ratio":0.3`)
	assert.Contains(t, out, "pegasus: 784.8907100235")

	out, err = run(t, "eval", "tbw", "--gradient")
	require.NoError(t, err)
	assert.Contains(t, out, "d/dstrut_eta = ")
	assert.Equal(t, 8, strings.Count(out, "d/d"))

	_, err = run(t, "eval", "tbw", "--params", `{"span": 1}`)
	assert.Error(t, err)

	_, err = run(t, "eval", "tbw", "--params", `null`)
	assert.Error(t, err)

	_, err = run(t, "eval")
	assert.Error(t, err)
}

func TestDescribeCmd(t *testing.T) {
	out, err := run(t, "describe", "pegasus")
	require.NoError(t, err)

	var spec config.SurfaceSpec
	require.NoError(t, yaml.Unmarshal([]byte(out), &spec))
	assert.Equal(t, "pegasus", spec.Name)
	assert.Len(t, spec.Parameters, 10)
	assert.Len(t, spec.Quadratic, 55)

	out, err = run(t, "describe", "tbw", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &spec))
	assert.Equal(t, "tbw", spec.Name)
	assert.Equal(t, 1291.76098653448, spec.Parameters[2].Center)

	_, err = run(t, "describe", "tbw", "-o", "xml")
	assert.Error(t, err)
}

func TestServeAddress(t *testing.T) {
	env := map[string]string{config.RestPortEnvName: "9000"}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		host, port string
		want       string
	}{
		{host: "", port: "", want: "0.0.0.0:9000"},
		{host: "127.0.0.1", port: "", want: "127.0.0.1:9000"},
		{host: "", port: "7000", want: "0.0.0.0:7000"},
	}
	for _, tt := range tests {
		got, err := serveAddress(tt.host, tt.port, getenv)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	env[config.RestHostEnvName] = "wing]host"
	_, err := serveAddress("", "", getenv)
	assert.Error(t, err)

	env[config.RestHostEnvName] = ""
	env[config.RestPortEnvName] = "80:90"
	_, err = serveAddress("", "", getenv)
	assert.Error(t, err)
}
