package recorder

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	r := New(nil, nil)
	r.Info("first", map[string]any{"k": "v"})
	require.NoError(t, r.Log(42, "numeric", nil))

	data, err := r.Dump(nil)
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 2)
	require.Equal(t, "info", out[0]["level"])
	require.Equal(t, "first", out[0]["message"])
	require.Equal(t, map[string]any{"k": "v"}, out[0]["context"])
	require.Equal(t, "testlogger", out[0]["channel"])
	require.NotEmpty(t, out[0]["id"])
	require.NotContains(t, out[0], "trace_id")
	require.Equal(t, float64(42), out[1]["level"])

	data, err = r.Dump(Info)
	require.NoError(t, err)
	out = nil
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)

	data, err = r.Dump(Alert)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	_, err = r.Dump(1.5)
	require.Error(t, err)
}

func TestDumpUnsupportedValue(t *testing.T) {
	r := New(nil, nil)
	r.Info("chan", map[string]any{"c": make(chan int)})

	_, err := r.Dump(Info)
	require.Error(t, err)
}
