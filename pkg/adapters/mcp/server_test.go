package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/enfa"
	"github.com/aretw0/enfa/pkg/adapters/memory"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainYAML = `
states: [A, B, C]
symbols: [a]
start: A
finals: [C]
transitions: ["A eps B", "B a C"]
`

func call(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestEliminateEpsilon(t *testing.T) {
	store := memory.NewStore()
	s := NewServer(enfa.New(), WithStore(store))

	res, err := s.handleEliminate(context.Background(), call("eliminate_epsilon", map[string]any{
		"automaton": chainYAML,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var conv domain.Conversion
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &conv))
	assert.True(t, conv.HadEpsilon)
	assert.Equal(t, []string{"C"}, conv.Transitions["A"]["a"])
	assert.Equal(t, []string{"C"}, conv.Finals)

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{conv.ID}, ids)
}

func TestEliminateEpsilon_JSON(t *testing.T) {
	s := NewServer(enfa.New())

	res, err := s.handleEliminate(context.Background(), call("eliminate_epsilon", map[string]any{
		"automaton": `{"states": "A", "symbols": "a", "start": "A", "finals": "A", "transitions": ["A a A"]}`,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var conv domain.Conversion
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &conv))
	assert.False(t, conv.HadEpsilon)
	assert.Empty(t, conv.ID)
}

func TestEliminateEpsilon_Errors(t *testing.T) {
	s := NewServer(enfa.New())

	tests := []struct {
		name string
		args map[string]any
	}{
		{"Missing Argument", map[string]any{}},
		{"Invalid Automaton", map[string]any{"automaton": "states: [A]\nsymbols: [a]\nstart: Z"}},
		{"Garbage", map[string]any{"automaton": "[unclosed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleEliminate(context.Background(), call("eliminate_epsilon", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestEpsilonClosure(t *testing.T) {
	s := NewServer(enfa.New())

	res, err := s.handleClosure(context.Background(), call("epsilon_closure", map[string]any{
		"automaton": chainYAML,
	}))
	require.NoError(t, err)

	var closures domain.Closures
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &closures))
	assert.Equal(t, []string{"A", "B"}, closures["A"])
	assert.Len(t, closures, 3)

	res, err = s.handleClosure(context.Background(), call("epsilon_closure", map[string]any{
		"automaton": chainYAML,
		"state":     "A",
	}))
	require.NoError(t, err)
	var single domain.Closures
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &single))
	assert.Equal(t, domain.Closures{"A": {"A", "B"}}, single)

	res, err = s.handleClosure(context.Background(), call("epsilon_closure", map[string]any{
		"automaton": chainYAML,
		"state":     "Q",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
