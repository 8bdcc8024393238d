package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	src := `
# build
insert One 1
SET Two 2

get One
del Two
empty
len
expect Two -
verify
print
`
	cmds, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	want := []Command{
		{Line: 3, Op: OpInsert, Args: []string{"One", "1"}},
		{Line: 4, Op: OpInsert, Args: []string{"Two", "2"}},
		{Line: 6, Op: OpFind, Args: []string{"One"}},
		{Line: 7, Op: OpDelete, Args: []string{"Two"}},
		{Line: 8, Op: OpEmpty, Args: []string{}},
		{Line: 9, Op: OpLen, Args: []string{}},
		{Line: 10, Op: OpExpect, Args: []string{"Two", "-"}},
		{Line: 11, Op: OpVerify, Args: []string{}},
		{Line: 12, Op: OpPrint, Args: []string{}},
	}
	assert.Equal(t, want, cmds)
}

func Test_Parse_errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown command",
			src:     "insert a 1\nupsert a 2\n",
			wantErr: ErrUnknownCommand,
			wantMsg: "line 2",
		},
		{
			name:    "missing value",
			src:     "insert a\n",
			wantErr: ErrBadArguments,
			wantMsg: "line 1: insert takes 2 arguments, got 1",
		},
		{
			name:    "extra argument",
			src:     "\n\nlen 3\n",
			wantErr: ErrBadArguments,
			wantMsg: "line 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := Parse(strings.NewReader(tt.src))
			assert.Nil(t, cmds)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func Test_Command_String(t *testing.T) {
	assert.Equal(t, "insert a 1", Command{Op: OpInsert, Args: []string{"a", "1"}}.String())
	assert.Equal(t, "len", Command{Op: OpLen}.String())
}
