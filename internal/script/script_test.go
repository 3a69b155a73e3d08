package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/teenjuna/arraylist/internal/script"
	"github.com/teenjuna/arraylist/internal/testing/require"
)

func TestRun(t *testing.T) {
	s, err := script.Load([]byte(`
ops:
  - add 5
  - add 6
  - insert 1 7
  - print
  - remove-at 0
  - index-of 6
  - contains 9
  - get 5
  - set 0 8
  - remove 6
  - remove 6
  - size
  - print
`))
	require.Nil(t, err)

	var out bytes.Buffer
	list, err := s.Run(&out)
	require.Nil(t, err)
	require.Equal(t, list.String(), "[ 8 ]")
	require.Equal(t, out.String(), strings.Join([]string{
		"add 5 -> true",
		"add 6 -> true",
		"insert 1 7 -> ok",
		"print -> [ 5, 7, 6 ]",
		"remove-at 0 -> 5",
		"index-of 6 -> 1",
		"contains 9 -> false",
		"get 5 -> error: index out of range: index: 5, size: 2",
		"set 0 8 -> 7",
		"remove 6 -> true",
		"remove 6 -> false",
		"size -> 1",
		"print -> [ 8 ]",
	}, "\n")+"\n")
}

func TestRunGrowth(t *testing.T) {
	s, err := script.Load([]byte(`
capacity: 2
growth: linear:4
ops: [add a, add b, capacity, add c, capacity, ensure-capacity 20, drain, size, capacity, clear]
`))
	require.Nil(t, err)

	var out bytes.Buffer
	list, err := s.Run(&out)
	require.Nil(t, err)
	require.Equal(t, list.IsEmpty(), true)
	require.Equal(t, out.String(), strings.Join([]string{
		"add a -> true",
		"add b -> true",
		"capacity -> 2",
		"add c -> true",
		"capacity -> 6",
		"ensure-capacity 20 -> 20",
		"drain -> [ a, b, c ]",
		"size -> 0",
		"capacity -> 20",
		"clear -> ok",
	}, "\n")+"\n")
}

func TestRunInvalidOp(t *testing.T) {
	for _, op := range []string{"push 1", "add", "get x", "insert 1", "clear now"} {
		s, err := script.Load([]byte("ops: [add a, '" + op + "', add b]"))
		require.Nil(t, err)

		var out bytes.Buffer
		list, err := s.Run(&out)
		require.ErrorIs(t, err, script.ErrInvalidOp)
		require.Equal(t, list.String(), "[ a ]")
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, data := range []string{
		"capacity: -1",
		"growth: linear:0",
		"growth: linear:x",
		"growth: factor:1",
		"growth: cubic",
		"ops: {add: 1}",
	} {
		_, err := script.Load([]byte(data))
		require.ErrorIs(t, err, script.ErrInvalidScript)
	}
}

func TestEncode(t *testing.T) {
	s, err := script.Load([]byte("ops: [add 5, add 7]"))
	require.Nil(t, err)
	list, err := s.Run(new(bytes.Buffer))
	require.Nil(t, err)

	data, err := script.Encode(list, "text")
	require.Nil(t, err)
	require.Equal(t, string(data), "[ 5, 7 ]\n")

	data, err = script.Encode(list, "json")
	require.Nil(t, err)
	require.Equal(t, string(data), "[\"5\",\"7\"]\n")

	data, err = script.Encode(list, "yaml")
	require.Nil(t, err)
	require.Equal(t, string(data), "- \"5\"\n- \"7\"\n")

	_, err = script.Encode(list, "xml")
	require.NotNil(t, err)
}
