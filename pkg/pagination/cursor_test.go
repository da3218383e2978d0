package pagination_test

import (
	"studyshare/pkg/pagination"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	for _, offset := range []uint{0, 1, 20, 12345} {
		got, err := pagination.Decode(pagination.Encode(offset))
		require.NoError(t, err)
		require.Equal(t, offset, got)
	}

	got, err := pagination.Decode("")
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestDecode_Invalid(t *testing.T) {
	for _, cursor := range []string{"%%%", "bm9wZQ", "bzphYmM"} {
		_, err := pagination.Decode(cursor)
		require.Error(t, err, cursor)
	}
}

func TestNew_ClampsLimit(t *testing.T) {
	p, err := pagination.New("", 0)
	require.NoError(t, err)
	require.EqualValues(t, pagination.DefaultLimit, p.Limit)

	p, err = pagination.New("", 1000)
	require.NoError(t, err)
	require.EqualValues(t, pagination.MaxLimit, p.Limit)

	p, err = pagination.New(pagination.Encode(40), 10)
	require.NoError(t, err)
	require.EqualValues(t, 40, p.Offset)
	require.EqualValues(t, 10, p.Limit)
}

func TestPage_NextAndTrim(t *testing.T) {
	p := pagination.Page{Offset: 20, Limit: 2}

	require.Empty(t, p.Next(2))
	next := p.Next(3)
	require.NotEmpty(t, next)
	off, err := pagination.Decode(next)
	require.NoError(t, err)
	require.EqualValues(t, 22, off)

	require.Equal(t, []int{1, 2}, pagination.Trim(p, []int{1, 2, 3}))
	require.Equal(t, []int{1}, pagination.Trim(p, []int{1}))
}
