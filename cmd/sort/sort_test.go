package sort

import (
	"bytes"
	"testing"

	"github.com/huby-dev/huby/size"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortSizes(t *testing.T) {
	for _, test := range []struct {
		args    []string
		reverse bool
		want    string
	}{
		{[]string{"1GiB", "1GB", "10MB"}, false, "10MB\n1GB\n1GiB\n"},
		{[]string{"1GiB", "1GB", "10MB"}, true, "1GiB\n1GB\n10MB\n"},
		{[]string{"1KB", "1000", "1 kb"}, false, "1KB\n1KB\n1KB\n"},
		{[]string{"7"}, true, "7B\n"},
	} {
		reverse = test.reverse
		var buf bytes.Buffer
		require.NoError(t, sortSizes(&buf, size.DefaultFormatter, test.args), test.args)
		assert.Equal(t, test.want, buf.String(), test.args)
	}
	reverse = false
}

func TestSortSizesError(t *testing.T) {
	var buf bytes.Buffer
	err := sortSizes(&buf, size.DefaultFormatter, []string{"1GB", "-1GB"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, size.ErrInvalidValue))
	assert.Equal(t, "", buf.String())
}
