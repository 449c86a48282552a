package checks

import (
	"context"
	"errors"
	"testing"

	"match-canon/core/storage/mocks"
	"match-canon/feature/convert"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func prefixIs(prefix string) any {
	return mock.MatchedBy(func(o minio.ListObjectsOptions) bool { return o.Prefix == prefix })
}

func TestCheckOutputs(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "logs", prefixIs("input/mjlog/")).
		Return(listing("input/mjlog/1.xml", "input/mjlog/2.xml", "input/mjlog/readme.md"))
	mockClient.On("ListObjects", mock.Anything, "logs", prefixIs("input/mjson/")).
		Return(listing("input/mjson/2.json", "input/mjson/3.json"))
	mockClient.On("ListObjects", mock.Anything, "logs", prefixIs("output/")).
		Return(listing("output/1.json", "output/9.json", "output/tmp.bak"))

	report, err := CheckOutputs(context.Background(), mockClient, "logs", testLayout)
	require.NoError(t, err)

	assert.Equal(t, map[convert.Format]int{convert.FormatMjlog: 2, convert.FormatMjson: 2}, report.Inputs)
	assert.Equal(t, 2, report.Outputs)
	assert.Equal(t, []int64{2, 3}, report.Pending)
	assert.Equal(t, []int64{9}, report.Orphans)
	assert.Equal(t, []string{"input/mjlog/readme.md", "output/tmp.bak"}, report.Invalid)
}

func TestCheckOutputs_ListingError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "logs", prefixIs("input/mjlog/")).Return((<-chan minio.ObjectInfo)(ch))

	_, err := CheckOutputs(context.Background(), mockClient, "logs", testLayout)
	assert.ErrorContains(t, err, "access denied")
}
