package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"profassist/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Api key header",
			input:  []byte("POST /v1/messages HTTP/1.1\r\nX-Api-Key: sk-ant-123\r\nAccept: */*\r\n"),
			output: []byte("POST /v1/messages HTTP/1.1\r\nX-Api-Key: [MASKED]\r\nAccept: */*\r\n"),
		},
		{
			name:   "Authorization header",
			input:  []byte("GET / HTTP/1.1\r\nAuthorization: Basic dGVzdDp0ZXN0\r\n"),
			output: []byte("GET / HTTP/1.1\r\nAuthorization: [MASKED]\r\n"),
		},
		{
			name:   "Api key field",
			input:  []byte(`{"hello":"world","apiKey":"abc123"}`),
			output: []byte(`{"hello":"world","apiKey":"[MASKED]"}`),
		},
		{
			name:   "Graphql query is left as is",
			input:  []byte(`{"query":"query { node(id: \"VGVhY2hlci0x\") { id } }"}`),
			output: []byte(`{"query":"query { node(id: \"VGVhY2hlci0x\") { id } }"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestTruncated(t *testing.T) {
	rq := require.New(t)

	rq.Equal("short", logx.Truncated("k", "short", 10).Value.String())
	rq.Equal("abcde...", logx.Truncated("k", "abcdefgh", 5).Value.String())
	rq.Equal("héllo...", logx.Truncated("k", "héllo wörld", 5).Value.String())
}
