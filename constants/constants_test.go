package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("FRETDEX_PORT", "")
	t.Setenv("FRETDEX_LOG_LEVEL", "")
	t.Setenv("DYNAMODB_TABLE", "")

	assert := assert.New(t)
	assert.Equal(DefaultPort, GetPort())
	assert.Equal("info", GetLogLevel())
	assert.Equal("fretdex-store", GetDynamoTable())
}

func TestOverrides(t *testing.T) {
	t.Setenv("FRETDEX_PORT", "9000")
	t.Setenv("FRETDEX_DATA_PATH", "/tmp/store.json")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamo:8000")

	assert := assert.New(t)
	assert.Equal(9000, GetPort())
	assert.Equal("/tmp/store.json", GetDataPath())
	assert.Equal("http://dynamo:8000", GetDynamoEndpoint())
}

func TestBadPortFallsBack(t *testing.T) {
	t.Setenv("FRETDEX_PORT", "eighty")
	assert.Equal(t, DefaultPort, GetPort())
}
