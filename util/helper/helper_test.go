package helper_util

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{"", 20, 0, false},
		{"?limit=5&offset=10", 5, 10, false},
		{"?limit=100", 100, 0, false},
		{"?limit=101", 0, 0, true},
		{"?limit=0", 0, 0, true},
		{"?offset=-1", 0, 0, true},
		{"?limit=ten", 0, 0, true},
		{"?offset=x", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/orders"+tt.query, nil)

			limit, offset, err := GetPaginationParams(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseNullableTime(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)

	got, err := ParseNullableTime(FormatTime(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(*got))

	got, err = ParseNullableTime(ts)
	require.NoError(t, err)
	assert.True(t, ts.Equal(*got))

	got, err = ParseNullableTime(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseNullableTime("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseNullableTime(42)
	assert.Error(t, err)

	_, err = ParseNullableTime("yesterday")
	assert.Error(t, err)
}
