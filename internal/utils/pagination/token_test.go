package pagination_test

import (
	"testing"
	"time"

	"github.com/projectfinanceai/finance_tracker_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	txnDate := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 8, 14, 11, 22, 33, 444555666, time.UTC)

	token := pagination.EncodeToken(txnDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)
	require.NoError(t, err)

	assert.True(t, gotDate.Equal(txnDate))
	assert.True(t, gotCreated.Equal(createdAt))
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but not a token
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}
