package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeLedgerToken(t *testing.T) {
	date := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	token := EncodeLedgerToken(date, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeLedgerToken(token)
	assert.NoError(t, err)
	assert.Equal(t, date, decodedDate)
	assert.Equal(t, int64(42), decodedID)
}

func TestDecodeLedgerTokenErrors(t *testing.T) {
	_, _, err := DecodeLedgerToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.RawURLEncoding.EncodeToString([]byte("2024-01-01"))
	_, _, err = DecodeLedgerToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.RawURLEncoding.EncodeToString([]byte("01/01/2024|3"))
	_, _, err = DecodeLedgerToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	badID := base64.RawURLEncoding.EncodeToString([]byte("2024-01-01|zero"))
	_, _, err = DecodeLedgerToken(badID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "entry id")
}
