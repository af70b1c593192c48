package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// EncodeLedgerToken creates an opaque page token from the date and entry id of
// the last ledger entry on a page.
func EncodeLedgerToken(date time.Time, entryID int64) string {
	tokenStr := fmt.Sprintf("%s|%d", date.Format(dateFormat), entryID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeLedgerToken parses a token produced by EncodeLedgerToken.
func DecodeLedgerToken(token string) (time.Time, int64, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	entryID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || entryID <= 0 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (entry id)")
	}
	return date, entryID, nil
}
