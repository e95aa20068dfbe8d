package azstore

import (
	"encoding/base64"
	"fmt"
)

// SharedKeyCredential holds a storage account name and the decoded account
// key used to sign requests. It is immutable and safe for concurrent use.
type SharedKeyCredential struct {
	accountName string
	accountKey  []byte
}

// NewSharedKeyCredential decodes the base64 account key. A key that does not
// decode is a configuration error surfaced here, at startup, never per
// request.
func NewSharedKeyCredential(accountName, accountKey string) (*SharedKeyCredential, error) {
	key, err := base64.StdEncoding.DecodeString(accountKey)
	if err != nil {
		return nil, fmt.Errorf("credential for account %q: %w", accountName, ErrInvalidKey)
	}
	return &SharedKeyCredential{accountName: accountName, accountKey: key}, nil
}

// AccountName returns the storage account this credential signs for.
func (c *SharedKeyCredential) AccountName() string {
	return c.accountName
}
