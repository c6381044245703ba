// Package keychain stores bot tokens in the operating system keychain.
package keychain

import "github.com/zalando/go-keyring"

const serviceName = "telexide"

// Get retrieves a stored bot token for the given account name.
func Get(account string) (string, error) {
	return keyring.Get(serviceName, account)
}

// Set stores a bot token under the given account name.
func Set(account, token string) error {
	return keyring.Set(serviceName, account, token)
}

// Delete removes the stored token for the given account name.
func Delete(account string) error {
	return keyring.Delete(serviceName, account)
}
