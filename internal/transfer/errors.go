package transfer

import "errors"

// ErrFileNotFound is the single failure mode of [Store.Download]. A missing
// record, an expired record, a wrong password, and a decryption failure are
// all deliberately collapsed into it so the API does not become an oracle
// for guessing file IDs or passwords.
var ErrFileNotFound = errors.New("file not found")
