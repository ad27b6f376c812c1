package store

import (
	"errors"
	"fmt"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const (
	azblobBlobNotFound      = "BlobNotFound"
	azblobBlobAlreadyExists = "BlobAlreadyExists"
	azblobConditionNotMet   = "ConditionNotMet"
)

// AsStorageError unwraps the azure storage error carried by err, if any.
func AsStorageError(err error) (azStorageBlob.StorageError, bool) {
	serr := &azStorageBlob.StorageError{}
	//nolint
	ierr, ok := err.(*azStorageBlob.InternalError)
	if ierr == nil || !ok {
		return azStorageBlob.StorageError{}, false
	}
	if !ierr.As(&serr) {
		return azStorageBlob.StorageError{}, false
	}
	return *serr, true
}

// WrapBlobNotFound translates the azure BlobNotFound error to ErrNotFound.
// Any other err, including nil, is returned as is.
func WrapBlobNotFound(err error) error {
	if !isAzureBlobNotFound(err) {
		return err
	}
	return fmt.Errorf("%s: %w", err.Error(), ErrNotFound)
}

func IsBlobNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound) || isAzureBlobNotFound(err)
}

func isAzureBlobNotFound(err error) bool {
	return hasErrorCode(err, azblobBlobNotFound)
}

// isAzureBlobExists reports the failure of a put guarded by a none-match
// etag.
func isAzureBlobExists(err error) bool {
	return hasErrorCode(err, azblobBlobAlreadyExists, azblobConditionNotMet)
}

func hasErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	serr, ok := AsStorageError(err)
	if !ok {
		return false
	}
	for _, code := range codes {
		if string(serr.ErrorCode) == code {
			return true
		}
	}
	return false
}
