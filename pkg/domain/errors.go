package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness or reference violation, such as a
	// duplicate email or deleting a city still used by services.
	ErrConflict = errors.New("conflict")

	// ErrInvalidReference indicates a supplied city_id or category_id does
	// not resolve to an existing row.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrNoFieldsToUpdate indicates a partial update carried no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrCreateFailed indicates the store reported no inserted row.
	ErrCreateFailed = errors.New("create failed")

	// ErrNoAsset indicates the owner has no avatar or logo to delete.
	ErrNoAsset = errors.New("no asset")

	// ErrUploadFailed indicates the blob store rejected an upload.
	ErrUploadFailed = errors.New("upload failed")

	// ErrDeleteFailed indicates the blob store rejected a removal.
	ErrDeleteFailed = errors.New("delete failed")
)
