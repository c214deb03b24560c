package domain

import "errors"

var (
	ErrContentNotFound     = errors.New("content not found")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrFavoriteNotFound    = errors.New("favorite not found")
)
