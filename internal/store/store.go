package store

import "errors"

// ErrNotFound 查無資料時回傳，handler 據此回 404
var ErrNotFound = errors.New("not found")
