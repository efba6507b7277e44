package repository

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound indicates the addressed entity does not exist
var ErrNotFound = goerr.New("not found")
