// Package model holds the directory's entities and the request payloads
// the HTTP layer binds into them.
//
// Entities reference each other through small Ref types (BusinessRef,
// UserRef) instead of pointers to full records, which keeps the JSON
// acyclic: a Business lists its Hours, and each Hours points back to the
// Business by id only.
package model

import "github.com/go-playground/validator/v10"

// validate is shared by every request payload. validator caches struct
// metadata, so one instance per process is enough.
var validate = validator.New()
