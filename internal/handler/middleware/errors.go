package middleware

import "campus-canteen/internal/pkg/errs"

var errMissingToken = errs.New("missing session token")
