package validation

import (
	"regexp"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const maxIdLength = 100

var idPattern = regexp.MustCompile(`^[\w-]+$`)

// ValidateID rejects empty ids, ids longer than 100 characters and ids with
// characters outside [A-Za-z0-9_-].
func ValidateID(field, value string) error {
	if len(value) == 0 {
		return status.Errorf(codes.InvalidArgument, "%s must not be empty", field)
	}
	if len(value) > maxIdLength {
		return status.Errorf(codes.InvalidArgument, "%s must be at most %d characters", field, maxIdLength)
	}
	if !idPattern.MatchString(value) {
		return status.Errorf(codes.InvalidArgument, "%s contains invalid characters", field)
	}
	return nil
}
