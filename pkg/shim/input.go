package shim

import (
	"errors"

	"github.com/ksco/supalink/pkg/utils"
)

var (
	errTooFewArgs     = errors.New("too few command line args")
	errNoResponseFile = errors.New("couldn't find a response file in argv")
)

// FindResponseFile returns the path of the first @-prefixed argument in
// args, which includes the program name at index 0.
func FindResponseFile(args []string) (string, error) {
	if len(args) < 2 {
		return "", errTooFewArgs
	}
	for _, arg := range args[1:] {
		if path, ok := utils.RemovePrefix(arg, "@"); ok {
			return path, nil
		}
	}
	return "", errNoResponseFile
}
