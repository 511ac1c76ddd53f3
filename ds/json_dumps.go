package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "DumpJSON error").Error()
	}

	return string(tBytes)
}

// DumpIndentedJSON is DumpJSON for humans.
func DumpIndentedJSON[T any](t T) string {
	tBytes, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return errors.Wrap(err, "DumpIndentedJSON error").Error()
	}

	return string(tBytes)
}
