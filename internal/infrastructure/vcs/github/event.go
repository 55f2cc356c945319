package github

import (
	"encoding/json"
	"os"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
)

type eventPayload struct {
	Number      int `json:"number"`
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}

// PRNumberFromEvent saca el número de PR del payload del evento de Actions.
// Los eventos pull_request traen "number" arriba de todo; otros eventos lo
// anidan dentro de "pull_request".
func PRNumberFromEvent(path string) (int, error) {
	if path == "" {
		return 0, &domainerrors.EventPayloadError{Path: path, Err: os.ErrNotExist}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &domainerrors.EventPayloadError{Path: path, Err: err}
	}

	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, &domainerrors.EventPayloadError{Path: path, Err: err}
	}

	number := payload.Number
	if number == 0 {
		number = payload.PullRequest.Number
	}
	if number == 0 {
		return 0, &domainerrors.EventPayloadError{Path: path, Err: errNoPRNumber}
	}
	return number, nil
}

var errNoPRNumber = &noPRNumberError{}

type noPRNumberError struct{}

func (e *noPRNumberError) Error() string { return "el payload no contiene número de PR" }
