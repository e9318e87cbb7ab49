package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/schema"

	"agingd/internal/orchestrator"
)

// formDecoder maps posted form fields onto request structs via `schema` tags.
var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// bodyError is a request body that could not be read or decoded.
type bodyError struct {
	status int
	msg    string
}

func (e bodyError) Error() string   { return e.msg }
func (e bodyError) StatusCode() int { return e.status }

// decodeBody fills dst from a JSON, urlencoded or multipart form body.
// A missing Content-Type is treated as a urlencoded form.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	ct := r.Header.Get("Content-Type")
	mt := "application/x-www-form-urlencoded"
	if ct != "" {
		var err error
		if mt, _, err = mime.ParseMediaType(ct); err != nil {
			return bodyError{status: http.StatusUnsupportedMediaType, msg: "invalid Content-Type"}
		}
	}
	switch mt {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return readError(err, "invalid JSON body")
		}
		return nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return readError(err, "invalid multipart form")
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return readError(err, "invalid form body")
		}
	default:
		return bodyError{status: http.StatusUnsupportedMediaType, msg: "Content-Type must be a form or application/json"}
	}
	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		return bodyError{status: http.StatusBadRequest, msg: "invalid form fields: " + err.Error()}
	}
	return nil
}

func readError(err error, msg string) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return bodyError{status: http.StatusRequestEntityTooLarge, msg: "request body too large"}
	}
	return bodyError{status: http.StatusBadRequest, msg: msg}
}

// subject builds a Subject from optional fields; absent fields are rejected.
func subject(suffix string, age, gender, race *int) (orchestrator.Subject, error) {
	for _, f := range []struct {
		name string
		v    *int
	}{{"age", age}, {"gender", gender}, {"race", race}} {
		if f.v == nil {
			return orchestrator.Subject{}, orchestrator.InvalidInputError{Field: f.name + suffix, Reason: "is required"}
		}
	}
	return orchestrator.Subject{Age: *age, Gender: *gender, Race: *race}, nil
}
