package api

import (
	"encoding/json"
	"net/http"
)

type JSON map[string]any

type Array []JSON

func bytesToJSON(body []byte) (JSON, error) {
	result := JSON{}
	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func bytesToArray(body []byte) (Array, error) {
	result := Array{}
	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

type Response struct {
	Code    int
	Header  http.Header
	Body    any
	RawBody []byte
}

// OK reports whether the response has a 2xx status code.
func (r *Response) OK() bool {
	return r.Code >= http.StatusOK && r.Code < http.StatusMultipleChoices
}
