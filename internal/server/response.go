package server

import (
	"encoding/json"
	"net/http"
)

type response struct {
	Status int `json:"Status"`
	Body   any `json:"Body,omitempty"`
}

type errorResponse struct {
	ErrorDescription string `json:"ErrorDescription"`
}

const internalErrorJSON = `{"Status":500,"Body":{"ErrorDescription":"internal server error"}}`

func writeResponse(w http.ResponseWriter, status int, body any) {
	var data, err = json.Marshal(response{Status: status, Body: body})
	if err != nil {
		writeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeResponse(w, status, errorResponse{ErrorDescription: err.Error()})
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(internalErrorJSON))
}
