package webutils

import (
	"encoding/json"
	"log"
	"net/http"
)

func WriteResult(w http.ResponseWriter, data []byte) {
	if _, err := w.Write(data); err != nil {
		log.Printf("[webutils] Error when writing response: %v", err)
	}
}

func WriteJson(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		WriteError(w, err)
	} else {
		w.Header().Set("Content-Type", "application/json")
		WriteResult(w, res)
	}
}

func WriteError(w http.ResponseWriter, err error) {
	type jError struct {
		Error string `json:"error"`
	}
	w.WriteHeader(http.StatusInternalServerError)
	data, merr := json.Marshal(&jError{Error: err.Error()})
	if merr != nil {
		log.Printf("[webutils] Failed to marshal error %q: %v", err.Error(), merr)
		return
	}
	WriteResult(w, data)
}
