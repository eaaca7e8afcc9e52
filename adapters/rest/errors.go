package rest

import (
	"errors"
	"net/http"

	"todo-list-service/core"
	"todo-list-service/pkg/res"
)

func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrTaskInvalidArgs):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrTaskNotFound):
		res.Error(w, err.Error(), http.StatusNotFound)
	default:
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
