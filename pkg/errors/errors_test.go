package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{"backend message wins", &BackendError{Status: 400, Message: "Equipamento em uso"}, "Erro ao apagar o registro.", "Equipamento em uso"},
		{"empty backend message", &BackendError{Status: 500}, "Erro ao apagar o registro.", "Erro ao apagar o registro."},
		{"wrapped backend error", fmt.Errorf("delete: %w", &BackendError{Status: 409, Message: "conflito"}), "x", "conflito"},
		{"http error", NewHttpError(http.StatusBadGateway, "Erro ao listar os registros.", nil, nil), "y", "Erro ao listar os registros."},
		{"plain error", fmt.Errorf("dial tcp: refused"), "Erro ao criar o registro.", "Erro ao criar o registro."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, tt.fallback))
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(&BackendError{Status: 404}))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(&BackendError{Status: 400}))
	assert.Equal(t, http.StatusBadGateway, StatusCode(&BackendError{Status: 503}))
	assert.Equal(t, http.StatusTeapot, StatusCode(NewHttpError(http.StatusTeapot, "", nil, nil)))
	assert.Equal(t, http.StatusBadRequest, StatusCode(ErrInvalidID))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(fmt.Errorf("boom")))
}
