package metadomain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoInsightData indica que a listagem "insights" voltou sem nenhuma linha.
// Não é um erro do upstream; o chamador decide como preencher os valores.
var ErrNoInsightData = errors.New("no insight data found")

// UpstreamError representa a falha de uma única chamada HTTP à API do Meta.
// StatusCode zero indica falha de transporte (timeout, DNS, conexão recusada);
// nesse caso Body carrega a mensagem do erro de transporte.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("meta: transport failure: %s", e.Body)
	}

	return fmt.Sprintf("meta: upstream returned %d: %s", e.StatusCode, e.Body)
}

// GraphMessage extrai a mensagem do envelope de erro da API do Meta quando o
// corpo da resposta o contém; caso contrário devolve o corpo bruto.
func (e *UpstreamError) GraphMessage() string {
	var response ErrorResponse
	if err := json.Unmarshal([]byte(e.Body), &response); err == nil && response.Error.Message != "" {
		return response.Error.Message
	}

	return e.Body
}

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}
