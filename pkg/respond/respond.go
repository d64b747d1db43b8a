package respond

import (
	"encoding/json"
	"net/http"
)

// JSON пишет статус и тело. Ошибка кодирования возвращается вызывающему:
// заголовки к этому моменту уже отправлены
func JSON(w http.ResponseWriter, r *http.Request, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

// Error отдает ошибку в формате {"Erro": "..."}
func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	_ = JSON(w, r, code, map[string]string{"Erro": message})
}

// Empty отдает только статус, без тела (204, 404)
func Empty(w http.ResponseWriter, r *http.Request, code int) {
	w.WriteHeader(code)
}
