package respond

import (
	"bytes"
	"encoding/json"
	"net/http"
)

const internalError = `{"error":"internal error"}` + "\n"

// JSON сначала кодирует ответ и только потом пишет заголовки,
// чтобы ошибка кодирования ушла клиенту как 500, а не как обрезанный 200.
func JSON(w http.ResponseWriter, r *http.Request, code int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalError))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"error": message})
}
