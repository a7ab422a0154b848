package api

import (
	"fmt"
	"net/url"
	"strings"

	"payslip/internal/domain/translit"
)

func ContentDisposition(filename string) string {
	fallback := strings.ReplaceAll(translit.ToASCII(filename), `"`, "")
	encoded := strings.ReplaceAll(url.QueryEscape(filename), "+", "%20")
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encoded)
}
