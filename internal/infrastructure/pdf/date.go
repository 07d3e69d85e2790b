package pdf

import (
	"fmt"
	"time"
)

var monthsPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// IssueDate formats t in pt-BR long form, e.g. "04 de maio de 2026, às 09:30".
func IssueDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d, às %02d:%02d",
		t.Day(), monthsPtBR[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
